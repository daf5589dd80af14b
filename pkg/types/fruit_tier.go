// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// FruitTier 定义水果的阶级（从小到大）
// 两个相同阶级的水果合成为下一阶级
type FruitTier int

const (
	// TierCherry 樱桃（最小）
	TierCherry FruitTier = iota
	// TierStrawberry 草莓
	TierStrawberry
	// TierOrange 橙子
	TierOrange
	// TierLemon 柠檬
	TierLemon
	// TierKiwi 猕猴桃
	TierKiwi
	// TierPeach 桃子
	TierPeach
	// TierPlum 李子
	TierPlum
	// TierApple 苹果
	TierApple
	// TierPineapple 菠萝
	TierPineapple
	// TierWatermelon 西瓜（最大，不再合成）
	TierWatermelon
)

const (
	// FruitTierCount 阶级总数
	FruitTierCount = 10

	// SpawnableTierCount 可直接生成的最低阶级数量
	// 更高阶级只能通过合成得到
	SpawnableTierCount = 5

	// baseRadius 樱桃的物理半径（像素）
	baseRadius = 32.0
	// radiusStep 每升一级增加的半径（像素）
	radiusStep = 4.0
)

var tierNames = [FruitTierCount]string{
	"cherry",
	"strawberry",
	"orange",
	"lemon",
	"kiwi",
	"peach",
	"plum",
	"apple",
	"pineapple",
	"watermelon",
}

// IsValid 检查阶级是否在有效范围内
func (t FruitTier) IsValid() bool {
	return t >= TierCherry && t <= TierWatermelon
}

// Rank 返回阶级序号（0 起）
func (t FruitTier) Rank() int {
	return int(t)
}

// String 返回阶级的名称
func (t FruitTier) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("FruitTier(%d)", int(t))
	}
	return tierNames[t]
}

// Next 返回下一阶级
// 西瓜已是最高阶级，返回 false
func (t FruitTier) Next() (FruitTier, bool) {
	t.mustBeValid()
	if t == TierWatermelon {
		return t, false
	}
	return t + 1, true
}

// IsMax 是否为最高阶级
func (t FruitTier) IsMax() bool {
	return t == TierWatermelon
}

// Radius 返回阶级的基础物理半径（像素），随阶级严格递增
// 无效阶级属于调用方的编程错误，直接 panic
func (t FruitTier) Radius() float64 {
	t.mustBeValid()
	return baseRadius + radiusStep*float64(t)
}

// SpriteID 返回阶级对应的图片资源ID（如 "fruit_cherry"）
func (t FruitTier) SpriteID() string {
	t.mustBeValid()
	return "fruit_" + tierNames[t]
}

// IsSpawnable 是否属于可直接生成的最低 5 个阶级
func (t FruitTier) IsSpawnable() bool {
	return t >= TierCherry && int(t) < SpawnableTierCount
}

func (t FruitTier) mustBeValid() {
	if !t.IsValid() {
		panic(fmt.Sprintf("types: invalid fruit tier %d", int(t)))
	}
}

// AllTiers 返回全部阶级（从小到大）
func AllTiers() []FruitTier {
	tiers := make([]FruitTier, FruitTierCount)
	for i := range tiers {
		tiers[i] = FruitTier(i)
	}
	return tiers
}

// SpawnableTiers 返回可直接生成的阶级列表
func SpawnableTiers() []FruitTier {
	return AllTiers()[:SpawnableTierCount]
}
