package config

import (
	"fmt"

	"github.com/decker502/fruitmerge/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameConfigPath 默认玩法配置文件（嵌入资源）
const GameConfigPath = "data/game_config.yaml"

// GameConfig 玩法参数配置
// 除特别说明外，时间单位为秒，长度单位为像素
type GameConfig struct {
	MergeReward      int     `yaml:"mergeReward"`      // 每次合成奖励分数
	AbilityCharges   int     `yaml:"abilityCharges"`   // 每个技能的初始次数
	ExplodeTolerance float64 `yaml:"explodeTolerance"` // 爆炸瞄准容差（叠加在水果半径上）
	MobileFruitScale float64 `yaml:"mobileFruitScale"` // 移动端水果缩放
	SpawnY           float64 `yaml:"spawnY"`           // 玩家点击生成水果的 Y 坐标
	TopBoundaryY     float64 `yaml:"topBoundaryY"`     // 游戏结束边界，水果 Y 小于该值即结束

	Physics   PhysicsConfig   `yaml:"physics"`
	Grandma   GrandmaConfig   `yaml:"grandma"`
	Animation AnimationConfig `yaml:"animation"`
}

// PhysicsConfig 物理世界参数
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`       // 重力加速度（像素/秒²）
	WallThickness float64 `yaml:"wallThickness"` // 左右墙与地面的厚度
	FloorHeight   float64 `yaml:"floorHeight"`   // 地面平台高度（距屏幕底部）
	Elasticity    float64 `yaml:"elasticity"`    // 水果弹性
	Friction      float64 `yaml:"friction"`      // 水果摩擦
	Density       float64 `yaml:"density"`       // 水果密度（质量 = 密度 × 面积）
}

// GrandmaConfig "叫奶奶"技能参数
type GrandmaConfig struct {
	Count  int     `yaml:"count"`  // 一次生成的樱桃数量
	Margin float64 `yaml:"margin"` // 距左右边缘的距离
	Delay  float64 `yaml:"delay"`  // 相邻两个樱桃的生成间隔
	SpawnY float64 `yaml:"spawnY"` // 生成高度
}

// AnimationConfig 动画参数
type AnimationConfig struct {
	SpawnDuration   float64 `yaml:"spawnDuration"`   // 出现动画（缩放 0 → 1）
	SquashDuration  float64 `yaml:"squashDuration"`  // 合成挤压动画单程时长
	SquashScale     float64 `yaml:"squashScale"`     // 挤压最大缩放
	ExplodeDuration float64 `yaml:"explodeDuration"` // 爆炸消失动画
	FlashDuration   float64 `yaml:"flashDuration"`   // 合成闪光淡出
	FlashRadius     float64 `yaml:"flashRadius"`     // 闪光半径
	FlashAlpha      float64 `yaml:"flashAlpha"`      // 闪光初始透明度
	PopupDuration   float64 `yaml:"popupDuration"`   // 得分飘字时长
	PopupRise       float64 `yaml:"popupRise"`       // 飘字上升距离
	PopupScale      float64 `yaml:"popupScale"`      // 飘字最终缩放
	HighlightScale  float64 `yaml:"highlightScale"`  // 瞄准高亮缩放
	PanelDuration   float64 `yaml:"panelDuration"`   // 结算面板弹出
	FadeDuration    float64 `yaml:"fadeDuration"`    // 结算文字淡入
	FadeStagger     float64 `yaml:"fadeStagger"`     // 结算文字依次淡入的间隔
}

// DefaultGameConfig 返回内置默认配置（与 data/game_config.yaml 保持一致）
// 配置文件加载失败时使用
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		MergeReward:      10,
		AbilityCharges:   3,
		ExplodeTolerance: 10,
		MobileFruitScale: 0.7,
		SpawnY:           50,
		TopBoundaryY:     0,
		Physics: PhysicsConfig{
			Gravity:       980,
			WallThickness: 40,
			FloorHeight:   20,
			Elasticity:    0.1,
			Friction:      0.6,
			Density:       0.01,
		},
		Grandma: GrandmaConfig{
			Count:  7,
			Margin: 40,
			Delay:  0.06,
			SpawnY: 50,
		},
		Animation: AnimationConfig{
			SpawnDuration:   0.2,
			SquashDuration:  0.12,
			SquashScale:     1.3,
			ExplodeDuration: 0.25,
			FlashDuration:   0.2,
			FlashRadius:     40,
			FlashAlpha:      0.7,
			PopupDuration:   0.7,
			PopupRise:       40,
			PopupScale:      1.5,
			HighlightScale:  1.15,
			PanelDuration:   0.3,
			FadeDuration:    0.4,
			FadeStagger:     0.1,
		},
	}
}

// LoadGameConfig 从嵌入资源加载玩法配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 玩法配置
// 未出现在 YAML 中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.MergeReward <= 0 {
		return fmt.Errorf("mergeReward must be > 0, got %d", cfg.MergeReward)
	}
	if cfg.AbilityCharges < 0 {
		return fmt.Errorf("abilityCharges must be >= 0, got %d", cfg.AbilityCharges)
	}
	if cfg.ExplodeTolerance < 0 {
		return fmt.Errorf("explodeTolerance must be >= 0, got %.2f", cfg.ExplodeTolerance)
	}
	if cfg.MobileFruitScale <= 0 || cfg.MobileFruitScale > 1 {
		return fmt.Errorf("mobileFruitScale must be in (0, 1], got %.2f", cfg.MobileFruitScale)
	}

	if cfg.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be > 0, got %.2f", cfg.Physics.Gravity)
	}
	if cfg.Physics.WallThickness <= 0 {
		return fmt.Errorf("physics.wallThickness must be > 0, got %.2f", cfg.Physics.WallThickness)
	}
	if cfg.Physics.Density <= 0 {
		return fmt.Errorf("physics.density must be > 0, got %.4f", cfg.Physics.Density)
	}

	if cfg.Grandma.Count < 2 {
		// 均匀分布至少需要两个点
		return fmt.Errorf("grandma.count must be >= 2, got %d", cfg.Grandma.Count)
	}
	if cfg.Grandma.Delay < 0 {
		return fmt.Errorf("grandma.delay must be >= 0, got %.2f", cfg.Grandma.Delay)
	}

	anim := cfg.Animation
	durations := map[string]float64{
		"spawnDuration":   anim.SpawnDuration,
		"squashDuration":  anim.SquashDuration,
		"explodeDuration": anim.ExplodeDuration,
		"flashDuration":   anim.FlashDuration,
		"popupDuration":   anim.PopupDuration,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("animation.%s must be > 0, got %.3f", name, d)
		}
	}

	return nil
}
