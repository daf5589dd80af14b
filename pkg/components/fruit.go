package components

import "github.com/decker502/fruitmerge/pkg/types"

// FruitComponent 标记实体为水果并存储其阶级与合成状态
type FruitComponent struct {
	// Tier 水果阶级
	Tier types.FruitTier

	// IsMerging 是否已被某次合成占用
	// 一旦置为 true，该水果不能再参与其他合成，直到被销毁
	IsMerging bool

	// IsExploding 正在播放爆炸消失动画，不再作为爆炸目标或参与合成
	IsExploding bool

	// BornTick 创建时的逻辑帧序号
	// 同一帧内新生成的水果不参与合成，避免同帧连锁
	BornTick uint64
}
