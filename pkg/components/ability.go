package components

import "github.com/decker502/fruitmerge/pkg/ecs"

// AbilityMode 玩家当前的技能交互模式
// 封闭枚举，处理时应覆盖全部取值
type AbilityMode int

const (
	// AbilityModeNone 普通模式：点击生成水果
	AbilityModeNone AbilityMode = iota
	// AbilityModeExplode 爆炸瞄准模式：点击移除一个水果
	AbilityModeExplode
	// AbilityModeGrandma "叫奶奶"：一次性批量生成樱桃，立即回到普通模式
	AbilityModeGrandma
)

// String 返回模式名称（日志用）
func (m AbilityMode) String() string {
	switch m {
	case AbilityModeNone:
		return "none"
	case AbilityModeExplode:
		return "explode"
	case AbilityModeGrandma:
		return "grandma"
	default:
		return "unknown"
	}
}

// AbilityComponent 技能状态组件
// 作为单例组件挂载到一个专用实体上，由 AbilitySystem 读取和更新
type AbilityComponent struct {
	// Mode 当前模式，同一时间最多一个技能模式
	Mode AbilityMode

	// ExplodeCharges 爆炸剩余次数（下限 0）
	ExplodeCharges int

	// GrandmaCharges "叫奶奶"剩余次数（下限 0）
	GrandmaCharges int

	// HighlightedFruit 当前高亮的水果实体ID，无高亮时为 0
	HighlightedFruit ecs.EntityID
}
