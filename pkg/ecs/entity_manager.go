// Package ecs 提供游戏使用的最小实体-组件存储
//
// 组件以其动态类型（通常是指针类型）作为键存放，系统通过泛型辅助函数查询。
// 所有调用都发生在游戏主循环的单一 goroutine 中，因此不加锁。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表（帧末统一清理）
	entitiesToDestroy []EntityID
	// 已标记删除但尚未清理的实体，避免重复入队
	pendingDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		pendingDestroy:    make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// Exists 检查实体是否存在（已标记删除、尚未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// IsAlive 检查实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if !em.Exists(id) {
		return false
	}
	_, pending := em.pendingDestroy[id]
	return !pending
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复调用是安全的，同一实体只会入队一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) {
		return
	}
	if _, pending := em.pendingDestroy[id]; pending {
		return
	}
	em.pendingDestroy[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponentByType 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponentByType(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponentByType 获取实体的特定类型组件
func (em *EntityManager) GetComponentByType(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponentByType 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponentByType(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponentByType(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.pendingDestroy, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount 返回当前存在的实体数量（包含已标记、未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// AllEntities 返回所有存在的实体ID（顺序未定义）
func (em *EntityManager) AllEntities() []EntityID {
	result := make([]EntityID, 0, len(em.components))
	for id := range em.components {
		result = append(result, id)
	}
	return result
}

// GetEntitiesWithTypes 查询拥有指定组件类型组合的所有实体
// 结果顺序未定义（map 遍历顺序），需要稳定顺序时使用 SortEntities
func (em *EntityManager) GetEntitiesWithTypes(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// SortEntities 按创建顺序（ID 升序）原地排序
func SortEntities(ids []EntityID) []EntityID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
