package ecs

import "reflect"

// typeOf 返回类型参数 T 对应的 reflect.Type
// T 通常是组件指针类型，如 *components.FruitComponent
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentByType(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponentByType(id, typeOf[T]())
}

// RemoveComponent 移除实体的 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponentByType(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有 T1 组件的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWithTypes(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWithTypes(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWithTypes(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
