package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 已知屏幕尺寸时立即通知新场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录新的逻辑屏幕尺寸并通知当前场景
// 尺寸未变化时不做任何事
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	log.Printf("[SceneManager] 屏幕尺寸变化: %dx%d -> %dx%d", sm.width, sm.height, width, height)
	sm.width = width
	sm.height = height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
