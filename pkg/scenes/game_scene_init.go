package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/systems"
	"github.com/decker502/fruitmerge/pkg/utils"
)

// initSystems 创建 ECS 与全部系统
// 资源管理器为 nil 时，图片与字体来源保持为 nil 接口
func (s *GameScene) initSystems(fruitScale float64) {
	s.entityManager = ecs.NewEntityManager()
	s.session = game.NewSession()

	var images entities.FruitImageSource
	var fonts systems.FontProvider
	if s.resourceManager != nil {
		images = s.resourceManager
		fonts = s.resourceManager
	}

	s.physicsSystem = systems.NewPhysicsSystem(s.entityManager, s.cfg.Physics)
	s.spawnSystem = systems.NewSpawnSystem(s.entityManager, s.session, s.physicsSystem, images, s.sounds, s.cfg, s.rng)
	s.spawnSystem.SetFruitScale(fruitScale)
	s.mergeSystem = systems.NewMergeSystem(s.entityManager, s.session, s.physicsSystem, images, s.sounds, s.cfg)
	s.mergeSystem.SetFruitScale(fruitScale)
	s.abilitySystem = systems.NewAbilitySystem(s.entityManager, s.session, s.spawnSystem, s.physicsSystem, s.sounds, s.cfg)
	s.gameOverSystem = systems.NewGameOverSystem(s.entityManager, s.session, s.sounds, s.cfg.TopBoundaryY)

	s.tweenSystem = systems.NewTweenSystem(s.entityManager)
	s.timerSystem = systems.NewTimerSystem(s.entityManager)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)
	s.flashEffectSystem = systems.NewFlashEffectSystem(s.entityManager)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, fonts)

	log.Printf("[GameScene] 系统初始化完成 (水果缩放 %.2f)", fruitScale)
}

// initBridge 通知宿主已就绪，并把宿主的重新开始按钮接到场景
func (s *GameScene) initBridge() {
	s.bridge.Ready()
	s.bridge.SetRestartLabel(s.text("restart"))
	s.bridge.OnRestart(s.RequestRestart)
}

// text 返回本地化文本
func (s *GameScene) text(key string) string {
	return s.strings.Get(key)
}

// scoreLabel 返回 "Счёт: 120" 形式的分数文本
func (s *GameScene) scoreLabel() string {
	return fmt.Sprintf("%s: %d", s.text("score"), s.session.Score)
}

// showGameOver 创建结算遮罩与面板
func (s *GameScene) showGameOver() {
	s.abilitySystem.ClearHighlight()
	s.updateCursor()

	panel := entities.NewGameOverDialog(s.entityManager, s.width, s.height, entities.GameOverDialogTexts{
		Title:   s.text("game.over"),
		Score:   s.scoreLabel(),
		Restart: s.text("restart"),
	}, s.cfg.Animation, s.Restart)
	s.gameOverPanel = &panel
	s.renderSystem.UpdateButtonBounds()
}

// updateGameOverInput 结算面板上的按钮悬停与点击
func (s *GameScene) updateGameOverInput() {
	px, py := s.pointer.Position()
	pressed, cx, cy := s.pointer.JustPressed()

	for _, id := range ecs.SortEntities(ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		button.IsHovered = utils.PointInRect(float64(px), float64(py), button.Bounds)

		if pressed && button.OnClick != nil && utils.PointInRect(float64(cx), float64(cy), button.Bounds) {
			button.OnClick()
			return
		}
	}
}
