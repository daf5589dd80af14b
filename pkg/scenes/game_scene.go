package scenes

import (
	"log"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/host"
	"github.com/decker502/fruitmerge/pkg/systems"
	"github.com/decker502/fruitmerge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// physicsStep 物理步进的固定时间步长（秒）
const physicsStep = 1.0 / 60

// GameSceneOptions 创建 GameScene 所需的依赖
// 除 Config 外均可为零值：测试中不加载任何资源
type GameSceneOptions struct {
	Resources *game.ResourceManager // 图片与字体，nil 时不绘制精灵与文字
	Sounds    systems.SoundPlayer   // 音效，nil 时静音
	Strings   *game.Strings         // 本地化文本，nil 时显示 [key]
	Config    *config.GameConfig    // 玩法参数，nil 时使用默认值
	Pointer   utils.PointerSource   // 指针输入，nil 时使用 ebiten 鼠标/触摸
	Bridge    host.Bridge           // 宿主桥接，nil 时使用 NopBridge
	Rand      *rand.Rand            // 随机源（预览、背景），nil 时随机种子

	// SetCursor 设置鼠标指针形状，nil 时使用 ebiten.SetCursorShape
	SetCursor func(ebiten.CursorShapeType)

	Width, Height int  // 初始逻辑尺寸，0 时使用默认窗口尺寸
	Mobile        bool // 移动端缩小水果
}

// GameScene is the single gameplay screen.
// 管理一局游戏：物理世界、合成判定、技能与结算面板。
//
// 每帧的执行顺序（Update）：
//  1. 推进逻辑帧序号
//  2. 物理步进 → 同步视觉 → 合成判定（碰撞批次）
//  3. 动画、计时器、生命周期、闪光
//  4. 指针按下：技能图标 → 爆炸瞄准 → 在指针 X 处生成水果
//  5. 爆炸模式高亮
//  6. 顶部边界检测
//  7. 清理已删除实体
//
// 指针输入在物理步进之后处理：新生成的水果在下一帧才参与碰撞，
// 因而不会因为"当前帧生成"的限制错过碰撞开始事件。
type GameScene struct {
	resourceManager *game.ResourceManager
	strings         *game.Strings
	sounds          systems.SoundPlayer
	cfg             *config.GameConfig
	pointer         utils.PointerSource
	bridge          host.Bridge
	rng             *rand.Rand
	setCursor       func(ebiten.CursorShapeType)

	entityManager *ecs.EntityManager
	session       *game.Session

	physicsSystem     *systems.PhysicsSystem
	spawnSystem       *systems.SpawnSystem
	mergeSystem       *systems.MergeSystem
	abilitySystem     *systems.AbilitySystem
	gameOverSystem    *systems.GameOverSystem
	tweenSystem       *systems.TweenSystem
	timerSystem       *systems.TimerSystem
	lifetimeSystem    *systems.LifetimeSystem
	flashEffectSystem *systems.FlashEffectSystem
	renderSystem      *systems.RenderSystem

	width, height float64
	gameOverPanel *entities.GameOverDialog
	cursorShape   ebiten.CursorShapeType

	// 背景：图片或按 ID 生成的渐变占位
	backgroundID     string
	background       *ebiten.Image
	placeholderCache map[string]*ebiten.Image

	// restartRequested 由宿主回调设置，在下一次 Update 开始时处理
	restartRequested atomic.Bool
}

var (
	_ game.Scene     = (*GameScene)(nil)
	_ game.Resizable = (*GameScene)(nil)
)

// NewGameScene creates the gameplay scene and starts the first round.
func NewGameScene(opts GameSceneOptions) *GameScene {
	s := &GameScene{
		resourceManager: opts.Resources,
		strings:         opts.Strings,
		sounds:          opts.Sounds,
		cfg:             opts.Config,
		pointer:         opts.Pointer,
		bridge:          opts.Bridge,
		rng:             opts.Rand,
		setCursor:       opts.SetCursor,
		width:           float64(opts.Width),
		height:          float64(opts.Height),
		cursorShape:     ebiten.CursorShapeDefault,
	}
	if s.cfg == nil {
		s.cfg = config.DefaultGameConfig()
	}
	if s.pointer == nil {
		s.pointer = utils.EbitenPointer{}
	}
	if s.bridge == nil {
		s.bridge = host.NopBridge{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if s.setCursor == nil {
		s.setCursor = ebiten.SetCursorShape
	}
	if s.width <= 0 || s.height <= 0 {
		s.width, s.height = config.GameWindowWidth, config.GameWindowHeight
	}

	s.initSystems(entities.FruitScale(opts.Mobile, s.cfg.MobileFruitScale))
	s.physicsSystem.SetBounds(s.width, s.height)
	s.abilitySystem.SetPlayfieldWidth(s.width)
	s.pickBackground()
	s.initBridge()

	log.Printf("[GameScene] 场景已创建 (%.0fx%.0f, 移动端=%v)", s.width, s.height, opts.Mobile)
	return s
}

// Update advances one tick of the game.
func (s *GameScene) Update(deltaTime float64) {
	if s.restartRequested.Swap(false) {
		s.Restart()
	}
	s.session.AdvanceTick()

	if s.session.IsGameOver {
		// 结束后只播放面板动画并响应重新开始
		s.updateAnimations(deltaTime)
		s.renderSystem.UpdateButtonBounds()
		s.updateGameOverInput()
		s.entityManager.RemoveMarkedEntities()
		return
	}

	batch := s.physicsSystem.Step(physicsStep)
	s.physicsSystem.SyncAll()
	s.mergeSystem.HandleCollisions(batch)

	s.updateAnimations(deltaTime)

	if pressed, px, py := s.pointer.JustPressed(); pressed {
		s.handlePointerDown(float64(px), float64(py))
	}

	px, py := s.pointer.Position()
	s.abilitySystem.UpdateHighlight(float64(px), float64(py))
	s.updateCursor()

	if s.gameOverSystem.Update() {
		s.showGameOver()
	}

	s.entityManager.RemoveMarkedEntities()
}

func (s *GameScene) updateAnimations(deltaTime float64) {
	s.tweenSystem.Update(deltaTime)
	s.timerSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.flashEffectSystem.Update(deltaTime)
}

// handlePointerDown 技能优先，未被消费时在指针 X 处生成水果
func (s *GameScene) handlePointerDown(x, y float64) {
	if s.abilitySystem.HandlePointerDown(x, y) {
		return
	}
	if _, err := s.spawnSystem.SpawnAt(x, s.cfg.SpawnY); err != nil {
		log.Printf("[GameScene] 生成失败: %v", err)
	}
}

// updateCursor 爆炸模式下显示十字准星
func (s *GameScene) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if s.abilitySystem.Mode() == components.AbilityModeExplode {
		shape = ebiten.CursorShapeCrosshair
	}
	if shape != s.cursorShape {
		s.cursorShape = shape
		s.setCursor(shape)
	}
}

// Draw renders the background, the playfield, the HUD and the game-over panel.
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.renderSystem.DrawLayer(screen, config.DepthBackground+1, config.DepthHUD)
	s.drawHUD(screen)
	s.renderSystem.DrawLayer(screen, config.DepthOverlay, math.MaxInt)
}

// Resize 按新的逻辑尺寸重建容器边界
// 已在场景中的水果保持原位
func (s *GameScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w, h := float64(width), float64(height)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.physicsSystem.SetBounds(w, h)
	s.abilitySystem.SetPlayfieldWidth(w)
	if s.gameOverPanel != nil {
		entities.LayoutGameOverDialog(s.entityManager, *s.gameOverPanel, w, h)
	}
}

// Size 返回当前逻辑尺寸
func (s *GameScene) Size() (float64, float64) {
	return s.width, s.height
}

// RequestRestart 请求在下一次 Update 开始时重新开始
// 可在任意 goroutine 中调用
func (s *GameScene) RequestRestart() {
	s.restartRequested.Store(true)
}

// Restart 开始新的一局
// 移除所有水果、特效与未完成的动画，重置分数、预览和技能，并重建容器边界
func (s *GameScene) Restart() {
	removed := entities.DestroyAllFruits(s.entityManager, s.physicsSystem)

	keep := s.abilitySystem.AbilityEntity()
	for _, id := range s.entityManager.AllEntities() {
		if id != keep {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.entityManager.RemoveMarkedEntities()

	s.session.Reset()
	s.spawnSystem.Reset()
	s.abilitySystem.Reset()
	s.physicsSystem.SetBounds(s.width, s.height)
	s.abilitySystem.SetPlayfieldWidth(s.width)
	s.gameOverPanel = nil
	s.updateCursor()
	s.pickBackground()

	log.Printf("[GameScene] 重新开始（移除 %d 个水果）", removed)
}

// Session 返回当前一局的状态
func (s *GameScene) Session() *game.Session {
	return s.session
}
