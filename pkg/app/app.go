// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端、移动端和 Web 端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/game"
	"github.com/decker502/fruitmerge/pkg/host"
	"github.com/decker502/fruitmerge/pkg/scenes"
	"github.com/decker502/fruitmerge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameConfigPath 玩法配置文件（嵌入资源）
const GameConfigPath = "data/game_config.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Language 界面语言（"ru" / "en"），为空使用文本文件中的默认语言
	Language string
	// Mobile 强制使用移动端水果尺寸
	Mobile bool
	// Width / Height 初始逻辑尺寸，0 使用默认窗口尺寸
	Width, Height int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	bridge       host.Bridge

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	windowWidth              int
	windowHeight             int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 资源配置、文本与玩法配置加载失败只记录警告并使用默认值，
// 只有字体无法解析时返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("资源管理器初始化失败: %w", err)
	}
	if err := resourceManager.LoadResourceConfig(game.ResourceConfigPath); err != nil {
		log.Printf("[App] 警告: 资源配置加载失败，全部使用占位: %v", err)
	}

	strings, err := game.LoadStrings(game.StringsPath)
	if err != nil {
		log.Printf("[App] 警告: 本地化文本加载失败: %v", err)
	} else if cfg.Language != "" {
		if err := strings.SetLanguage(cfg.Language); err != nil {
			log.Printf("[App] 警告: %v，使用默认语言 %s", err, strings.Language())
		}
	}

	gameConfig, err := config.LoadGameConfig(GameConfigPath)
	if err != nil {
		log.Printf("[App] 警告: 玩法配置加载失败，使用默认值: %v", err)
		gameConfig = config.DefaultGameConfig()
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, resourceManager)
	log.Printf("[App] AudioManager initialized")

	bridge := host.Detect()

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = config.GameWindowWidth, config.GameWindowHeight
	}
	if w, h, ok := bridge.ViewportSize(); ok {
		width, height = LogicalSize(w, h)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(scenes.GameSceneOptions{
		Resources: resourceManager,
		Sounds:    audioManager,
		Strings:   strings,
		Config:    gameConfig,
		Bridge:    bridge,
		Width:     width,
		Height:    height,
		Mobile:    cfg.Mobile || utils.IsMobile(),
	}))
	sceneManager.Resize(width, height)

	if strings != nil {
		ebiten.SetWindowTitle(strings.Get("game.title"))
	}
	log.Printf("[App] 启动完成 (%dx%d, 语言=%s)", width, height, langOf(strings))

	return &App{
		sceneManager: sceneManager,
		bridge:       bridge,
		windowWidth:  width,
		windowHeight: height,
	}, nil
}

func langOf(s *game.Strings) string {
	if s == nil {
		return "-"
	}
	return s.Language()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸跟随窗口（宿主视口优先），尺寸变化时通知场景重建容器
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h, ok := a.bridge.ViewportSize(); ok {
		outsideWidth, outsideHeight = w, h
	}
	width, height := LogicalSize(outsideWidth, outsideHeight)
	a.sceneManager.Resize(width, height)
	return width, height
}

// LogicalSize 把外部尺寸换算为逻辑尺寸
// 任一边小于最小尺寸时按比例放大，保持宽高比
func LogicalSize(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	scale := math.Max(
		float64(config.MinWindowWidth)/float64(outsideWidth),
		float64(config.MinWindowHeight)/float64(outsideHeight),
	)
	if scale <= 1 {
		return outsideWidth, outsideHeight
	}
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}
