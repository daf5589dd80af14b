// fruitmerge 是一个合成水果小游戏：同级水果碰撞后合成更大的水果。
//
// Usage:
//
//	fruitmerge                      - 默认 480x800 窗口，俄语界面
//	fruitmerge --lang en            - 英语界面
//	fruitmerge --mobile             - 使用移动端水果尺寸（桌面调试）
//	fruitmerge --width 600 --height 900
//	fruitmerge --verbose            - 输出日志
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/fruitmerge/pkg/app"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/embedded"
	"github.com/decker502/fruitmerge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagLang    string
	flagMobile  bool
	flagWidth   int
	flagHeight  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitmerge",
	Short: "Fruit Merge - drop fruits, merge equal ones into bigger fruits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateWindowSize(flagWidth, flagHeight); err != nil {
			return err
		}
		run()
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "UI language (ru, en); empty uses the default")
	rootCmd.Flags().BoolVar(&flagMobile, "mobile", false, "Use mobile fruit sizes")
	rootCmd.Flags().IntVar(&flagWidth, "width", config.GameWindowWidth, "Window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", config.GameWindowHeight, "Window height")
}

// validateWindowSize 窗口尺寸必须为正数
func validateWindowSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	return nil
}

func run() {
	embedded.Init(assetsFS, dataFS)
	utils.SetMobileOverride(flagMobile)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  flagVerbose,
		Language: flagLang,
		Mobile:   flagMobile,
		Width:    flagWidth,
		Height:   flagHeight,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatalf("游戏运行失败: %v", err)
	}
}
