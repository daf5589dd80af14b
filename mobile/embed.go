//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 只能嵌入当前包目录下的文件，构建前需要把 assets/ 和 data/ 复制到此目录：
//
//	cp -r assets data mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/game_config.yaml
var dataFS embed.FS
