package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"path/filepath"

	"github.com/decker502/fruitmerge/pkg/embedded"
	"github.com/decker502/fruitmerge/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ResourceConfigPath 默认资源配置文件（嵌入资源）
const ResourceConfigPath = "assets/config/resources.yaml"

// SampleRate 音频采样率
const SampleRate = 48000

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, fonts and sound effects,
// ensuring that resources are loaded only once and reused throughout the game.
//
// 缺失的图片不会导致错误：水果图片由按阶级生成的彩色圆形代替，
// 每个资源 ID 只记录一次警告。
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: "regular:24.0" -> Face
	soundCache    map[string][]byte           // Cache for synthesized PCM: sound ID -> bytes

	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource

	// 缺图回退
	placeholderCache map[string]*ebiten.Image
	warned           map[string]bool

	// YAML resource configuration
	config      *ResourceConfig     // Parsed YAML configuration
	resourceMap map[string]string   // Resource ID -> file path mapping for quick lookup
	toneMap     map[string]ToneSpec // Sound ID -> synthesis parameters
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// 内置字体 (Go fonts) 在此解析，解析失败会返回错误。
func NewResourceManager() (*ResourceManager, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create regular font source: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create bold font source: %w", err)
	}

	return &ResourceManager{
		imageCache:       make(map[string]*ebiten.Image),
		fontFaceCache:    make(map[string]*text.GoTextFace),
		soundCache:       make(map[string][]byte),
		regularSource:    regular,
		boldSource:       bold,
		placeholderCache: make(map[string]*ebiten.Image),
		warned:           make(map[string]bool),
		resourceMap:      make(map[string]string),
		toneMap:          make(map[string]ToneSpec),
	}, nil
}

// LoadImage loads an image file from the embedded assets and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.parseResourceConfig(data, configPath)
}

func (rm *ResourceManager) parseResourceConfig(data []byte, configPath string) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	fruit_cherry -> assets/images/fruit_cherry.png
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.toneMap = make(map[string]ToneSpec)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, sound := range group.Sounds {
			rm.toneMap[sound.ID] = sound.Tone
		}
	}
}

// LoadImageByID loads an image resource using its resource ID.
// The resource ID must be defined in the YAML configuration file.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID 按资源 ID 获取图片，加载失败返回 nil（只警告一次）
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	img, err := rm.LoadImageByID(resourceID)
	if err != nil {
		rm.warnOnce(resourceID, err)
		return nil
	}
	return img
}

// GetFruitImage 返回水果图片
// 图片缺失时返回按阶级生成的占位圆形
func (rm *ResourceManager) GetFruitImage(tier types.FruitTier) *ebiten.Image {
	id := tier.SpriteID()
	img, err := rm.LoadImageByID(id)
	if err == nil {
		return img
	}
	rm.warnOnce(id, err)

	if cached, ok := rm.placeholderCache[id]; ok {
		return cached
	}
	placeholder := NewFruitPlaceholder(tier)
	rm.placeholderCache[id] = placeholder
	return placeholder
}

func (rm *ResourceManager) warnOnce(resourceID string, err error) {
	if rm.warned[resourceID] {
		return
	}
	rm.warned[resourceID] = true
	log.Printf("[ResourceManager] 警告: 资源 %s 不可用，使用占位: %v", resourceID, err)
}

// GetFont 返回指定大小的内置字体
func (rm *ResourceManager) GetFont(size float64, bold bool) *text.GoTextFace {
	weight := "regular"
	source := rm.regularSource
	if bold {
		weight = "bold"
		source = rm.boldSource
	}
	cacheKey := fmt.Sprintf("%s:%.1f", weight, size)
	if face, ok := rm.fontFaceCache[cacheKey]; ok {
		return face
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face
}

// GetSoundPCM 返回音效的 PCM 数据（16 位小端立体声）
// 首次访问时按配置合成并缓存，未配置的 ID 返回 false
func (rm *ResourceManager) GetSoundPCM(soundID string) ([]byte, bool) {
	if pcm, ok := rm.soundCache[soundID]; ok {
		return pcm, true
	}
	spec, ok := rm.toneMap[soundID]
	if !ok {
		return nil, false
	}
	pcm := SynthesizeTone(spec, SampleRate)
	rm.soundCache[soundID] = pcm
	return pcm, true
}
