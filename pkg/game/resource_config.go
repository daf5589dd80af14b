package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
}

// ImageResource represents a single image resource definition.
//
// Example:
//
//	- id: fruit_cherry
//	  path: images/fruit_cherry.png
type ImageResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// SoundResource represents a single sound effect definition.
// 音效由参数合成，不依赖音频文件。
//
// Example:
//
//	- id: SOUND_MERGE
//	  tone: { frequency: 880, duration: 0.12, volume: 0.35, slide: 440 }
type SoundResource struct {
	ID   string   `yaml:"id"`   // Resource ID (unique identifier)
	Tone ToneSpec `yaml:"tone"` // 合成参数
}

// ToneSpec 单音合成参数
type ToneSpec struct {
	Frequency float64 `yaml:"frequency"` // 起始频率（Hz）
	Duration  float64 `yaml:"duration"`  // 时长（秒）
	Volume    float64 `yaml:"volume"`    // 音量（0.0 - 1.0）
	Slide     float64 `yaml:"slide"`     // 结束时相对起始频率的偏移（Hz）
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
