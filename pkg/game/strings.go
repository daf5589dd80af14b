package game

import (
	"fmt"

	"github.com/decker502/fruitmerge/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// StringsPath 默认本地化文本文件（嵌入资源）
const StringsPath = "assets/i18n/strings.yaml"

// stringsFile 本地化文件结构
//
//	default: ru
//	languages:
//	  ru:
//	    score: Счёт
type stringsFile struct {
	Default   string                       `yaml:"default"`
	Languages map[string]map[string]string `yaml:"languages"`
}

// Strings 游戏文本字符串管理器
// 按语言存储键值表，支持运行时切换语言
type Strings struct {
	tables      map[string]map[string]string
	defaultLang string
	lang        string
}

// LoadStrings 从嵌入资源加载本地化文本
func LoadStrings(path string) (*Strings, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strings file %s: %w", path, err)
	}
	s, err := ParseStrings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse strings file %s: %w", path, err)
	}
	return s, nil
}

// ParseStrings 解析本地化 YAML 数据
// 默认语言必须存在于 languages 中
func ParseStrings(data []byte) (*Strings, error) {
	var f stringsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Languages) == 0 {
		return nil, fmt.Errorf("no languages defined")
	}
	if _, ok := f.Languages[f.Default]; !ok {
		return nil, fmt.Errorf("default language %q not defined", f.Default)
	}
	return &Strings{
		tables:      f.Languages,
		defaultLang: f.Default,
		lang:        f.Default,
	}, nil
}

// SetLanguage 切换当前语言
// 空字符串表示使用默认语言
func (s *Strings) SetLanguage(lang string) error {
	if lang == "" {
		s.lang = s.defaultLang
		return nil
	}
	if _, ok := s.tables[lang]; !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}
	s.lang = lang
	return nil
}

// Language 返回当前语言
func (s *Strings) Language() string {
	return s.lang
}

// Get 根据键获取文本字符串
// 当前语言缺失时回退到默认语言，仍缺失则返回 "[key]"（调试用）
func (s *Strings) Get(key string) string {
	if s == nil {
		return "[" + key + "]"
	}
	if text, ok := s.tables[s.lang][key]; ok {
		return text
	}
	if text, ok := s.tables[s.defaultLang][key]; ok {
		return text
	}
	return "[" + key + "]"
}
