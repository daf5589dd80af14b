package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源 ID
const (
	SoundSpawn    = "SOUND_SPAWN"
	SoundMerge    = "SOUND_MERGE"
	SoundExplode  = "SOUND_EXPLODE"
	SoundGameOver = "SOUND_GAMEOVER"
)

// SoundSource 提供音效 PCM 数据
type SoundSource interface {
	GetSoundPCM(soundID string) ([]byte, bool)
}

// AudioManager 音频管理器
// 统一管理游戏中所有音效的播放，通过资源ID播放，无需关心数据来源
type AudioManager struct {
	audioContext *audio.Context
	sounds       SoundSource
	volume       float64

	// active 正在播放的播放器，播放结束后在下次 PlaySound 时清理
	active []*audio.Player
}

// NewAudioManager 创建新的音频管理器
// audioContext 为 nil 时所有播放请求被静默忽略
func NewAudioManager(audioContext *audio.Context, sounds SoundSource) *AudioManager {
	return &AudioManager{
		audioContext: audioContext,
		sounds:       sounds,
		volume:       1.0,
	}
}

// PlaySound 播放音效（单次播放，可重叠）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.audioContext == nil || am.sounds == nil || am.volume <= 0 {
		return false
	}

	pcm, ok := am.sounds.GetSoundPCM(soundID)
	if !ok || len(pcm) == 0 {
		log.Printf("[AudioManager] 未配置的音效: %s", soundID)
		return false
	}

	am.pruneFinished()

	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(am.volume)
	player.Play()
	am.active = append(am.active, player)
	return true
}

// SetSoundVolume 设置音效音量（0.0 - 1.0）
func (am *AudioManager) SetSoundVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
}

// GetSoundVolume 返回音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume
}

func (am *AudioManager) pruneFinished() {
	kept := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	am.active = kept
}
