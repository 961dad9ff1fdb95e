package crossing

// Sound cue names passed to SoundPlayer.Play.
const (
	SoundStart     = "start"
	SoundCollision = "collision"
	SoundZombie    = "zombie"
	SoundDrop      = "drop"
	SoundPickup    = "pickup"
	SoundGameOver  = "gameover"
)

// SoundPlayer plays named cues. Play must not block.
type SoundPlayer interface {
	Play(name string)
	SetMuted(muted bool)
	Muted() bool
}

// silentPlayer is used when no audio backend is available.
// It still tracks the mute flag so the HUD stays consistent.
type silentPlayer struct {
	muted bool
}

// NewSilentPlayer returns a SoundPlayer that produces no output.
func NewSilentPlayer() SoundPlayer {
	return &silentPlayer{}
}

func (s *silentPlayer) Play(string) {}

func (s *silentPlayer) SetMuted(muted bool) {
	s.muted = muted
}

func (s *silentPlayer) Muted() bool {
	return s.muted
}
