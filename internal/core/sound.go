package core

// Sound identifies a sound effect the game asks the host to play.
type Sound int

const (
	SoundHitBlock  Sound = iota // Ball bounced off a block
	SoundHitPlayer              // Ball bounced off the paddle
	SoundHitFloor               // Last ball fell off the bottom
	SoundCount                  // Sentinel for counting sounds
)

// String returns the asset name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundHitBlock:
		return "hit_block"
	case SoundHitPlayer:
		return "hit_player"
	case SoundHitFloor:
		return "hit_floor"
	default:
		return "unknown"
	}
}
