package core

// Cue identifies a fire-and-forget sound effect.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueCoin
	CueHit
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueFlap, CueScore, CueCoin, CueHit}

// String returns the cue name, also used to derive asset file names.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueCoin:
		return "coin"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}
