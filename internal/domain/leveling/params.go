package leveling

// Params defines the configurable parameters for the leveling formula.
type Params struct {
	// LevelExpBase is the quadratic coefficient of the level threshold
	// formula: RequiredExp(level) = level^2 * LevelExpBase.
	LevelExpBase int
}

// NewDefaultParams creates a new Params instance with default values.
// The defaults put level 2 at 50 EXP, level 3 at 200 EXP and so on.
func NewDefaultParams() *Params {
	return &Params{
		LevelExpBase: 50,
	}
}
