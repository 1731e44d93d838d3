package agent

// Weights holds the magnitudes of the adjustments applied on top of search values.
type Weights struct {
	// Tactical
	ItemStep   float64 `yaml:"item_step" json:"item_step"`
	PowerStep  float64 `yaml:"power_step" json:"power_step"`
	ThreatStep float64 `yaml:"threat_step" json:"threat_step"`

	// Anti-oscillation
	Revisit        float64 `yaml:"revisit" json:"revisit"`
	Loop           float64 `yaml:"loop" json:"loop"`
	Reversal       float64 `yaml:"reversal" json:"reversal"`
	EscapeReversal float64 `yaml:"escape_reversal" json:"escape_reversal"`
	UnsafeDistance int     `yaml:"unsafe_distance" json:"unsafe_distance"`
	Oscillation    float64 `yaml:"oscillation" json:"oscillation"`
	Straight       float64 `yaml:"straight" json:"straight"`
	Turn           float64 `yaml:"turn" json:"turn"`

	// While chasing a frightened adversary the anti-oscillation total is scaled down
	HuntDamping float64 `yaml:"hunt_damping" json:"hunt_damping"`
	HuntFright  int     `yaml:"hunt_fright" json:"hunt_fright"`
	HuntRange   int     `yaml:"hunt_range" json:"hunt_range"`
}

func DefaultWeights() Weights {
	return Weights{
		ItemStep:   5000,
		PowerStep:  8000,
		ThreatStep: 100000,

		Revisit:        6000,
		Loop:           20000,
		Reversal:       15000,
		EscapeReversal: 2000,
		UnsafeDistance: 2,
		Oscillation:    30000,
		Straight:       1500,
		Turn:           800,

		HuntDamping: 0.3,
		HuntFright:  3,
		HuntRange:   5,
	}
}
