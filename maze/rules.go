package maze

// Rules are the scoring and belief parameters of the simulated maze.
type Rules struct {
	Lives          int `yaml:"lives" json:"lives"`
	ItemPoints     int `yaml:"item_points" json:"item_points"`
	PowerPoints    int `yaml:"power_points" json:"power_points"`
	CapturePoints  int `yaml:"capture_points" json:"capture_points"`
	FrightDuration int `yaml:"fright_duration" json:"fright_duration"`
	// Candidate sets never grow past this size; the cells closest to the agent are kept
	MaxCandidates int `yaml:"max_candidates" json:"max_candidates"`
}

func DefaultRules() Rules {
	return Rules{
		Lives:          3,
		ItemPoints:     10,
		PowerPoints:    50,
		CapturePoints:  200,
		FrightDuration: 20,
		MaxCandidates:  6,
	}
}
