package heuristic

// Weights holds every magnitude used by the evaluator.
type Weights struct {
	// Objective
	ScorePoint        float64 `yaml:"score_point" json:"score_point"`
	CaptureThreshold  int     `yaml:"capture_threshold" json:"capture_threshold"`
	CaptureMultiplier float64 `yaml:"capture_multiplier" json:"capture_multiplier"`
	LocalRadius       int     `yaml:"local_radius" json:"local_radius"`
	LocalItem         float64 `yaml:"local_item" json:"local_item"`
	NearestItem       float64 `yaml:"nearest_item" json:"nearest_item"`
	NearestItemRange  int     `yaml:"nearest_item_range" json:"nearest_item_range"`
	Gravity           float64 `yaml:"gravity" json:"gravity"`
	Hunt              float64 `yaml:"hunt" json:"hunt"`
	HuntBuffer        int     `yaml:"hunt_buffer" json:"hunt_buffer"`
	Exploration       float64 `yaml:"exploration" json:"exploration"`
	Win               float64 `yaml:"win" json:"win"`

	// Danger
	Revisit      float64 `yaml:"revisit" json:"revisit"`
	DangerRadius int     `yaml:"danger_radius" json:"danger_radius"`
	Proximity    float64 `yaml:"proximity" json:"proximity"`
	DeadEnd      float64 `yaml:"dead_end" json:"dead_end"`
	Corridor     float64 `yaml:"corridor" json:"corridor"`
	Junction     float64 `yaml:"junction" json:"junction"`
	Alignment    float64 `yaml:"alignment" json:"alignment"`
	Terminal     float64 `yaml:"terminal" json:"terminal"`
}

func DefaultWeights() Weights {
	return Weights{
		ScorePoint:        100,
		CaptureThreshold:  150,
		CaptureMultiplier: 10,
		LocalRadius:       5,
		LocalItem:         500,
		NearestItem:       3000,
		NearestItemRange:  15,
		Gravity:           10000,
		Hunt:              200000,
		HuntBuffer:        2,
		Exploration:       50000,
		Win:               100000,

		Revisit:      2000,
		DangerRadius: 4,
		Proximity:    500,
		DeadEnd:      3000,
		Corridor:     1000,
		Junction:     500,
		Alignment:    300,
		Terminal:     1000000,
	}
}
