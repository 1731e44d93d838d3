package searcher

// Defaults for the search

const DefaultDepth = 3

// Outcomes expanded per AND node; outcomes that cost a life are always scored.
const DefaultOutcomeCap = 4

// A certain lost life must dominate every heuristic value, an uncertain one only most of them.
const DeathPenalty = 1000000.0
const UncertainDeathPenalty = 100000.0

const JitterScale = 0.01
