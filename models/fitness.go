package models

// WorkoutDay is one labeled training day with its exercise instructions.
type WorkoutDay struct {
	Day     string   `json:"day"`
	Workout []string `json:"workout"`
}

// FitnessProgram is a fixed weekly schedule for a training setting.
type FitnessProgram struct {
	Setting string       `json:"setting"`
	Days    []WorkoutDay `json:"days"`
}
