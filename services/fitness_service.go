package services

import "backend/models"

var homeSchedule = []models.WorkoutDay{
	{Day: "Mon", Workout: []string{"Push-ups 4x12", "Squats 4x15", "Plank 3x60s"}},
	{Day: "Wed", Workout: []string{"Lunges 4x12", "Dips 4x10", "Crunches 3x20"}},
	{Day: "Fri", Workout: []string{"Burpees 4x10", "Glute bridge 4x15", "Side plank 3x45s"}},
}

var outdoorSchedule = []models.WorkoutDay{
	{Day: "Tue", Workout: []string{"Jog 30 min", "Hill sprints 8x20s", "Mobility 10 min"}},
	{Day: "Thu", Workout: []string{"Bike 40 min", "Push-ups 4x12", "Core 10 min"}},
	{Day: "Sat", Workout: []string{"Hike 60 min", "Stretch 15 min"}},
}

var gymSchedule = []models.WorkoutDay{
	{Day: "Mon", Workout: []string{"Squat 5x5", "Bench 5x5", "Row 5x5"}},
	{Day: "Wed", Workout: []string{"Deadlift 3x5", "OHP 5x5", "Pull-ups 3xAMRAP"}},
	{Day: "Fri", Workout: []string{"Leg press 4x10", "Incline DB 4x10", "Lat pulldown 4x10"}},
}

// FitnessProgramFor maps a training setting to its fixed weekly schedule.
// The caller lower-cases the setting; anything that is not "home" or
// "outdoor" gets the gym schedule. The goal is accepted for future
// goal-specific programming but does not vary the content yet.
func FitnessProgramFor(setting, goal string) models.FitnessProgram {
	var days []models.WorkoutDay
	switch setting {
	case "home":
		days = homeSchedule
	case "outdoor":
		days = outdoorSchedule
	default:
		days = gymSchedule
	}
	return models.FitnessProgram{Setting: setting, Days: days}
}
