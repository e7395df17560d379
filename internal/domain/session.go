package domain

import "time"

// ProgramSummary is what the core hands to the training log.
type ProgramSummary struct {
	Name           string
	Techniques     []string
	DurationMin    int
	Difficulty     ProgramDifficulty
	QualityScore   float64
	CompletionRate float64
	FeedbackScore  int
}

// TrainingSession is a persisted ProgramSummary.
type TrainingSession struct {
	ID             string
	UserID         string
	Name           string
	Techniques     []string
	DurationMin    int
	Difficulty     ProgramDifficulty
	QualityScore   float64
	CompletionRate float64
	FeedbackScore  int
	CreatedAt      time.Time
}

// MasteryRecord tracks how often and how well a user has drilled a technique.
type MasteryRecord struct {
	UserID        string
	TechniqueName string
	Level         float64
	PracticeCount int
	LastPracticed time.Time
}

// MasteryStep is the level gained per logged session.
const MasteryStep = 0.1
