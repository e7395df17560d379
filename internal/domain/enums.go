package domain

import (
	"fmt"
	"strings"
)

// Category is the fixed technique grouping.
type Category string

const (
	CategoryGuard       Category = "guard"
	CategorySubmission  Category = "submission"
	CategorySweep       Category = "sweep"
	CategoryGuardPass   Category = "guard_pass"
	CategoryEscape      Category = "escape"
	CategoryTakedown    Category = "takedown"
	CategoryMount       Category = "mount"
	CategorySideControl Category = "side_control"
	CategoryBackControl Category = "back_control"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryGuard,
	CategorySubmission,
	CategorySweep,
	CategoryGuardPass,
	CategoryEscape,
	CategoryTakedown,
	CategoryMount,
	CategorySideControl,
	CategoryBackControl,
}

var categoryLabels = map[Category]string{
	CategoryGuard:       "가드",
	CategorySubmission:  "서브미션",
	CategorySweep:       "스위프",
	CategoryGuardPass:   "패스가드",
	CategoryEscape:      "이스케이프",
	CategoryTakedown:    "테이크다운",
	CategoryMount:       "마운트",
	CategorySideControl: "사이드컨트롤",
	CategoryBackControl: "백컨트롤",
}

// Label returns the Korean display label.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts either the code ("guard_pass") or the Korean label ("패스가드").
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for c, label := range categoryLabels {
		if s == string(c) || s == label {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// SubmissionType refines the submission category.
type SubmissionType string

const (
	SubmissionChoke     SubmissionType = "choke"
	SubmissionJointLock SubmissionType = "joint_lock"
	SubmissionLegLock   SubmissionType = "leg_lock"
	SubmissionPressure  SubmissionType = "pressure"
)

func (t SubmissionType) Label() string {
	switch t {
	case SubmissionChoke:
		return "초크"
	case SubmissionJointLock:
		return "관절기"
	case SubmissionLegLock:
		return "레그락"
	case SubmissionPressure:
		return "압박"
	default:
		return ""
	}
}

func (t SubmissionType) Valid() bool {
	switch t {
	case "", SubmissionChoke, SubmissionJointLock, SubmissionLegLock, SubmissionPressure:
		return true
	}
	return false
}

// Intent is the coarse goal behind a request.
type Intent string

const (
	IntentLearn           Intent = "learn"
	IntentReview          Intent = "review"
	IntentPractice        Intent = "practice"
	IntentCompete         Intent = "compete"
	IntentImproveWeakness Intent = "improve_weakness"
	IntentStrengthen      Intent = "strengthen"
	IntentAvoid           Intent = "avoid"
)

var validIntents = map[Intent]bool{
	IntentLearn:           true,
	IntentReview:          true,
	IntentPractice:        true,
	IntentCompete:         true,
	IntentImproveWeakness: true,
	IntentStrengthen:      true,
	IntentAvoid:           true,
}

func (i Intent) Valid() bool { return validIntents[i] }

// DifficultyPreference is the requester's inferred appetite for difficulty.
type DifficultyPreference string

const (
	PreferEasy        DifficultyPreference = "easy"
	PreferNormal      DifficultyPreference = "normal"
	PreferChallenging DifficultyPreference = "challenging"
)

// DifficultyCue is the explicit difficulty wording found in the text.
type DifficultyCue string

const (
	CueEasy   DifficultyCue = "easy"
	CueNormal DifficultyCue = "normal"
	CueHard   DifficultyCue = "hard"
)

// Intensity is the strength of modifier words in the request.
type Intensity string

const (
	IntensityVeryHigh Intensity = "very_high"
	IntensityHigh     Intensity = "high"
	IntensityMedium   Intensity = "medium"
	IntensityLow      Intensity = "low"
)

// Score maps the tier onto [0,1].
func (i Intensity) Score() float64 {
	switch i {
	case IntensityVeryHigh:
		return 1.0
	case IntensityHigh:
		return 0.8
	case IntensityLow:
		return 0.3
	default:
		return 0.5
	}
}

// Emotion is a coarse affect cue.
type Emotion string

const (
	EmotionFrustration Emotion = "frustration"
	EmotionPositive    Emotion = "positive"
	EmotionAnxiety     Emotion = "anxiety"
)

// ProgramDifficulty is the difficulty setting of a synthesized program.
type ProgramDifficulty string

const (
	ProgramEasy   ProgramDifficulty = "easy"
	ProgramNormal ProgramDifficulty = "normal"
	ProgramHard   ProgramDifficulty = "hard"
)

// Modifier is the per-technique time multiplier for the setting.
func (d ProgramDifficulty) Modifier() float64 {
	switch d {
	case ProgramEasy:
		return 0.8
	case ProgramHard:
		return 1.3
	default:
		return 1.0
	}
}

func (d ProgramDifficulty) Valid() bool {
	switch d {
	case ProgramEasy, ProgramNormal, ProgramHard:
		return true
	}
	return false
}

func ParseProgramDifficulty(s string) (ProgramDifficulty, error) {
	d := ProgramDifficulty(strings.TrimSpace(strings.ToLower(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return d, nil
}

// Belt is the practitioner's rank.
type Belt string

const (
	BeltWhite  Belt = "white"
	BeltBlue   Belt = "blue"
	BeltPurple Belt = "purple"
	BeltBrown  Belt = "brown"
	BeltBlack  Belt = "black"
)

// Belts lists ranks in ascending order.
var Belts = []Belt{BeltWhite, BeltBlue, BeltPurple, BeltBrown, BeltBlack}

var beltLabels = map[Belt]string{
	BeltWhite:  "화이트",
	BeltBlue:   "블루",
	BeltPurple: "퍼플",
	BeltBrown:  "브라운",
	BeltBlack:  "블랙",
}

func (b Belt) Label() string {
	if l, ok := beltLabels[b]; ok {
		return l
	}
	return string(b)
}

func (b Belt) Valid() bool {
	_, ok := beltLabels[b]
	return ok
}

// ParseBelt accepts either the code ("blue") or the Korean label ("블루").
func ParseBelt(s string) (Belt, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for b, label := range beltLabels {
		if s == string(b) || s == label {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown belt %q", s)
}
