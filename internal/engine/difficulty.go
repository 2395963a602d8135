package engine

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/pkg/entity"
)

const (
	DefaultAlpha         = 0.25
	DefaultBeta          = 1.5
	DefaultTargetMastery = 0.8
	BaseDifficulty       = 1.0

	// Used when no mastery data is known yet.
	DefaultTopic   = "default"
	DefaultMastery = 0.5

	DynamicTaskTTL = 24 * time.Hour
)

type Tier struct {
	Difficulty       entity.TaskDifficulty
	Type             entity.TaskType
	ExperienceReward int
	EstimatedMinutes int
	describe         func(topic string) string
}

func (t Tier) CoinReward() int {
	return t.ExperienceReward / 2
}

func (t Tier) Describe(topic string) string {
	return t.describe(topic)
}

var (
	tierEasy = Tier{
		Difficulty:       entity.DifficultyEasy,
		Type:             entity.TaskTypeReview,
		ExperienceReward: 20,
		EstimatedMinutes: 15,
		describe:         func(topic string) string { return "Finish end-of-chapter exercises 1-5 for " + topic },
	}
	tierMedium = Tier{
		Difficulty:       entity.DifficultyMedium,
		Type:             entity.TaskTypePractice,
		ExperienceReward: 50,
		EstimatedMinutes: 30,
		describe:         func(topic string) string { return "Watch the " + topic + " micro-lecture and do the practice set" },
	}
	tierHard = Tier{
		Difficulty:       entity.DifficultyHard,
		Type:             entity.TaskTypeChallenge,
		ExperienceReward: 100,
		EstimatedMinutes: 45,
		describe:         func(topic string) string { return "Comprehensive application training on " + topic },
	}
	tierExpert = Tier{
		Difficulty:       entity.DifficultyExpert,
		Type:             entity.TaskTypeChallenge,
		ExperienceReward: 200,
		EstimatedMinutes: 60,
		describe:         func(topic string) string { return "Take part in a hands-on " + topic + " project" },
	}
)

// TierFor maps a calculated difficulty onto a tier. Thresholds are exclusive upper bounds.
func TierFor(difficulty float64) Tier {
	switch {
	case difficulty < 0.5:
		return tierEasy
	case difficulty < 1.0:
		return tierMedium
	case difficulty < 1.5:
		return tierHard
	default:
		return tierExpert
	}
}

// DifficultyEngine scales task difficulty as D = base * (1 + alpha * (current/target)^beta).
type DifficultyEngine struct {
	Alpha         float64
	Beta          float64
	TargetMastery float64
	Base          float64
}

func NewDifficultyEngine() DifficultyEngine {
	return DifficultyEngine{
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
		TargetMastery: DefaultTargetMastery,
		Base:          BaseDifficulty,
	}
}

type Assessment struct {
	Topic      string
	Mastery    float64
	Ratio      float64
	Factor     float64
	Difficulty float64
	Tier       Tier
}

// WeakestTopic picks the lowest mastery. Ties go to the lexicographically smallest topic.
func WeakestTopic(mastery map[string]float64) (string, float64) {
	if len(mastery) == 0 {
		return DefaultTopic, DefaultMastery
	}
	topics := make([]string, 0, len(mastery))
	for topic := range mastery {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	weakest := topics[0]
	for _, topic := range topics[1:] {
		if mastery[topic] < mastery[weakest] {
			weakest = topic
		}
	}
	return weakest, mastery[weakest]
}

func (e DifficultyEngine) Score(currentMastery float64) (ratio, factor, difficulty float64) {
	ratio = currentMastery / e.TargetMastery
	factor = 1 + e.Alpha*math.Pow(ratio, e.Beta)
	difficulty = e.Base * factor
	return ratio, factor, difficulty
}

func (e DifficultyEngine) Assess(mastery map[string]float64) Assessment {
	topic, current := WeakestTopic(mastery)
	ratio, factor, difficulty := e.Score(current)
	return Assessment{
		Topic:      topic,
		Mastery:    current,
		Ratio:      ratio,
		Factor:     factor,
		Difficulty: difficulty,
		Tier:       TierFor(difficulty),
	}
}

// BuildTask turns an assessment into a pending task for uid due DynamicTaskTTL after now.
func (a Assessment) BuildTask(uid uuid.UUID, now time.Time) entity.Task {
	deadline := now.Add(DynamicTaskTTL)
	owner := uid
	return entity.Task{
		ID:               uuid.NewString(),
		UserID:           &owner,
		Title:            a.Topic + " study task",
		Description:      a.Tier.Describe(a.Topic),
		Type:             a.Tier.Type,
		Difficulty:       a.Tier.Difficulty,
		Status:           entity.StatusPending,
		ExperienceReward: a.Tier.ExperienceReward,
		CoinReward:       a.Tier.CoinReward(),
		EstimatedMinutes: a.Tier.EstimatedMinutes,
		Deadline:         &deadline,
		CreatedAt:        now,
	}
}
