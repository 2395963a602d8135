package engine_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/internal/engine"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeakestTopic(t *testing.T) {
	testCases := []struct {
		Desc    string
		Mastery map[string]float64
		Topic   string
		Value   float64
	}{
		{Desc: "empty map", Mastery: nil, Topic: "default", Value: 0.5},
		{Desc: "single", Mastery: map[string]float64{"limits": 0.9}, Topic: "limits", Value: 0.9},
		{
			Desc:    "minimum wins",
			Mastery: map[string]float64{"limits": 0.9, "series": 0.2, "integrals": 0.4},
			Topic:   "series",
			Value:   0.2,
		},
		{
			Desc:    "tie goes to smallest id",
			Mastery: map[string]float64{"vectors": 0.3, "matrices": 0.3, "limits": 0.7},
			Topic:   "matrices",
			Value:   0.3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			topic, value := engine.WeakestTopic(tc.Mastery)
			assert.Equal(t, tc.Topic, topic)
			assert.Equal(t, tc.Value, value)
		})
	}
}

func TestScore(t *testing.T) {
	e := engine.NewDifficultyEngine()
	ratio, factor, difficulty := e.Score(0.4)
	assert.InDelta(t, 0.5, ratio, 1e-9)
	assert.InDelta(t, 1.0884, factor, 1e-4)
	assert.InDelta(t, 1.0884, difficulty, 1e-4)

	_, factor, difficulty = e.Score(0)
	assert.Equal(t, 1.0, factor)
	assert.Equal(t, 1.0, difficulty)
}

func TestDifficultyMonotonic(t *testing.T) {
	e := engine.NewDifficultyEngine()
	_, _, prev := e.Score(0)
	for i := 1; i <= 80; i++ {
		_, _, d := e.Score(float64(i) / 100)
		assert.GreaterOrEqual(t, d, prev, "mastery %.2f", float64(i)/100)
		prev = d
	}
}

func TestTierFor(t *testing.T) {
	testCases := []struct {
		Desc       string
		Difficulty float64
		Tier       entity.TaskDifficulty
		Type       entity.TaskType
		Exp        int
		Minutes    int
	}{
		{Desc: "easy", Difficulty: 0.3, Tier: entity.DifficultyEasy, Type: entity.TaskTypeReview, Exp: 20, Minutes: 15},
		{Desc: "medium lower edge", Difficulty: 0.5, Tier: entity.DifficultyMedium, Type: entity.TaskTypePractice, Exp: 50, Minutes: 30},
		{Desc: "exactly one is hard", Difficulty: 1.0, Tier: entity.DifficultyHard, Type: entity.TaskTypeChallenge, Exp: 100, Minutes: 45},
		{Desc: "just below one and a half", Difficulty: 1.49, Tier: entity.DifficultyHard, Type: entity.TaskTypeChallenge, Exp: 100, Minutes: 45},
		{Desc: "expert", Difficulty: 1.5, Tier: entity.DifficultyExpert, Type: entity.TaskTypeChallenge, Exp: 200, Minutes: 60},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tier := engine.TierFor(tc.Difficulty)
			assert.Equal(t, tc.Tier, tier.Difficulty)
			assert.Equal(t, tc.Type, tier.Type)
			assert.Equal(t, tc.Exp, tier.ExperienceReward)
			assert.Equal(t, tc.Exp/2, tier.CoinReward())
			assert.Equal(t, tc.Minutes, tier.EstimatedMinutes)
		})
	}
}

func TestAssess(t *testing.T) {
	e := engine.NewDifficultyEngine()
	t.Run("weak topic at half target", func(t *testing.T) {
		a := e.Assess(map[string]float64{"series": 0.4, "limits": 0.7})
		assert.Equal(t, "series", a.Topic)
		assert.Equal(t, entity.DifficultyHard, a.Tier.Difficulty)
		assert.Equal(t, 100, a.Tier.ExperienceReward)
	})
	t.Run("no data", func(t *testing.T) {
		a := e.Assess(map[string]float64{})
		assert.Equal(t, "default", a.Topic)
		assert.Equal(t, 0.5, a.Mastery)
		assert.InDelta(t, 0.625, a.Ratio, 1e-9)
	})
	t.Run("steeper engine reaches expert", func(t *testing.T) {
		steep := engine.DifficultyEngine{Alpha: 1, Beta: 1.5, TargetMastery: 0.8, Base: 1}
		a := steep.Assess(map[string]float64{"graphs": 0.8})
		assert.Equal(t, entity.DifficultyExpert, a.Tier.Difficulty)
	})
	t.Run("low base reaches easy", func(t *testing.T) {
		low := engine.DifficultyEngine{Alpha: 0.25, Beta: 1.5, TargetMastery: 0.8, Base: 0.4}
		a := low.Assess(map[string]float64{"graphs": 0})
		assert.Equal(t, entity.DifficultyEasy, a.Tier.Difficulty)
		assert.Equal(t, entity.TaskTypeReview, a.Tier.Type)
	})
}

func TestBuildTask(t *testing.T) {
	uid := uuid.New()
	now := time.Date(2026, time.February, 18, 10, 0, 0, 0, time.UTC)
	a := engine.NewDifficultyEngine().Assess(map[string]float64{"series": 0.4})
	task := a.BuildTask(uid, now)
	_, err := uuid.Parse(task.ID)
	assert.NoError(t, err)
	require.NotNil(t, task.UserID)
	assert.Equal(t, uid, *task.UserID)
	assert.Equal(t, "series study task", task.Title)
	assert.Contains(t, task.Description, "series")
	assert.Equal(t, entity.StatusPending, task.Status)
	assert.Equal(t, entity.TaskTypeChallenge, task.Type)
	assert.Equal(t, 100, task.ExperienceReward)
	assert.Equal(t, 50, task.CoinReward)
	assert.Equal(t, 45, task.EstimatedMinutes)
	require.NotNil(t, task.Deadline)
	assert.Equal(t, now.Add(24*time.Hour), *task.Deadline)
	assert.Equal(t, now, task.CreatedAt)
}
