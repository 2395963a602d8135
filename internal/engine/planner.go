package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/pkg/entity"
)

type Scope struct {
	UserID *uuid.UUID
	Grade  string
}

// DailyTaskID is the deterministic id of a template's task for a day.
func DailyTaskID(templateID, dayKey string) string {
	return templateID + "_" + dayKey
}

// PlanMissing returns the daily tasks of dayKey that are not in existing yet.
// It never persists anything, so calling it again with the returned ids added
// to existing yields nothing.
func PlanMissing(templates []entity.DailyTaskTemplate, dayKey string, existing map[string]struct{}, scope Scope, now time.Time) []entity.Task {
	tasks := make([]entity.Task, 0, len(templates))
	for _, tmpl := range templates {
		id := DailyTaskID(tmpl.ID, dayKey)
		if _, ok := existing[id]; ok {
			continue
		}
		task := entity.Task{
			ID:               id,
			UserID:           scope.UserID,
			Title:            tmpl.Title,
			Description:      tmpl.Description,
			Type:             entity.TaskTypeDaily,
			Difficulty:       entity.DifficultyEasy,
			Status:           entity.StatusPending,
			ExperienceReward: tmpl.Exp,
			CoinReward:       tmpl.Coin,
			EstimatedMinutes: tmpl.EstimatedMinutes,
			CreatedAt:        now,
		}
		if scope.Grade != "" {
			grade := scope.Grade
			task.TargetGrade = &grade
		}
		tasks = append(tasks, task)
	}
	return tasks
}
