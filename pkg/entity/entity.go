package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/pkg/payload"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Grade        string
}

type TaskType string

const (
	TaskTypeDaily     TaskType = "DAILY"
	TaskTypeReview    TaskType = "REVIEW"
	TaskTypePractice  TaskType = "PRACTICE"
	TaskTypeChallenge TaskType = "CHALLENGE"
)

type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "EASY"
	DifficultyMedium TaskDifficulty = "MEDIUM"
	DifficultyHard   TaskDifficulty = "HARD"
	DifficultyExpert TaskDifficulty = "EXPERT"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// Task is a unit of study work. A nil UserID marks a global task shared by every user.
// Status COMPLETED, Progress 1 and a non-nil CompletedAt always go together.
type Task struct {
	ID               string         `json:"id"`
	UserID           *uuid.UUID     `json:"uid,omitempty"`
	Title            string         `json:"title"`
	Description      string         `json:"desc"`
	Type             TaskType       `json:"type"`
	Difficulty       TaskDifficulty `json:"difficulty"`
	Status           TaskStatus     `json:"status"`
	Progress         float64        `json:"progress"`
	ExperienceReward int            `json:"exp"`
	CoinReward       int            `json:"coin"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Deadline         *time.Time     `json:"deadline,omitempty"`
	TargetGrade      *string        `json:"target_grade,omitempty"`
	// ActionType is set whenever the stored task declares an action, even if the
	// payload could not be decoded. Action is nil in that case.
	ActionType  payload.Kind    `json:"action_type,omitempty"`
	Action      payload.Payload `json:"-"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *Task) OwnedBy(uid uuid.UUID) bool {
	return t.UserID == nil || *t.UserID == uid
}

func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}

type CheckIn struct {
	UserID    uuid.UUID `json:"uid"`
	DateKey   string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type DailyTaskTemplate struct {
	ID               string
	Title            string
	Description      string
	Exp              int
	Coin             int
	EstimatedMinutes int
}

const (
	StudySourceFocus      = "FOCUS"
	studySourceTaskPrefix = "TASK_"
)

// StudySourceForTask names the session source for time attributed from a task action.
func StudySourceForTask(kind payload.Kind) string {
	return studySourceTaskPrefix + string(kind)
}

type StudySession struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	DayKey          string    `json:"day"`
	Source          string    `json:"source"`
	TaskID          *string   `json:"task_id,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

type CompletionResult struct {
	TaskID   string     `json:"task_id"`
	Status   TaskStatus `json:"status"`
	Score    float64    `json:"score"`
	Progress float64    `json:"progress"`
	Message  string     `json:"message"`
}

type CheckInResult struct {
	Created bool   `json:"created"`
	DateKey string `json:"date"`
	Streak  int    `json:"streak"`
}

type CheckInStats struct {
	Total          int    `json:"total"`
	Streak         int    `json:"streak"`
	CheckedInToday bool   `json:"checked_in_today"`
	Today          string `json:"today"`
}
