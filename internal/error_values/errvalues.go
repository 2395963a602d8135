package errorvalues

import (
	"errors"

	"github.com/limbo/studyquest/pkg/payload"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("resource belongs to another user")
)

var (
	ErrTaskNotFound         = errors.New("task doesn't exist")
	ErrTaskExists           = errors.New("task with such id already exists")
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
	ErrTaskStateConflict    = errors.New("task was changed concurrently")
	ErrActionTypeMismatch   = errors.New("task action type doesn't match")
	ErrPayloadMalformed     = payload.ErrMalformed
	ErrAnswerCountMismatch  = errors.New("answer count doesn't match question count")
	ErrBelowPassRate        = errors.New("score is below pass rate")
	ErrInvalidSubmission    = errors.New("invalid submission")
	ErrInvalidMastery       = errors.New("mastery must be within [0, 1]")
)

var (
	ErrCheckInExists = errors.New("already checked in for this day")
	ErrInvalidRange  = errors.New("range start is after its end")
)

var (
	ErrValidation = errors.New("validation error")
)
