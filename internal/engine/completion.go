package engine

import (
	"fmt"
	"math"

	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/payload"
)

// State is the mutable part of a task the completion rules care about.
type State struct {
	Status   entity.TaskStatus
	Progress float64
}

func StateOf(task *entity.Task) State {
	return State{Status: task.Status, Progress: task.Progress}
}

// Submission is what a user sends to move a task forward.
type Submission interface {
	Action() payload.Kind
}

type QuizAnswers struct {
	Answers []int
}

// Confirmation completes reading, video and memorization tasks.
type Confirmation struct {
	Kind payload.Kind
}

type ExerciseChecks struct {
	Checked int
}

func (QuizAnswers) Action() payload.Kind    { return payload.KindQuiz }
func (c Confirmation) Action() payload.Kind { return c.Kind }
func (ExerciseChecks) Action() payload.Kind { return payload.KindExercise }

// Effects are the side effects a transition asks the caller to perform.
type Effects struct {
	RecordStudy  bool
	StudyMinutes int
}

type Outcome struct {
	Next    State
	Score   float64
	Message string
	Effects Effects
}

func (o Outcome) Completed() bool {
	return o.Next.Status == entity.StatusCompleted
}

// QuizFailure reports a quiz attempt that scored below the pass rate.
type QuizFailure struct {
	Correct  int
	Total    int
	Score    float64
	PassRate float64
}

func (f *QuizFailure) Error() string {
	return fmt.Sprintf("pass line %d%% not reached: %d/%d correct, score %d%%",
		percent(f.PassRate), f.Correct, f.Total, percent(f.Score))
}

func (f *QuizFailure) Unwrap() error {
	return errorvalues.ErrBelowPassRate
}

// Transition applies sub to a task in state current carrying p.
// estimatedMinutes is the task's own estimate, used when p declares no duration.
func Transition(current State, p payload.Payload, sub Submission, estimatedMinutes int) (Outcome, error) {
	if current.Status == entity.StatusCompleted {
		return Outcome{}, errorvalues.ErrTaskAlreadyCompleted
	}
	if p == nil {
		return Outcome{}, errorvalues.ErrPayloadMalformed
	}
	if sub == nil || sub.Action() != p.Kind() {
		return Outcome{}, errorvalues.ErrActionTypeMismatch
	}
	switch s := sub.(type) {
	case QuizAnswers:
		quiz, ok := p.(payload.Quiz)
		if !ok {
			return Outcome{}, errorvalues.ErrActionTypeMismatch
		}
		return quizTransition(quiz, s, estimatedMinutes)
	case Confirmation:
		switch p.(type) {
		case payload.Reading, payload.Video, payload.Memorization:
			return confirmTransition(p, estimatedMinutes)
		}
		return Outcome{}, errorvalues.ErrActionTypeMismatch
	case ExerciseChecks:
		exercise, ok := p.(payload.Exercise)
		if !ok {
			return Outcome{}, errorvalues.ErrActionTypeMismatch
		}
		return exerciseTransition(exercise, s, estimatedMinutes)
	}
	return Outcome{}, errorvalues.ErrActionTypeMismatch
}

func quizTransition(quiz payload.Quiz, sub QuizAnswers, estimatedMinutes int) (Outcome, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return Outcome{}, errorvalues.ErrPayloadMalformed
	}
	if len(sub.Answers) != total {
		return Outcome{}, errorvalues.ErrAnswerCountMismatch
	}
	correct := 0
	for i, q := range quiz.Questions {
		if sub.Answers[i] == q.CorrectIndex {
			correct++
		}
	}
	score := float64(correct) / float64(total)
	if score < quiz.PassRate {
		return Outcome{}, &QuizFailure{
			Correct:  correct,
			Total:    total,
			Score:    score,
			PassRate: quiz.PassRate,
		}
	}
	return Outcome{
		Next:    completedState(),
		Score:   score,
		Message: fmt.Sprintf("Passed! %d/%d correct, score %d%%", correct, total, percent(score)),
		Effects: studyEffect(estimatedMinutes),
	}, nil
}

func confirmTransition(p payload.Payload, estimatedMinutes int) (Outcome, error) {
	minutes := estimatedMinutes
	if declared, ok := payload.DeclaredMinutes(p); ok {
		minutes = declared
	}
	return Outcome{
		Next:    completedState(),
		Score:   1,
		Message: "Completed",
		Effects: studyEffect(minutes),
	}, nil
}

func exerciseTransition(exercise payload.Exercise, sub ExerciseChecks, estimatedMinutes int) (Outcome, error) {
	if exercise.TotalCount <= 0 {
		return Outcome{}, errorvalues.ErrPayloadMalformed
	}
	if sub.Checked < 0 {
		return Outcome{}, fmt.Errorf("%w: negative checked count", errorvalues.ErrInvalidSubmission)
	}
	if sub.Checked >= exercise.TotalCount {
		return Outcome{
			Next:    completedState(),
			Score:   1,
			Message: fmt.Sprintf("Completed all %d items", exercise.TotalCount),
			Effects: studyEffect(estimatedMinutes),
		}, nil
	}
	progress := float64(sub.Checked) / float64(exercise.TotalCount)
	return Outcome{
		Next:    State{Status: entity.StatusInProgress, Progress: progress},
		Score:   progress,
		Message: fmt.Sprintf("Completed %d/%d items, keep going", sub.Checked, exercise.TotalCount),
	}, nil
}

// ProgressState derives the state for a manually reported progress value.
func ProgressState(progress float64) State {
	switch {
	case math.IsNaN(progress) || progress <= 0:
		return State{Status: entity.StatusPending, Progress: 0}
	case progress >= 1:
		return completedState()
	default:
		return State{Status: entity.StatusInProgress, Progress: progress}
	}
}

// StudyMinutes clamps a duration to the one minute floor every session has.
func StudyMinutes(minutes int) int {
	return max(minutes, 1)
}

func completedState() State {
	return State{Status: entity.StatusCompleted, Progress: 1}
}

func studyEffect(minutes int) Effects {
	return Effects{RecordStudy: true, StudyMinutes: StudyMinutes(minutes)}
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}
