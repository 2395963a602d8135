// Package payload holds the action payloads attached to tasks and their
// persisted string form.
package payload

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindQuiz         Kind = "QUIZ"
	KindReading      Kind = "READING"
	KindVideo        Kind = "VIDEO"
	KindExercise     Kind = "EXERCISE"
	KindMemorization Kind = "MEMORIZATION"
)

var ErrMalformed = errors.New("malformed task payload")

// Payload is one of Quiz, Reading, Video, Exercise or Memorization.
type Payload interface {
	Kind() Kind
	isPayload()
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
	PassRate  float64        `json:"passRate"`
}

type Reading struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

type Video struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

type Exercise struct {
	Items      []string `json:"items"`
	TotalCount int      `json:"totalCount"`
}

type Memorization struct {
	Items           []string `json:"items"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

func (Quiz) Kind() Kind         { return KindQuiz }
func (Reading) Kind() Kind      { return KindReading }
func (Video) Kind() Kind        { return KindVideo }
func (Exercise) Kind() Kind     { return KindExercise }
func (Memorization) Kind() Kind { return KindMemorization }

func (Quiz) isPayload()         {}
func (Reading) isPayload()      {}
func (Video) isPayload()        {}
func (Exercise) isPayload()     {}
func (Memorization) isPayload() {}

// ParseKind accepts the persisted discriminator. Empty string means "no action".
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case "", KindQuiz, KindReading, KindVideo, KindExercise, KindMemorization:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown action type %q", ErrMalformed, s)
}

// DeclaredMinutes is the study duration the payload itself declares, if any.
func DeclaredMinutes(p Payload) (int, bool) {
	var d *int
	switch v := p.(type) {
	case Reading:
		d = v.DurationMinutes
	case Video:
		d = v.DurationMinutes
	case Memorization:
		d = v.DurationMinutes
	}
	if d == nil {
		return 0, false
	}
	return *d, true
}
