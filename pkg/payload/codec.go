package payload

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Encode returns the discriminator and JSON form stored alongside a task.
func Encode(p Payload) (Kind, string, error) {
	if p == nil {
		return "", "", nil
	}
	raw, err := sonic.MarshalString(p)
	if err != nil {
		return "", "", fmt.Errorf("encoding %s payload: %w", p.Kind(), err)
	}
	return p.Kind(), raw, nil
}

// Decode parses raw according to kind. Every failure wraps ErrMalformed.
func Decode(kind Kind, raw string) (Payload, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty %s payload", ErrMalformed, kind)
	}
	var (
		p   Payload
		err error
	)
	switch kind {
	case KindQuiz:
		var v Quiz
		err = sonic.UnmarshalString(raw, &v)
		p = v
	case KindReading:
		var v Reading
		err = sonic.UnmarshalString(raw, &v)
		p = v
	case KindVideo:
		var v Video
		err = sonic.UnmarshalString(raw, &v)
		p = v
	case KindExercise:
		var v Exercise
		err = sonic.UnmarshalString(raw, &v)
		p = v
	case KindMemorization:
		var v Memorization
		err = sonic.UnmarshalString(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("%w: unknown action type %q", ErrMalformed, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, kind, err)
	}
	if err = validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func validate(p Payload) error {
	switch v := p.(type) {
	case Quiz:
		if len(v.Questions) == 0 {
			return fmt.Errorf("%w: quiz has no questions", ErrMalformed)
		}
		if v.PassRate < 0 || v.PassRate > 1 {
			return fmt.Errorf("%w: quiz pass rate %v out of range", ErrMalformed, v.PassRate)
		}
	case Exercise:
		if v.TotalCount <= 0 {
			return fmt.Errorf("%w: exercise total count must be positive", ErrMalformed)
		}
	}
	if d, ok := DeclaredMinutes(p); ok && d < 0 {
		return fmt.Errorf("%w: negative duration", ErrMalformed)
	}
	return nil
}
