package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/limbo/studyquest/internal/engine"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/httputil"
)

type QuizFailureResponse struct {
	Code     int     `json:"code"`
	Message  string  `json:"message"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Score    float64 `json:"score"`
	PassRate float64 `json:"pass_rate"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrTaskNotFound),
		errors.Is(err, errorvalues.ErrWrongOwner):
		return http.StatusNotFound
	case errors.Is(err, errorvalues.ErrUserExists),
		errors.Is(err, errorvalues.ErrTaskExists),
		errors.Is(err, errorvalues.ErrCheckInExists),
		errors.Is(err, errorvalues.ErrTaskAlreadyCompleted),
		errors.Is(err, errorvalues.ErrTaskStateConflict):
		return http.StatusConflict
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return http.StatusForbidden
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidRange),
		errors.Is(err, errorvalues.ErrInvalidMastery),
		errors.Is(err, errorvalues.ErrInvalidSubmission),
		errors.Is(err, errorvalues.ErrAnswerCountMismatch),
		errors.Is(err, errorvalues.ErrBelowPassRate),
		errors.Is(err, errorvalues.ErrActionTypeMismatch),
		errors.Is(err, errorvalues.ErrPayloadMalformed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err under op and answers with the status its sentinel maps to.
// Internal failures never leak their text to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, "internal error", nil)
		return
	}
	logger.Warn(op+" error", slog.String("error", err.Error()))
	var failure *engine.QuizFailure
	if errors.As(err, &failure) {
		httputil.WriteJSONResponse(w, code, QuizFailureResponse{
			Code:     code,
			Message:  failure.Error(),
			Correct:  failure.Correct,
			Total:    failure.Total,
			Score:    failure.Score,
			PassRate: failure.PassRate,
		})
		return
	}
	httputil.WriteErrorResponse(w, code, http.StatusText(code), err)
}
