package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/studyquest/internal/service"
	"github.com/limbo/studyquest/pkg/httputil"
)

func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "check-in")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.checkInService.CheckIn(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "check-in", err)
		return
	}
	code := http.StatusOK
	if result.Created {
		code = http.StatusCreated
	}
	httputil.WriteJSONResponse(w, code, result)
	logger.Info("checked in", slog.Bool("created", result.Created), slog.Int("streak", result.Streak))
}

func (s *Server) CheckInStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "check-in status")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	checked, err := s.checkInService.IsCheckedInToday(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "check-in status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"checked_in": checked})
}

func (s *Server) Streak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "streak")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	streak, err := s.checkInService.Streak(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streak": streak})
}

func (s *Server) StreakStream(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "streak stream")
	if !ok {
		return
	}
	streamEvents(w, r, logger, "streak", s.checkInService.WatchStreak(r.Context(), uid))
}

func (s *Server) CheckInStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "check-in stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.checkInService.Stats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "check-in stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) CheckInHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "check-in history")
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	checkIns, err := s.checkInService.History(ctx, uid, &service.HistoryRequest{
		From: q.Get("from"),
		To:   q.Get("to"),
	})
	if err != nil {
		writeServiceError(w, logger, "check-in history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"from":      q.Get("from"),
		"to":        q.Get("to"),
		"check_ins": checkIns,
	})
}
