package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/studyquest/pkg/httputil"
)

type RecordStudyRequest struct {
	Minutes int `json:"minutes"`
}

func (s *Server) RecordStudy(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "recording study")
	if !ok {
		return
	}
	var req RecordStudyRequest
	if !decodeBody(w, r, logger, "recording study", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.studyService.RecordManualStudy(ctx, uid, req.Minutes); err != nil {
		writeServiceError(w, logger, "recording study", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, nil)
	logger.Info("study session recorded", slog.Int("minutes", req.Minutes))
}

func (s *Server) TodayStudyMinutes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "study minutes")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	minutes, err := s.studyService.TodayStudyMinutes(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "study minutes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"minutes": minutes})
}

func (s *Server) TodayStudyStream(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "study stream")
	if !ok {
		return
	}
	streamEvents(w, r, logger, "study_minutes", s.studyService.WatchTodayStudyMinutes(r.Context(), uid))
}
