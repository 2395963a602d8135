package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/studyquest/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	checkInService service.CheckInServiceI
	taskService    service.TaskServiceI
	studyService   service.StudyServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	CheckInService service.CheckInServiceI
	TaskService    service.TaskServiceI
	StudyService   service.StudyServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		checkInService: servicesOptions.CheckInService,
		taskService:    servicesOptions.TaskService,
		studyService:   servicesOptions.StudyService,
		jwtService:     servicesOptions.JwtService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/me", s.Me)
			r.Patch("/me/grade", s.UpdateGrade)
			r.Delete("/me", s.DeleteAccount)

			r.Post("/checkins", s.CheckIn)
			r.Get("/checkins/today", s.CheckInStatus)
			r.Get("/checkins/streak", s.Streak)
			r.Get("/checkins/streak/stream", s.StreakStream)
			r.Get("/checkins/stats", s.CheckInStats)
			r.Get("/checkins/history", s.CheckInHistory)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", s.ListTasks)
				r.Post("/", s.SaveTasks)
				r.Get("/active", s.ListActiveTasks)
				r.Get("/active/stream", s.ActiveTasksStream)
				r.Get("/completed/count", s.CompletedTaskCount)
				r.Post("/daily", s.EnsureDailyTasks)
				r.Post("/dynamic", s.GenerateDynamicTask)
				r.Post("/challenges/complete", s.CompleteChallenge)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetTask)
					r.Get("/payload", s.GetTaskPayload)
					r.Patch("/progress", s.UpdateProgress)
					r.Post("/quiz", s.SubmitQuiz)
					r.Post("/reading", s.SubmitReading)
					r.Post("/video", s.SubmitVideo)
					r.Post("/memorization", s.SubmitMemorization)
					r.Post("/exercise", s.SubmitExercise)
				})
			})

			r.Post("/study/sessions", s.RecordStudy)
			r.Get("/study/today", s.TodayStudyMinutes)
			r.Get("/study/today/stream", s.TodayStudyStream)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is done, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("api server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
