package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/studyquest/internal/api"
	"github.com/limbo/studyquest/internal/feed"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/internal/service"
	"github.com/limbo/studyquest/pkg/cleanup"
	"github.com/limbo/studyquest/pkg/config"
	"github.com/limbo/studyquest/pkg/datekey"
	jwtservice "github.com/limbo/studyquest/pkg/jwt_service"
	"github.com/limbo/studyquest/pkg/logger"
	"golang.org/x/sync/errgroup"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger.Setup(logger.Config{
		Level: cfg.GetString("LOG_LEVEL"),
		File:  cfg.GetString("LOG_FILE"),
	})
	defer cleanup.CleanUp()
	if err := run(cfg); err != nil {
		slog.Error("api stopped with error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	location, err := datekey.LoadLocation(cfg.GetString("TIMEZONE"))
	if err != nil {
		return err
	}
	clock := datekey.SystemClock{Location: location}
	slog.Info("day keys resolved in timezone", slog.String("timezone", location.String()))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := repository.Connect(ctx, &dbCfg)
	if err != nil {
		return err
	}

	hub := feed.NewHub()
	studyService := service.NewStudyService(repository.NewStudySessionsRepo(pool), clock, hub)
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(repository.NewUsersRepo(pool)),
		CheckInService: service.NewCheckInService(repository.NewCheckInsRepo(pool), clock, hub),
		TaskService:    service.NewTaskService(repository.NewTasksRepo(pool), studyService, clock, hub),
		StudyService:   studyService,
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET")).
			WithTTL(cfg.GetDuration("JWT_TTL", 0)),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serv.Run(gctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	})
	if err = g.Wait(); err != nil {
		return err
	}
	slog.Info("api stopped")
	return nil
}
