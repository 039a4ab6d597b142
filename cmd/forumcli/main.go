package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/forumapp/forumcli/internal/cli"
	"github.com/forumapp/forumcli/internal/core/ports"
	"github.com/forumapp/forumcli/internal/core/service"
	"github.com/forumapp/forumcli/internal/infrastructure/rest"
	"github.com/forumapp/forumcli/internal/infrastructure/store"
	"github.com/forumapp/forumcli/internal/infrastructure/token"
	"github.com/forumapp/forumcli/internal/pkg/config"
	"github.com/forumapp/forumcli/pkg/logger"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	var sessionStore ports.SessionStore
	switch cfg.Session.Store {
	case config.StoreRedis:
		rdb, err := store.Connect(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis session store unavailable")
		}
		defer rdb.Close()
		sessionStore = store.NewRedisStore(rdb)
	default:
		path := cfg.Session.File
		if path == "" {
			path = store.DefaultSessionPath()
		}
		sessionStore = store.NewFileStore(path)
	}

	// The client reads the blob per request and the session manager tears
	// itself down on any 401/403 outside login; both sides close over the
	// same store, so the late-bound pointer below is safe.
	var sessions *service.SessionService
	client := rest.NewClient(rest.Options{
		BaseURL: cfg.APIURL,
		Timeout: cfg.HTTPTimeout,
		Token: func(ctx context.Context) string {
			blob, _ := sessionStore.Load(ctx)
			return blob
		},
		OnAuthFailure: func() {
			if sessions != nil {
				sessions.Logout(context.Background())
			}
		},
		Log: logger.Component("rest"),
	})

	notifier := cli.ConsoleNotifier{Out: os.Stdout}
	authGW := rest.NewAuthGateway(client)
	userGW := rest.NewUserGateway(client)
	questionGW := rest.NewQuestionGateway(client)
	answerGW := rest.NewAnswerGateway(client)
	voteGW := rest.NewVoteGateway(client)
	tagGW := rest.NewTagGateway(client)
	uploadGW := rest.NewUploadGateway(client)

	sessions = service.NewSessionService(
		sessionStore, token.NewCodec(), authGW, userGW, notifier,
		cfg.BanPollInterval, logger.Component("session"),
	)
	defer sessions.Close()
	sessions.Restore(ctx)

	guard := service.NewGuard(sessions)
	app := &cli.App{
		Sessions:   sessions,
		Guard:      guard,
		Questions:  service.NewQuestionService(questionGW, logger.Component("questions")),
		Answers:    service.NewAnswerService(answerGW, logger.Component("answers")),
		Votes:      service.NewVoteService(voteGW, questionGW, logger.Component("votes")),
		Tags:       service.NewTagService(tagGW, logger.Component("tags")),
		Moderation: service.NewModerationService(userGW, guard, logger.Component("moderation")),
		Profile:    service.NewProfileService(userGW, sessions, logger.Component("profile")),
		Uploads:    service.NewUploadService(uploadGW, logger.Component("uploads")),
		Out:        os.Stdout,
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
