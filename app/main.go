package main

import (
	"context"
	"database/sql"
	"flag"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/mailservice"
	"github.com/sushihentaime/blogfront/internal/store"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	api         *apiclient.Client
	sessions    *store.Store
	broker      common.MessageProducer
	mailService *mailservice.MailService
	templates   map[string]*template.Template
	limiter     *clientLimiter
}

func main() {
	configPath := flag.String("config", ".env", "path to the configuration file")
	flag.Parse()

	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Environment == "development" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	api, err := apiclient.New(cfg.APIBaseURL, &http.Client{}, logger)
	if err != nil {
		logger.Error("invalid API base URL", slog.String("error", err.Error()))
		os.Exit(1)
	}

	templates, err := newTemplateCache()
	if err != nil {
		logger.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Session persistence falls back to memory when no database is configured
	var repo store.SessionRepository = store.NewMemoryRepository()
	if dsn := cfg.dsn(); dsn != "" {
		db, err := openDB(dsn, cfg.MigrationsPath, logger)
		if err != nil {
			logger.Error("failed to connect to the database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer common.CloseDB(db)

		repo = store.NewSessionModel(db)
	} else {
		logger.Warn("no database configured, sessions will not survive a restart")
	}

	cache := common.NewCache(cfg.SessionTTL, 10*time.Minute)

	app := &application{
		config:    cfg,
		logger:    logger,
		api:       api,
		sessions:  store.New(repo, cache, cfg.SessionTTL),
		broker:    common.DiscardProducer{},
		templates: templates,
		limiter:   newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	// Initialize the message broker and the publication notice consumer
	if uri := cfg.rabbitURI(); uri != "" {
		broker, err := common.NewMessageBroker(uri)
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		err = common.SetupBlogExchange(broker)
		if err != nil {
			logger.Error("failed to setup the blog exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		app.broker = broker
		app.mailService = mailservice.NewMailService(broker, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Port, logger)

		err = app.mailService.NotifyPublished()
		if err != nil {
			logger.Error("failed to start the mail consumer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer app.mailService.Close()
	}

	// Start the HTTP server
	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func openDB(dsn, migrationsPath string, logger *slog.Logger) (*sql.DB, error) {
	db, err := common.NewDB(dsn, 10, 5, 15*time.Minute)
	if err != nil {
		return nil, err
	}

	m, err := common.Migrate(migrationsPath, dsn)
	if err != nil {
		db.Close()
		return nil, err
	}
	m.Close()

	logger.Info("database migrations applied")
	return db, nil
}

// purgeSessions deletes expired sessions until ctx is cancelled.
func (app *application) purgeSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := app.sessions.PurgeExpired(ctx)
			if err != nil {
				app.logger.Error("failed to purge sessions", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				app.logger.Info("purged expired sessions", slog.Int64("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
