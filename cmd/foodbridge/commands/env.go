// Package commands implements the foodbridge CLI. The CLI is the UI
// collaborator of the client core: it renders pages and suggestions, and
// surfaces workflow notifications.
package commands

import (
	"fmt"
	"os"

	"github.com/foodbridge/foodbridge/internal/config"
	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/identity"
	"github.com/foodbridge/foodbridge/internal/images"
	"github.com/foodbridge/foodbridge/internal/logger"
	"github.com/foodbridge/foodbridge/internal/suggest"
	"go.uber.org/zap"
)

// env wires the client components for one command invocation.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	ds       datasource.DataSource
	session  *identity.Session
	resolver *images.Resolver
	workflow *suggest.Workflow
}

func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapLogger, err := logger.NewDevelopmentLogger(cfg.DebugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ds, err := datasource.DefaultRegistry().Get(cfg.DataSourceVariant(), map[string]string{
		"base_url": cfg.APIBaseURL,
	})
	if err != nil {
		return nil, err
	}

	session := identity.NewSession(cfg.StateDir, zapLogger)
	e := &env{
		cfg:      cfg,
		logger:   zapLogger,
		ds:       ds,
		session:  session,
		resolver: images.NewResolver(cfg.ImageBaseURL),
	}
	e.workflow = suggest.NewWorkflow(ds, session.UserID, &consoleNotifier{}, zapLogger)
	return e, nil
}

func (e *env) close() {
	_ = logger.Sync(e.logger)
}

// consoleNotifier prints workflow notifications the way the app shows
// toasts.
type consoleNotifier struct{}

func (n *consoleNotifier) Notify(title, message string, isError bool) {
	out := os.Stdout
	if isError {
		out = os.Stderr
	}
	fmt.Fprintf(out, "%s %s\n", title, message)
}
