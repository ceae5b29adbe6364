package cmd

import (
	"fmt"

	"github.com/unijobs/unijobs/internal/api"
	"github.com/unijobs/unijobs/internal/auth"
	"github.com/unijobs/unijobs/internal/authz"
	"github.com/unijobs/unijobs/internal/config"
	uniErrors "github.com/unijobs/unijobs/internal/errors"
	"github.com/unijobs/unijobs/internal/log"
	"github.com/unijobs/unijobs/internal/render"
)

// app bundles the wired-up client stack every command works against.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	store    *auth.TokenStore
	gateway  *auth.Gateway
	client   *api.Client
	session  *auth.SessionState
	guard    *authz.Guard
	renderer *render.Renderer
}

// newApp loads configuration, opens the session storage, and builds the API
// client. It is called at the top of every RunE so flag overrides are already
// parsed.
func newApp() (*app, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logCfg := log.DefaultConfig()
	if cfg.LogLevel != "" {
		logCfg.Level = log.ParseLevel(cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		logCfg.Format = log.ParseFormat(cfg.LogFormat)
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	stateDir, err := auth.DefaultStateDir()
	if err != nil {
		return nil, fmt.Errorf("resolve session directory: %w", err)
	}
	store := auth.NewTokenStore(auth.NewFileStorage(stateDir))
	gateway := auth.NewGateway(cfg.BaseURL, cfg.Timeout(), store)
	session := auth.NewSessionState(store)

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		gateway:  gateway,
		client:   api.NewClient(cfg.BaseURL, cfg.Timeout(), gateway, cfg.LoginPath),
		session:  session,
		guard:    authz.NewGuard(session, cfg.LoginPath, cfg.HomePath),
		renderer: render.NewRenderer(),
	}, nil
}

// requireAuth fails before any request is made when no session exists. The
// error carries the login redirect with the attempted path as the return-to
// target.
func (a *app) requireAuth(current string) error {
	redirect := a.guard.RequireAuth(current)
	if redirect == nil {
		return nil
	}
	return uniErrors.New(uniErrors.ErrCodeLoginRequired, "you must be logged in to do that").
		WithSuggestion("Run 'unijobs login' to sign in").
		WithRedirect(redirect.Target)
}

// requireRole fails when the session exists but belongs to the wrong role.
func (a *app) requireRole(expected authz.Role, current string) error {
	if err := a.requireAuth(current); err != nil {
		return err
	}
	redirect := a.guard.RequireRole(expected, current)
	if redirect == nil {
		return nil
	}
	return uniErrors.New(uniErrors.ErrCodeWrongRole,
		fmt.Sprintf("only %ss can do that", expected)).
		WithRedirect(redirect.Target)
}
