package cmd

import (
	"context"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/config"
	"github.com/sabhahq/sabha/internal/errors"
	"github.com/sabhahq/sabha/internal/guard"
	"github.com/sabhahq/sabha/internal/log"
	"github.com/sabhahq/sabha/internal/role"
	"github.com/sabhahq/sabha/internal/session"
)

// app bundles the pieces every command needs: configuration, logging,
// the session store, and the gateway client.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  *session.Store
	client *api.Client
}

// newApp wires the application for a command invocation. The store and
// the client point at each other: the client reads the bearer token
// from the store, the store verifies restored tokens through the
// client, and the client's 401 hook clears the store.
func newApp() (*app, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})

	sessionPath, err := config.SessionPath()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionPersist, "cannot resolve session file location", err)
	}

	store := session.New(sessionPath, nil, logger)
	client := api.NewClient(cfg.APIURL, store, logger)
	store.SetVerifier(client)

	client.SetUnauthorizedHook(func() {
		if err := store.Clear(); err != nil {
			logger.WithError(err).Warn("failed to clear rejected session")
		}
	})

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		client: client,
	}, nil
}

// requireAccess restores and verifies the session, then checks the
// destination against the role policy. One-shot commands go through
// the same access decision as the console; only the failure mode
// differs (an error instead of a redirect).
func (a *app) requireAccess(ctx context.Context, dest role.Destination) (session.Snapshot, error) {
	a.store.Restore()
	if err := a.store.Verify(ctx); err != nil {
		return session.Snapshot{}, err
	}

	snap := a.store.Snapshot()
	decision := guard.Evaluate(snap, dest)
	switch decision.Action {
	case guard.Render:
		return snap, nil
	case guard.RedirectLogin:
		if !snap.Authenticated() {
			return snap, errors.NewNotLoggedInError()
		}
		return snap, errors.NewRoleUnknownError(snap.User.Role)
	case guard.RedirectHome:
		return snap, errors.NewRoleNotAllowedError(snap.Role().String(), string(dest))
	}
	return snap, errors.New(errors.ErrCodeRouteUnknown, "unable to resolve access for "+string(dest))
}
