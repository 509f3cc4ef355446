package cmd

import (
	"context"
	"os"
	"sync"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/config"
	"github.com/binharry/binharry-cli/internal/errors"
	"github.com/binharry/binharry-cli/internal/log"
	"github.com/binharry/binharry-cli/internal/session"
	"github.com/binharry/binharry-cli/internal/ux"
	"github.com/binharry/binharry-cli/internal/version"
)

// app bundles the wired client stack shared by every command
type app struct {
	cfg    config.Config
	logger *log.Logger
	client *api.Client
	store  *session.Store
}

var (
	appOnce sync.Once
	appInst *app
	appErr  error
)

// getApp builds the config, logger, gateway and session store once per
// process. Flags win over config values.
func getApp() (*app, error) {
	appOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			appErr = err
			return
		}
		if flagAPIURL != "" {
			cfg.APIURL = flagAPIURL
		}

		level := log.ParseLevel(cfg.LogLevel)
		if flagVerbose {
			level = log.LevelDebug
		}
		logger := log.New(log.Config{
			Level:          level,
			Format:         log.ParseFormat(cfg.LogFormat),
			Output:         log.OutputStderr(),
			ServiceName:    "binharry",
			ServiceVersion: version.Version,
		})
		log.SetDefaultLogger(logger)

		client := api.NewClient(cfg.APIURL, api.WithLogger(logger))
		store := session.NewStore(client, logger)

		appInst = &app{cfg: cfg, logger: logger, client: client, store: store}
	})
	return appInst, appErr
}

// getSession restores the persisted session if one exists. Connectivity
// failures surface; a missing or rejected token just leaves the store
// anonymous.
func getSession(ctx context.Context) (*app, error) {
	a, err := getApp()
	if err != nil {
		return nil, err
	}
	if err := a.store.Refresh(ctx); err != nil && errors.IsConnectivity(err) {
		return nil, err
	}
	return a, nil
}

// requireSession is getSession plus the guarantee that a user is logged in
func requireSession(ctx context.Context, operation string) (*app, error) {
	a, err := getSession(ctx)
	if err != nil {
		return nil, err
	}
	if !a.store.IsAuthenticated() {
		return nil, errors.NewAuthRequiredError(operation)
	}
	return a, nil
}

// requireAdmin is requireSession plus a privileged-role check
func requireAdmin(ctx context.Context, operation string) (*app, error) {
	a, err := requireSession(ctx, operation)
	if err != nil {
		return nil, err
	}
	if !a.store.Role().Privileged() {
		return nil, errors.NewBusinessError("accès réservé aux administrateurs")
	}
	return a, nil
}

// newFormatter builds the output formatter from the global flags
func newFormatter() (ux.Formatter, error) {
	return ux.NewFormatter(flagOutput, &ux.FormatterOptions{
		Writer:  os.Stdout,
		NoColor: flagNoColor,
	})
}

// printTable routes tabular output through the active formatter
func printTable(headers []string, rows [][]string, raw any, footer string) error {
	f, err := newFormatter()
	if err != nil {
		return err
	}
	return f.Format(ux.TableData{Headers: headers, Rows: rows, Raw: raw, Footer: footer})
}
