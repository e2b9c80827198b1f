package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/class-sync/internal/adapter"
	"github.com/MKhiriev/class-sync/internal/config"
	"github.com/MKhiriev/class-sync/internal/logger"
	"github.com/MKhiriev/class-sync/internal/session"
	"github.com/MKhiriev/class-sync/internal/store"
	"github.com/MKhiriev/class-sync/models"
)

const loggerRole = "classsync-client"

// App is the classsync CLI. Its dependencies are created lazily by the first
// command that needs them and released when Run returns.
type App struct {
	buildInfo models.AppBuildInfo
	out       io.Writer

	logger  *logger.Logger
	storage store.Storage
	session *session.Session
	adapter adapter.ServerAdapter
}

var _ Client = (*App)(nil)

// NewApp returns an App printing command results to out.
func NewApp(buildInfo models.AppBuildInfo, out io.Writer) *App {
	return &App{
		buildInfo: buildInfo,
		out:       out,
		logger:    logger.Nop(),
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close()
	return a.command().Run(ctx, args)
}

func (a *App) command() *cli.Command {
	return &cli.Command{
		Name:    "classsync",
		Usage:   "command-line client for the ClassSync learning platform",
		Version: a.buildInfo.BuildVersion(),
		Writer:  a.out,
		Flags:   config.Flags(),
		Commands: []*cli.Command{
			a.loginCommand(),
			a.registerCommand(),
			a.logoutCommand(),
			a.whoamiCommand(),
			a.tokenCommand(),
			a.classesCommand(),
			a.notesCommand(),
			a.homeworkCommand(),
			a.transcribeCommand(),
			a.searchCommand(),
			a.uploadCommand(),
			a.versionCommand(),
		},
	}
}

// connected wraps an action so that it runs with configuration loaded and the
// session and adapter ready.
func (a *App) connected(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := a.connect(ctx, cmd); err != nil {
			return err
		}

		ctx = a.logger.WithContext(ctx)
		logger.FromContext(ctx).Debug().Str("command", cmd.FullName()).Msg("running command")

		if err := action(ctx, cmd); err != nil {
			a.logger.Err(err).Str("command", cmd.FullName()).Msg("command failed")
			return err
		}
		return nil
	}
}

func (a *App) connect(ctx context.Context, cmd *cli.Command) error {
	if a.adapter != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(config.FlagsFromCommand(cmd))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.logger = logger.NewClientLogger(loggerRole, cfg.App.LogFile, cfg.App.LogLevel)

	a.storage, err = store.NewStorage(ctx, cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open %s token storage: %w", cfg.Storage.Backend, err)
	}

	a.session = session.New(ctx, a.storage, a.logger)

	a.adapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App.Features, a.session, a.logger)
	if err != nil {
		return fmt.Errorf("create api adapter: %w", err)
	}

	return nil
}

func (a *App) close() {
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.Err(err).Msg("closing token storage")
		}
	}
	a.storage = nil
	a.session = nil
	a.adapter = nil

	_ = a.logger.Close()
	a.logger = logger.Nop()
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printOK() error {
	return a.print(map[string]bool{"ok": true})
}

func requireArg(cmd *cli.Command, name string) (string, error) {
	v := strings.TrimSpace(cmd.Args().First())
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return v, nil
}

func (a *App) versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print build information",
		Action: func(_ context.Context, _ *cli.Command) error {
			_, err := fmt.Fprintln(a.out, a.buildInfo.String())
			return err
		},
	}
}

// IsUsageError reports whether err was caused by bad command line input
// rather than by the API or storage.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, config.ErrInvalidAdapterConfigs) ||
		errors.Is(err, config.ErrInvalidStorageConfigs)
}
