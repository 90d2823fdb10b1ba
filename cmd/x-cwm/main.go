package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/ItsNotGoodName/x-cwm/internal/api"
	"github.com/ItsNotGoodName/x-cwm/internal/app"
	"github.com/ItsNotGoodName/x-cwm/internal/build"
	"github.com/ItsNotGoodName/x-cwm/internal/bus"
	"github.com/ItsNotGoodName/x-cwm/internal/config"
	"github.com/ItsNotGoodName/x-cwm/internal/spawn"
	"github.com/ItsNotGoodName/x-cwm/internal/wm"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/ItsNotGoodName/x-cwm/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Config string `doc:"config file (default $HOME/.config/cwm/cwmrc)"`
	Listen string `doc:"address of the status API, disabled when empty"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			return run(ctx, options)
		})
	})

	cmd := cli.Root()
	cmd.Use = "x-cwm"
	cmd.Short = "Minimal tiling window manager for X"
	cmd.Args = cobra.NoArgs
	cmd.Version = build.Current.String()

	cli.Run()
}

func run(ctx context.Context, options *Options) error {
	bus.SetContext(ctx)

	cfg := loadConfig(options.Config)

	conn, err := xwm.Connect()
	if err != nil {
		return err
	}

	manager := wm.NewManager(conn, cfg.Capacity)
	dispatcher := app.NewDispatcher(conn, manager, spawn.Shell{}, os.Stdout, cfg)
	if err := dispatcher.Grab(); err != nil {
		slog.Warn("Failed to grab keys", "error", err)
	}
	application := app.New(conn, manager, dispatcher)

	slog.Info("Window manager started", "version", build.Current.Version, "mod_key", cfg.ModKey, "workspace_capacity", cfg.Capacity)

	super := sutureext.NewSimple("root")

	var connLost atomic.Bool
	eventC := make(chan xwm.Event)
	sutureext.AddTerminal(super, sutureext.NewServiceFunc("xwm.Conn.ReceiveEvents", func(ctx context.Context) error {
		err := conn.ReceiveEvents(ctx, eventC)
		if errors.Is(err, xwm.ErrConnectionClosed) {
			connLost.Store(true)
		}
		return err
	}))
	sutureext.AddTerminal(super, sutureext.NewServiceFunc("app.App.Run", func(ctx context.Context) error {
		return application.Run(ctx, eventC)
	}))

	if options.Listen != "" {
		store := api.NewStore().Register()
		sutureext.Add(super, api.NewServer(options.Listen, api.NewRouter(store)))
	}

	err = super.Serve(ctx)
	// The loop closes the connection when it stops, but not when the
	// supervisor stops before it ever ran.
	conn.Close()

	return serveResult(ctx, err, connLost.Load())
}

// serveResult decides how run ends once the supervisor stopped. Losing the X
// connection is a normal exit, like the server going away under any client.
func serveResult(ctx context.Context, err error, connLost bool) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if connLost {
		slog.Info("X connection closed, exiting")
		return nil
	}
	if err == nil {
		err = errors.New("stopped")
	}
	return fmt.Errorf("window manager: %w", err)
}

// loadConfig never fails, problems with the file are logged and the defaults
// are used.
func loadConfig(path string) config.Config {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			slog.Warn("Failed to find config file, using defaults", "error", err)
			return config.Default()
		}
	}

	path, err := filepath.Abs(path)
	if err != nil {
		slog.Warn("Failed to resolve config file, using defaults", "path", path, "error", err)
		return config.Default()
	}

	store, err := config.NewProvider(path)
	if err != nil {
		slog.Warn("Failed to create config directory, using defaults", "path", path, "error", err)
		return config.Default()
	}

	if exists, err := store.Exists(); err != nil {
		slog.Warn("Failed to check config file, using defaults", "path", path, "error", err)
		return config.Default()
	} else if !exists {
		slog.Debug("Config file not found, using defaults", "path", path)
		return config.Default()
	}

	cfg, err := store.GetConfig()
	if err != nil {
		slog.Warn("Failed to read config file, using defaults", "path", path, "error", err)
		return config.Default()
	}

	slog.Debug("Loaded config", "path", path)
	return cfg
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
