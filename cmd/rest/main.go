package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stembills-dashboard/internal/bootstrap"
	"stembills-dashboard/internal/config"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/implementation"
	"stembills-dashboard/internal/server"
	"stembills-dashboard/internal/tracer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:           "stembills",
	Short:         "Serve the STEM bills dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cmd.Flags().Changed("debug") {
			cfg.App.Debug = debug
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "verbose logging and route listing (overrides APP_DEBUG)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// 1. Logger
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction(), cfg.App.Debug)
	defer sysLogger.Sync()

	// 2. Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Dataset, loaded once; any problem aborts startup
	repo, err := implementation.NewCSVBillRepository(cfg.Dataset.Path, sysLogger)
	if err != nil {
		return err
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, repo, sysLogger)
	if err != nil {
		return err
	}
	defer container.PubSub.Close()

	// 5. Background Services
	if err := container.CallbackStats.Consume(ctx); err != nil {
		return fmt.Errorf("start callback stats consumer: %w", err)
	}
	// The hub outlives ctx so Shutdown can still notify connected pages.
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go container.WebSocketHub.Run(hubCtx)

	// 6. Server
	srv := server.New(cfg, container)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	color.Cyan("%s", cfg.App.Title)
	color.Green("Dash is running on http://%s/", cfg.App.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		sysLogger.Info("Server", "Shutting down", nil)
		return srv.Shutdown()
	}
}
