package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	clientcmd "github.com/zhenghui88/dtqueue/internal/cmd/client"
	serverrun "github.com/zhenghui88/dtqueue/internal/cmd/server"
	cfgpkg "github.com/zhenghui88/dtqueue/internal/config"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

func main() {
	// initialize logger for CLI
	// Respect DTQUEUE_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("DTQUEUE_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs (used by Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "dtqueue",
		Short: "dtqueue runtime CLI",
		Long:  "dtqueue is a single-binary durable queue server. This CLI manages the server and basic queue operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start dtqueue server (HTTP API)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			bind, _ := cmd.Flags().GetString("bind")
			port, _ := cmd.Flags().GetInt("port")
			queues, _ := cmd.Flags().GetStringSlice("queue")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			fsyncMode, _ := cmd.Flags().GetString("fsync")
			fsyncIntervalMs, _ := cmd.Flags().GetInt("fsync-interval-ms")
			maxWorkers, _ := cmd.Flags().GetInt("max-workers")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			logFile, _ := cmd.Flags().GetString("log-file")

			// Precedence: defaults, then config file, then env, then flags.
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)
			if bind != "" {
				cfg.BindAddress = bind
			}
			if port > 0 {
				cfg.Port = port
			}
			if len(queues) > 0 {
				cfg.Queues = queues
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if fsyncMode != "" {
				cfg.Fsync = fsyncMode
			}
			if fsyncIntervalMs > 0 {
				cfg.FsyncIntervalMs = fsyncIntervalMs
			}
			if maxWorkers > 0 {
				cfg.MaxWorkers = maxWorkers
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{Config: cfg}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Path to a JSON config file")
	serverStartCmd.Flags().String("bind", "", "HTTP bind address (default 127.0.0.1)")
	serverStartCmd.Flags().Int("port", 0, "HTTP listen port (default 8080)")
	serverStartCmd.Flags().StringSlice("queue", nil, "Queue to serve (repeatable; overrides config file and DTQUEUE_QUEUES)")
	serverStartCmd.Flags().String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("fsync", "", "Fsync mode: always|interval|never (default interval)")
	serverStartCmd.Flags().Int("fsync-interval-ms", 0, "When --fsync=interval, group-commit window in ms (default 5)")
	serverStartCmd.Flags().Int("max-workers", 0, "Max concurrent queue operations (default 1)")
	serverStartCmd.Flags().String("log-level", "", "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", "", "Log format: text|json (default text)")
	serverStartCmd.Flags().String("log-file", "", "Also write logs to this file")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// queue commands (live in internal/cmd/client)
	rootCmd.AddCommand(clientcmd.NewQueueCommand(apiURL))

	// health command
	rootCmd.AddCommand(clientcmd.NewHealthCommand(apiURL))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("DTQUEUE_ADDR"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
