package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/metrics"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagSSHAddr           string
	flagHostKey           string
	flagIdleTimeout       int
	flagMetricsAddr       string
	flagSessionsPerMinute float64
	flagSessionBurst      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets players connect and play.

Each SSH connection gets its own session with a mode picker menu.
Scores are stored per-server (all players share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.invaders/host_key

New sessions are limited per remote host (--sessions-per-minute and
--session-burst, 0 disables the limit). With --metrics-addr, Prometheus
metrics are served on /metrics and a health check on /health.

Examples:
  invaders serve                           # Listen on :23234
  invaders serve --ssh :2222               # Listen on port 2222
  invaders serve --host-key ./my_host_key  # Use specific host key
  invaders serve --metrics-addr :9090      # Expose metrics

Players connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (disabled if empty)")
	serveCmd.Flags().Float64Var(&flagSessionsPerMinute, "sessions-per-minute", defaults.SessionsPerMinute, "New sessions allowed per host per minute (0 = unlimited)")
	serveCmd.Flags().IntVar(&flagSessionBurst, "session-burst", defaults.SessionBurst, "Sessions a host may open at once")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("invaders-ssh", false)
	defer closeLog()
	configureGame(logger)

	cfg := tui.SSHServerConfig{
		Address:           flagSSHAddr,
		HostKeyPath:       flagHostKey,
		DBPath:            flagDBPath,
		IdleTimeout:       time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:          flagFPS,
		SessionsPerMinute: flagSessionsPerMinute,
		SessionBurst:      flagSessionBurst,
		Logger:            logger,
	}

	var metricsServer *metrics.Server
	if flagMetricsAddr != "" {
		recorder := metrics.NewRecorder()
		cfg.Observers = append(cfg.Observers, recorder)
		cfg.Sessions = recorder

		metricsServer = metrics.NewServer(flagMetricsAddr, logger.WithPrefix("invaders-metrics"))
		metricsServer.Start()
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("cannot create server: %v", err)
	}

	fmt.Printf("Starting SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Warn("metrics shutdown", "err", err)
		}
		cancel()
	}

	if serveErr != nil {
		closeLog()
		fail("server error: %v", serveErr)
	}
}

// portOf returns the port of a host:port listen address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
