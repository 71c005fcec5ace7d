package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // generated at ~/.snake/host_key when empty
	DBPath      string        // shared scores database
	IdleTimeout time.Duration // idle connections are closed after this
	FrameRate   int           // input sampling and redraw rate per session
	Snake       config.SnakeConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.snake/scores.db",
		IdleTimeout: 30 * time.Minute,
		FrameRate:   60,
		Snake:       config.DefaultSnakeConfig(),
	}
}

// SSHServer serves one snake session per SSH connection. All sessions share
// the scores database; each owns its own game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer validates cfg and prepares the server. A nil logger logs to stderr.
// The scores database is optional; sessions play without high scores when it
// cannot be opened.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}
	if err := cfg.Snake.Validate(); err != nil {
		return nil, err
	}

	keyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		srv.store = nil
	}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Middleware runs last to first: log, require a PTY, then play.
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	return srv, nil
}

// resolveHostKeyPath defaults to ~/.snake/host_key and makes sure the
// directory exists so wish can generate the key on first start.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".snake", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the session model for a connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.FrameRate,
		Seed:     time.Now().UnixNano(),
	}
	logger := s.logger.With("user", sess.User())
	return NewSessionModel(s.store, logger, cfg, s.config.Snake), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs connects and disconnects with the live session count.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		defer func() {
			s.logger.Info("session ended",
				"user", sess.User(),
				"remote", remote,
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// ListenAndServe blocks until ctx is cancelled, the process receives SIGINT
// or SIGTERM, or the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address, "tps", s.config.Snake.Timing.TicksPerSecond)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	case err := <-errCh:
		s.closeStore()
		if err != nil {
			s.logger.Error("server error", "error", err)
			return fmt.Errorf("ssh: %w", err)
		}
		return nil
	}
}

// Shutdown stops accepting connections and waits up to shutdownGrace for
// sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
