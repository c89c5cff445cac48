package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-darts/internal/config"
)

// ServerConfig configures the SSH-hosted scorer.
type ServerConfig struct {
	Addr        string        // host:port, ":23234" when empty
	HostKeyPath string        // generated under ~/.darts when empty
	IdleTimeout time.Duration // zero disables the idle timeout
	Game        config.Config // rules every connection starts with
}

const (
	defaultAddr     = ":23234"
	shutdownTimeout = 10 * time.Second
)

// Server hands every SSH connection an independent scorer.
type Server struct {
	cfg    ServerConfig
	srv    *ssh.Server
	logger *log.Logger
}

// NewServer prepares the host key and builds the wish middleware chain.
func NewServer(cfg ServerConfig, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, logger: logger}
	opts := []ssh.Option{
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(keyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.programFor),
			s.trace,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	s.srv, err = wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: ssh server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: host key: %w", err)
		}
		path = filepath.Join(home, ".darts", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key dir: %w", err)
	}
	return path, nil
}

// programFor starts a fresh app for one connection. Its games are bound to
// the connection context, so a dropped client releases them. Connections
// without a PTY are refused.
func (s *Server) programFor(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("refusing session without pty", "user", sess.User())
		return nil, nil
	}
	app := NewApp(sess.Context(), s.cfg.Game, s.logger.With("user", sess.User()), pty.Window.Width, pty.Window.Height)
	return app, []tea.ProgramOption{tea.WithAltScreen()}
}

// trace logs connect and disconnect with the session duration.
func (s *Server) trace(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		l.Info("connected")
		next(sess)
		l.Info("disconnected", "after", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("tui: listen %s: %w", s.cfg.Addr, err)
	}
	s.logger.Info("serving", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}
