// Package bridge exposes the dispatcher over WebSocket: one text frame in,
// one text frame out, per connection in arrival order.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/sandevgo/termcore/internal/core"
	"github.com/sandevgo/termcore/pkg/log"
	"golang.org/x/sync/semaphore"
)

const (
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	cfg        core.BridgeConfig
	dispatcher core.Dispatcher
	upgrader   websocket.Upgrader
	slots      *semaphore.Weighted

	mu    sync.Mutex
	srv   *http.Server
	conns map[*websocket.Conn]struct{}
	wg    sync.WaitGroup
}

func NewServer(cfg core.BridgeConfig, dispatcher core.Dispatcher) *Server {
	maxConns := cfg.GetMaxConns()
	if maxConns <= 0 {
		maxConns = 1
	}

	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			// no authentication: any origin may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		slots: semaphore.NewWeighted(int64(maxConns)),
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Start binds the configured address and serves until Shutdown. A bind
// failure is returned immediately.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.GetAddr())
	if err != nil {
		return fmt.Errorf("failed to bind bridge on %s: %w", s.cfg.GetAddr(), err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(ctx),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	log.FromCtx(ctx).Info().Str("addr", ln.Addr().String()).Msgf("bridge listening on ws://%s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("bridge stopped: %w", err)
	}
	return nil
}

// Handler upgrades every request path; the browser client uses /ws.
func (s *Server) Handler(ctx context.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handleUpgrade(ctx, w, r)
	})
}

func (s *Server) handleUpgrade(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logger := log.FromCtx(ctx)

	if !s.slots.TryAcquire(1) {
		logger.Warn().Str("remote", r.RemoteAddr).Int("max", s.cfg.GetMaxConns()).Msg("connection rejected: limit reached")
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}
	defer s.slots.Release(1)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		logger.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("websocket handshake failed")
		return
	}

	if !s.track(conn) {
		conn.Close()
		return
	}
	defer s.untrack(conn)

	s.serveConn(ctx, conn)
}

// serveConn owns conn until the peer goes away or a transport error occurs.
func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn) {
	logger := log.FromCtx(ctx).With().
		Str("conn", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()
	logger.Info().Msg("connection opened")
	defer conn.Close()

	idle := s.cfg.GetIdleTimeout()
	served := 0
	for {
		if idle > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(idle))
		}

		mt, data, err := conn.ReadMessage()
		if err != nil {
			logClosed(&logger, err, served)
			return
		}
		if mt != websocket.TextMessage {
			logger.Debug().Int("type", mt).Msg("ignoring non-text frame")
			continue
		}

		result := s.dispatcher.Execute(ctx, string(data))
		served++

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(result)); err != nil {
			logger.Error().Err(err).Msg("send error")
			return
		}
	}
}

func logClosed(logger *zerolog.Logger, err error, served int) {
	var netErr net.Error
	switch {
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived):
		logger.Info().Int("served", served).Msg("connection closed")
	case errors.As(err, &netErr) && netErr.Timeout():
		logger.Info().Int("served", served).Msg("connection idle, closing")
	default:
		logger.Warn().Err(err).Int("served", served).Msg("connection error")
	}
}

// track registers conn; it refuses once the server is shutting down.
func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns == nil {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	s.wg.Done()
}

// Shutdown stops accepting, closes every open connection and waits for the
// connection goroutines to return.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	conns := s.conns
	s.conns = nil
	s.mu.Unlock()

	var errs []error
	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	deadline := time.Now().Add(time.Second)
	for conn := range conns {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
		conn.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}
	return errors.Join(errs...)
}
