package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Server is a suture service running the status API.
type Server struct {
	addr    string
	handler http.Handler
	ready   chan net.Addr
}

func NewServer(addr string, handler http.Handler) Server {
	return Server{
		addr:    addr,
		handler: handler,
		ready:   make(chan net.Addr, 1),
	}
}

func (Server) String() string {
	return "api.Server"
}

// Ready receives the listening address once per successful listen.
func (s Server) Ready() <-chan net.Addr {
	return s.ready
}

func (s Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	errC := make(chan error, 1)
	go func() { errC <- server.Serve(ln) }()

	slog.Info("Listening", "package", "api", "address", ln.Addr().String())
	select {
	case s.ready <- ln.Addr():
	default:
	}

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errC; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
