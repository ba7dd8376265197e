package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cellmap/internal/system"
	"cellmap/internal/textcell"
)

// Server exposes the mapper and renderer over HTTP.
type Server struct {
	Addr string
	// Classifier decides rune widths for every request.
	Classifier textcell.Classifier
	// CellLimit caps a single render; zero means textcell.DefaultCellLimit.
	CellLimit int
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// Handler builds the gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mountAPI(r)
	return r
}
