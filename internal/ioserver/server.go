// Package ioserver exposes the detection core over HTTP with gin. The
// server owns no matching logic; it wires the immutable taxonomy, the
// detector and the external collaborators together.
package ioserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/detect"
	"github.com/safebite/safebite/pkg/lifecycle"
	"github.com/safebite/safebite/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// Server handles the SafeBite HTTP API.
type Server struct {
	cfg      *config.Config
	tx       *taxonomy.Taxonomy
	detector *detect.Detector
	products lifecycle.ProductSource
	profiles lifecycle.ProfileStore
}

// New creates a Server over an already-built taxonomy and the external
// collaborators.
func New(
	cfg *config.Config,
	tx *taxonomy.Taxonomy,
	products lifecycle.ProductSource,
	profiles lifecycle.ProfileStore,
) *Server {
	return &Server{
		cfg:      cfg,
		tx:       tx,
		detector: detect.New(tx),
		products: products,
		profiles: profiles,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api/v1")
	{
		api.GET("/search", s.handleSearch)
		api.GET("/ingredients/:id", s.handleIngredient)
		api.GET("/scan/:barcode", s.handleScan)

		api.GET("/profiles/:user", s.handleGetProfile)
		api.PUT("/profiles/:user", s.handlePutProfile)
		api.DELETE("/profiles/:user/ingredients/:id", s.handleDeleteIngredient)
		api.POST("/profiles/:user/undo", s.handleUndo)
	}

	return r
}

// Run serves until the context is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		slog.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
