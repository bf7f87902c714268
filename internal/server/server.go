package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atikulmunna/logtally/internal/filter"
	"github.com/atikulmunna/logtally/internal/output"
	"github.com/atikulmunna/logtally/internal/pipeline"
	"github.com/atikulmunna/logtally/internal/source"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the analysis of one log file over HTTP. Every request re-reads
// the file and runs its own pipeline, so requests share no mutable state.
type Server struct {
	engine   *gin.Engine
	source   string
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// New creates a server reporting on the log file at path.
func New(path string, pl *pipeline.Pipeline, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Disable automatic redirects that cause 301 issues.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:   engine,
		source:   path,
		pipeline: pl,
		logger:   logger,
	}

	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "source": s.source})
	})

	s.engine.GET("/api/stats", s.handleStats)
	s.engine.GET("/api/records", s.handleRecords)

	// pprof profiling endpoints.
	s.engine.GET("/debug/pprof/", gin.WrapF(pprof.Index))
	s.engine.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
	s.engine.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
	s.engine.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
	s.engine.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	s.engine.GET("/debug/pprof/heap", gin.WrapH(pprof.Handler("heap")))
}

func (s *Server) handleStats(c *gin.Context) {
	report, ok := s.analyze(c, pipeline.Query{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source": s.source,
		"total":  report.Counts.Total(),
		"counts": report.Counts,
	})
}

// handleRecords lists records, optionally narrowed by ?level= (case-insensitive)
// and ?message= (glob).
func (s *Server) handleRecords(c *gin.Context) {
	q := pipeline.Query{Level: c.Query("level"), Message: c.Query("message")}

	report, ok := s.analyze(c, q)
	if !ok {
		return
	}

	records := report.Details
	if !report.HasDetails() {
		var err error
		if records, err = filter.ByMessage(report.Records, q.Message); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, output.DetailsReport{Level: report.Level, Records: records})
}

// analyze reads the source and runs the pipeline, writing an error response on failure.
func (s *Server) analyze(c *gin.Context, q pipeline.Query) (*pipeline.Report, bool) {
	raw, err := source.Read(s.source)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, source.ErrNotFound) || errors.Is(err, source.ErrNotAFile) {
			status = http.StatusNotFound
		}
		s.logger.Warn("source unreadable", "path", s.source, "err", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}

	report, err := s.pipeline.Analyze(raw, q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return report, true
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("http server listening", "addr", addr, "source", s.source)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
