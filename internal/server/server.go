// Package server exposes the summarizer over HTTP.
package server

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"textsum/internal/domain"
	"textsum/internal/metrics"
)

// SummarizeRequest is the JSON body of POST /api/v1/summarize.
type SummarizeRequest struct {
	Text  string   `json:"text"`
	Ratio *float64 `json:"ratio,omitempty"`
}

// SummarizeResponse is returned for a successful summarize call.
type SummarizeResponse struct {
	Summary   string    `json:"summary"`
	Sentences int       `json:"sentences"`
	Selected  []int     `json:"selected"`
	Scores    []float64 `json:"scores,omitempty"`
	Ratio     float64   `json:"ratio"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Config configures the HTTP server.
type Config struct {
	Addr         string
	DefaultRatio float64
	BodyLimit    string
}

// Server serves summarize requests. Handlers share the analyzer, which must be
// safe for concurrent use.
type Server struct {
	echo     *echo.Echo
	analyzer domain.Analyzer
	metrics  *metrics.Exporter
	cfg      Config
	log      *logrus.Entry
}

// New builds the router.
func New(cfg Config, analyzer domain.Analyzer, exporter *metrics.Exporter, log *logrus.Entry) *Server {
	if cfg.DefaultRatio <= 0 || cfg.DefaultRatio > 1 {
		cfg.DefaultRatio = 0.5
	}
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = "2M"
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := &Server{echo: e, analyzer: analyzer, metrics: exporter, cfg: cfg, log: log}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(s.requestLogger)

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(exporter.Handler()))
	e.POST("/api/v1/summarize", s.handleSummarize)
	return s
}

// ServeHTTP lets the server be mounted or tested as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.log.WithField("addr", s.cfg.Addr).Info("http server listening")
	if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "start http server")
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummarize(c echo.Context) error {
	start := time.Now()
	var req SummarizeRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.Observe(metrics.OutcomeBadRequest, 0, 0)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
	}
	ratio := s.cfg.DefaultRatio
	if req.Ratio != nil {
		ratio = *req.Ratio
	}
	if math.IsNaN(ratio) || ratio <= 0 {
		s.metrics.Observe(metrics.OutcomeBadRequest, 0, 0)
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "ratio must be greater than 0"})
	}

	res, err := s.analyzer.Analyze(req.Text, ratio)
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		s.metrics.Observe(metrics.OutcomeEmptyInput, 0, 0)
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case err != nil:
		s.metrics.Observe(metrics.OutcomeError, 0, 0)
		s.log.WithError(err).Error("summarize failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "summarization failed"})
	}
	s.metrics.Observe(metrics.OutcomeOK, time.Since(start), len(res.Sentences))

	resp := SummarizeResponse{
		Summary:   res.Summary,
		Sentences: len(res.Sentences),
		Selected:  res.Selected,
		Ratio:     ratio,
	}
	if c.QueryParam("scores") == "true" {
		resp.Scores = res.Scores
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.log.WithFields(logrus.Fields{
			"method":  c.Request().Method,
			"path":    c.Path(),
			"status":  c.Response().Status,
			"elapsed": time.Since(start).String(),
		}).Debug("request")
		return nil
	}
}
