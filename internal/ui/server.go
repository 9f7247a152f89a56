// Package ui serves the summarizer page and binds its button to the handler.
package ui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"textsummarizer/internal/metrics"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second

	pagePath     = "/"
	pageTemplate = "index.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrInvalidNumber is returned for slider values that are not finite numbers
// or do not fit in an int once truncated.
var ErrInvalidNumber = errors.New("invalid number")

// ClickHandler is invoked with the current control values on every click.
type ClickHandler interface {
	Summarize(ctx context.Context, text string, maxLength, minLength float64) (string, error)
}

// Options configures a Server.
type Options struct {
	Addr           string
	RequestTimeout time.Duration
	// Metrics is optional; when nil no metrics are recorded or exposed.
	Metrics *metrics.Metrics
}

type Server struct {
	engine         *gin.Engine
	httpServer     *http.Server
	handler        ClickHandler
	metrics        *metrics.Metrics
	requestTimeout time.Duration
	title          template.HTML
	log            *slog.Logger
}

type summarizeRequest struct {
	Text      string   `json:"text"`
	MaxLength *float64 `json:"max_length"`
	MinLength *float64 `json:"min_length"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(h ClickHandler, opts Options, log *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/"+pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	title, err := renderTitle(titleMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render title: %w", err)
	}

	s := &Server{
		engine:         gin.New(),
		handler:        h,
		metrics:        opts.Metrics,
		requestTimeout: opts.RequestTimeout,
		title:          title,
		log:            log,
	}
	s.engine.SetHTMLTemplate(tmpl)
	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.engine.Use(requestID())
	s.engine.Use(s.recovery())
	s.engine.Use(requestLogger(s.log))

	if s.metrics != nil {
		s.engine.Use(httpMetrics(s.metrics))
	}
}

func (s *Server) setupRoutes() {
	s.engine.GET(pagePath, s.handleIndex)
	s.engine.POST(pagePath, s.handleSubmit)
	s.engine.POST("/api/summarize", s.handleAPISummarize)
	s.engine.GET("/healthz", s.handleHealth)

	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, s.defaultPage())
}

func (s *Server) handleSubmit(c *gin.Context) {
	ctx := c.Request.Context()
	text := c.PostForm("text")

	maxLength, maxErr := parseSliderValue(c.PostForm(MaxLengthSlider.Name), MaxLengthSlider)
	minLength, minErr := parseSliderValue(c.PostForm(MinLengthSlider.Name), MinLengthSlider)
	if err := errors.Join(maxErr, minErr); err != nil {
		s.log.WarnContext(ctx, "Failed to parse slider values",
			"error", err)

		page := s.defaultPage()
		page.Text = text
		page.Error = err.Error()
		c.HTML(http.StatusBadRequest, pageTemplate, page)

		return
	}

	page := s.newPage(text, maxLength, minLength)

	summary, err := s.summarize(ctx, text, maxLength, minLength)
	if err != nil {
		page.Error = err.Error()
		c.HTML(http.StatusInternalServerError, pageTemplate, page)

		return
	}

	page.Output = summary
	c.HTML(http.StatusOK, pageTemplate, page)
}

func (s *Server) handleAPISummarize(c *gin.Context) {
	ctx := c.Request.Context()

	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.WarnContext(ctx, "Failed to decode summarize request",
			"error", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	maxLength, maxErr := valueOrDefault(req.MaxLength, MaxLengthSlider)
	minLength, minErr := valueOrDefault(req.MinLength, MinLengthSlider)
	if err := errors.Join(maxErr, minErr); err != nil {
		s.log.WarnContext(ctx, "Failed to validate slider values",
			"error", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	summary, err := s.summarize(ctx, req.Text, maxLength, minLength)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})

		return
	}

	c.JSON(http.StatusOK, summarizeResponse{Summary: summary})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// summarize runs one click of the button under the configured timeout.
func (s *Server) summarize(
	ctx context.Context,
	text string,
	maxLength float64,
	minLength float64,
) (string, error) {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	return s.handler.Summarize(ctx, text, maxLength, minLength)
}

func parseSliderValue(raw string, slider Slider) (float64, error) {
	if raw == "" {
		return float64(slider.Value), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w %q", slider.Label, ErrInvalidNumber, raw)
	}

	return checkSliderValue(v, slider)
}

func valueOrDefault(v *float64, slider Slider) (float64, error) {
	if v == nil {
		return float64(slider.Value), nil
	}

	return checkSliderValue(*v, slider)
}

// checkSliderValue rejects values whose int conversion is undefined.
func checkSliderValue(v float64, slider Slider) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %w %g", slider.Label, ErrInvalidNumber, v)
	}

	// On 64-bit platforms float64(math.MaxInt) rounds up to 2^63, itself out of range.
	if t := math.Trunc(v); t < math.MinInt || t >= math.MaxInt {
		return 0, fmt.Errorf("%s: %w %g", slider.Label, ErrInvalidNumber, v)
	}

	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
