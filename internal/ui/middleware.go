package ui

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"textsummarizer/internal/logging"
	"textsummarizer/internal/metrics"
)

const (
	RequestIDHeader = "X-Request-ID"

	internalErrorMessage = "internal server error"
)

// requestID stores the request ID in the request context so that every
// ...Context log call downstream carries it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// recovery answers a panic with the page's error notice on the page route
// and with a JSON error everywhere else.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			s.log.ErrorContext(c.Request.Context(), "Panic is recovered",
				"error", fmt.Errorf("%v", rec),
				"stack", string(debug.Stack()),
				"method", c.Request.Method,
				"path", c.Request.URL.Path)

			if c.FullPath() == pagePath {
				page := s.defaultPage()
				page.Error = internalErrorMessage
				c.HTML(http.StatusInternalServerError, pageTemplate, page)
				c.Abort()

				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
				Error: internalErrorMessage,
			})
		}()

		c.Next()
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.DebugContext(c.Request.Context(), "HTTP request is served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"durationSeconds", time.Since(start).Seconds())
	}
}

func httpMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
