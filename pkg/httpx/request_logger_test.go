package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type lineLogger struct{ lines []string }

func (l *lineLogger) Infof(_ context.Context, format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
func (l *lineLogger) Warnf(context.Context, string, ...any)  {}
func (l *lineLogger) Errorf(context.Context, string, ...any) {}

func TestRequestLogger_SkipsServicePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &lineLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/purchases", func(c *gin.Context) { c.Status(http.StatusCreated) })

	for _, path := range []string{"/ping", "/metrics"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}
	if len(log.lines) != 0 {
		t.Fatalf("service paths must not be logged, got %v", log.lines)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/purchases", http.NoBody))
	if len(log.lines) != 1 {
		t.Fatalf("want one log line, got %v", log.lines)
	}
	want := "method=POST path=/purchases status=201"
	if !strings.Contains(log.lines[0], want) {
		t.Fatalf("log line %q must contain %q", log.lines[0], want)
	}
}

func TestRequestLogger_UnknownRouteUsesRawPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &lineLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "path=/nope status=404") {
		t.Fatalf("unexpected log: %v", log.lines)
	}
}
