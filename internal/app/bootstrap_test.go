package app_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/cinema_tickets/config"
	"github.com/Gunvolt24/cinema_tickets/internal/app"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// fakeConsumer ждёт отмены контекста.
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	fc := &fakeConsumer{}
	a := &app.App{Logger: nopLogger{}, HTTPServer: srv, KafkaConsumer: fc}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	a := &app.App{Logger: nopLogger{}, HTTPServer: srv}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestAppRun_ListenErrorIsReturned(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	srv := &http.Server{Addr: busy.Addr().String(), Handler: http.NewServeMux()}
	a := &app.App{Logger: nopLogger{}, HTTPServer: srv}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := a.Run(ctx); err == nil {
		t.Fatalf("want listen error, got nil")
	}
}

func TestBootstrap_UnknownDriver(t *testing.T) {
	cfg, err := config.LoadWithPrefix("TICKETS_BOOTSTRAP_TEST")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Gateway.Driver = "carrier-pigeon"

	_, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	defer cleanup()
	if !errors.Is(err, app.ErrUnknownDriver) {
		t.Fatalf("want ErrUnknownDriver, got %v", err)
	}
}

// Драйвер kafka не ходит в сеть при сборке: writer'ы и reader подключаются лениво.
func TestBootstrap_KafkaDriver(t *testing.T) {
	cfg, err := config.LoadWithPrefix("TICKETS_BOOTSTRAP_TEST")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Gateway.Driver = "kafka"
	cfg.Kafka.ConsumerEnabled = false
	cfg.HTTP.GinMode = "test"

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer cleanup()

	if a.KafkaConsumer != nil {
		t.Fatalf("consumer must be nil when disabled")
	}
	if a.HTTPServer == nil || a.HTTPServer.Handler == nil {
		t.Fatalf("http server must be assembled")
	}
}
