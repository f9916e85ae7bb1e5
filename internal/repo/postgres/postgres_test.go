package postgres_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/repo/postgres"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	if _, err := postgres.NewPool(context.Background(), "postgres://%zz", 1); err == nil {
		t.Fatalf("expected error for malformed DSN")
	}
}
