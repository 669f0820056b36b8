package otel_test

import (
	"context"
	"testing"

	"github.com/discochess/chessclient/internal/otel"
)

func TestSetup_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "chessclient-test", "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}

func TestSetup_WithEndpoint(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := otel.Setup(context.Background(), "chessclient-test", "http://192.0.2.1:4318")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}
