package chessclient

import (
	"context"
	"os"
	"testing"

	"github.com/discochess/chessclient/internal/fakeserver"
)

// BenchmarkFetchPosition_Local measures a round trip to an in-process server.
func BenchmarkFetchPosition_Local(b *testing.B) {
	srv := fakeserver.New()
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	if err != nil {
		b.Fatalf("creating client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.FetchPosition(ctx); err != nil {
			b.Fatalf("fetch error: %v", err)
		}
	}
}

// BenchmarkSubmitMove_Rejected measures the rejection path, which leaves the
// server's game untouched between iterations.
func BenchmarkSubmitMove_Rejected(b *testing.B) {
	srv := fakeserver.New()
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	if err != nil {
		b.Fatalf("creating client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := client.SubmitMove(ctx, "e2", "e5")
		if err != nil {
			b.Fatalf("move error: %v", err)
		}
		if !result.Rejected() {
			b.Fatal("illegal move accepted")
		}
	}
}

// BenchmarkFetchPosition_Remote measures a real server.
// Requires CHESSCLIENT_SERVER_URL to point at a running chess server.
func BenchmarkFetchPosition_Remote(b *testing.B) {
	serverURL := os.Getenv("CHESSCLIENT_SERVER_URL")
	if serverURL == "" {
		b.Skip("CHESSCLIENT_SERVER_URL not set; skipping benchmark")
	}

	client, err := New(WithBaseURL(serverURL))
	if err != nil {
		b.Fatalf("creating client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := client.FetchPosition(ctx); err != nil {
			b.Fatalf("fetch error: %v", err)
		}
	}
}
