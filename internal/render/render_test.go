package render

import (
	"errors"
	"strings"
	"testing"
)

func TestBoard(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantTurn string
	}{
		{"start", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "White to move"},
		{"after e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "Black to move"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Board(tt.fen)
			if err != nil {
				t.Fatalf("Board() error = %v", err)
			}
			if !strings.Contains(got, tt.wantTurn) {
				t.Errorf("Board() missing %q:\n%s", tt.wantTurn, got)
			}
			// Eight ranks plus file labels plus the turn line.
			if lines := strings.Count(got, "\n"); lines < 10 {
				t.Errorf("Board() has %d lines, want at least 10:\n%s", lines, got)
			}
		})
	}
}

func TestBoard_Unreadable(t *testing.T) {
	for _, fen := range []string{"", "<unchanged>", "rnbqkbnr/pppppppp w"} {
		if _, err := Board(fen); !errors.Is(err, ErrUnreadable) {
			t.Errorf("Board(%q) error = %v, want ErrUnreadable", fen, err)
		}
	}
}
