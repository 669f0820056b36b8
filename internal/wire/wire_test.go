package wire

import (
	"encoding/json"
	"errors"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestDecodePosition(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{
			name: "starting position",
			body: `{"position_fen":"` + startFEN + `"}`,
			want: startFEN,
		},
		{
			name: "extra fields ignored",
			body: `{"position_fen":"8/8/8/8/8/8/8/8 w - - 0 1","turn":"w"}`,
			want: "8/8/8/8/8/8/8/8 w - - 0 1",
		},
		{
			name: "not validated locally",
			body: `{"position_fen":"not a fen"}`,
			want: "not a fen",
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "null field",
			body:    `{"position_fen":null}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "server error only",
			body:    `{"error":"Mutex poisoned"}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "not json",
			body:    `<html>502</html>`,
			wantErr: ErrMalformed,
		},
		{
			name:    "wrong type",
			body:    `{"position_fen":42}`,
			wantErr: ErrMalformed,
		},
		{
			name:    "array",
			body:    `[]`,
			wantErr: ErrMalformed,
		},
		{
			name:    "json null",
			body:    `null`,
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePosition([]byte(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodePosition() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodePosition() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodePosition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeMove(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantFEN       string
		wantRejection string
		wantErr       error
	}{
		{
			name:    "accepted with null error",
			body:    `{"position_fen":"after","error":null}`,
			wantFEN: "after",
		},
		{
			name:    "accepted without error field",
			body:    `{"position_fen":"after"}`,
			wantFEN: "after",
		},
		{
			name:    "empty error is not a rejection",
			body:    `{"position_fen":"after","error":""}`,
			wantFEN: "after",
		},
		{
			name:          "rejected with position",
			body:          `{"position_fen":"unchanged","error":"illegal move"}`,
			wantFEN:       "unchanged",
			wantRejection: "illegal move",
		},
		{
			name:          "rejected without position",
			body:          `{"error":"illegal move"}`,
			wantRejection: "illegal move",
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "null everything",
			body:    `{"position_fen":null,"error":null}`,
			wantErr: ErrMissingField,
		},
		{
			name:    "truncated",
			body:    `{"position_fen":"aft`,
			wantErr: ErrMalformed,
		},
		{
			name:    "error wrong type",
			body:    `{"position_fen":"x","error":7}`,
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMove([]byte(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeMove() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeMove() error = %v", err)
			}
			if got.PositionFEN != tt.wantFEN {
				t.Errorf("PositionFEN = %q, want %q", got.PositionFEN, tt.wantFEN)
			}
			switch {
			case tt.wantRejection == "" && got.Rejection != nil:
				t.Errorf("Rejection = %q, want nil", *got.Rejection)
			case tt.wantRejection != "" && got.Rejection == nil:
				t.Errorf("Rejection = nil, want %q", tt.wantRejection)
			case tt.wantRejection != "" && *got.Rejection != tt.wantRejection:
				t.Errorf("Rejection = %q, want %q", *got.Rejection, tt.wantRejection)
			}
		})
	}
}

func TestDecodeHello(t *testing.T) {
	got, err := DecodeHello([]byte(`{"message":"hello"}`))
	if err != nil {
		t.Fatalf("DecodeHello() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("DecodeHello() = %q, want %q", got, "hello")
	}

	if _, err := DecodeHello([]byte(`{}`)); !errors.Is(err, ErrMissingField) {
		t.Errorf("DecodeHello({}) error = %v, want ErrMissingField", err)
	}
}

func TestEncodeMove(t *testing.T) {
	data, err := EncodeMove("e2", "e4")
	if err != nil {
		t.Fatalf("EncodeMove() error = %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got["src"] != "e2" || got["dst"] != "e4" {
		t.Errorf("EncodeMove() = %s, want {src:e2, dst:e4}", data)
	}
}
