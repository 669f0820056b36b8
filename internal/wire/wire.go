// Package wire defines the JSON shapes exchanged with the chess server and
// decodes responses strictly enough to tell a malformed reply from a valid one.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Server routes.
const (
	PathPosition = "position"
	PathMove     = "move"
	PathHello    = "hello"
)

var (
	// ErrMalformed indicates the body is not a JSON object of the expected shape.
	ErrMalformed = errors.New("wire: malformed body")

	// ErrMissingField indicates a required field is absent or null.
	ErrMissingField = errors.New("wire: missing field")
)

// MoveRequest is the body of POST /move.
type MoveRequest struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// positionResponse covers GET /position and POST /move. The server replies
// with {"error": "..."} alone when it cannot serve the request.
type positionResponse struct {
	PositionFEN *string `json:"position_fen"`
	Error       *string `json:"error"`
}

type helloResponse struct {
	Message *string `json:"message"`
}

// MoveReply is a decoded POST /move response.
// Rejection is nil when the server accepted the move.
type MoveReply struct {
	PositionFEN string
	Rejection   *string
}

// DecodePosition extracts position_fen from a GET /position body.
func DecodePosition(data []byte) (string, error) {
	var resp positionResponse
	if err := unmarshal(data, &resp); err != nil {
		return "", err
	}
	if resp.PositionFEN == nil {
		if msg := nonEmpty(resp.Error); msg != nil {
			return "", fmt.Errorf("%w: position_fen (server error: %s)", ErrMissingField, *msg)
		}
		return "", fmt.Errorf("%w: position_fen", ErrMissingField)
	}
	return *resp.PositionFEN, nil
}

// DecodeMove decodes a POST /move body. A body carrying only a non-empty
// error is a valid rejection with an empty position.
func DecodeMove(data []byte) (MoveReply, error) {
	var resp positionResponse
	if err := unmarshal(data, &resp); err != nil {
		return MoveReply{}, err
	}
	reply := MoveReply{Rejection: nonEmpty(resp.Error)}
	if resp.PositionFEN == nil {
		if reply.Rejection == nil {
			return MoveReply{}, fmt.Errorf("%w: position_fen", ErrMissingField)
		}
		return reply, nil
	}
	reply.PositionFEN = *resp.PositionFEN
	return reply, nil
}

// DecodeHello extracts message from a GET /hello body.
func DecodeHello(data []byte) (string, error) {
	var resp helloResponse
	if err := unmarshal(data, &resp); err != nil {
		return "", err
	}
	if resp.Message == nil {
		return "", fmt.Errorf("%w: message", ErrMissingField)
	}
	return *resp.Message, nil
}

// EncodeMove marshals a move request body.
func EncodeMove(src, dst string) ([]byte, error) {
	return json.Marshal(MoveRequest{Src: src, Dst: dst})
}

func unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// nonEmpty treats null and "" alike.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
