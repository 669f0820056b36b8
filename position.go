package chessclient

// Position is a board state in Forsyth-Edwards Notation, exactly as the
// server sent it. The client never parses or validates it.
type Position string

// String returns the FEN text.
func (p Position) String() string { return string(p) }

// MoveResult is the outcome of a submitted move.
//
// A non-nil Error means the server rejected the move. That is a normal
// outcome; SubmitMove returns it with a nil error.
type MoveResult struct {
	// Position is the FEN after the server processed the move. It is empty
	// when the server rejected the move without reporting a position.
	Position Position `json:"position"`

	// Error is the server's rejection message, nil if the move was accepted.
	Error *string `json:"error"`
}

// Rejected reports whether the server refused the move.
func (r *MoveResult) Rejected() bool {
	return r.Error != nil
}

// Reason returns the rejection message, or "" if the move was accepted.
func (r *MoveResult) Reason() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
