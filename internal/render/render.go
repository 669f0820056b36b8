// Package render draws server positions for terminal output.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ErrUnreadable indicates the position could not be read as FEN.
var ErrUnreadable = errors.New("render: position is not valid FEN")

// Board returns the position drawn as a text board followed by a line naming
// the side to move.
func Board(fen string) (string, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	pos := chess.NewGame(opt).Position()

	var b strings.Builder
	b.WriteString(pos.Board().Draw())
	fmt.Fprintf(&b, "%s to move\n", pos.Turn().Name())
	return b.String(), nil
}
