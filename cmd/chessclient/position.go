package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/discochess/chessclient"
	"github.com/discochess/chessclient/internal/render"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Show the server's current position",
	Long: `Fetch the current position from the chess server and print it in FEN.

Examples:
  chessclient position
  chessclient position --board`,
	Args: cobra.NoArgs,
	RunE: runPosition,
}

var showBoard bool

func init() {
	positionCmd.Flags().BoolVarP(&showBoard, "board", "b", false, "draw the board under the FEN")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	pos, err := s.client.FetchPosition(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching position: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return writeJSON(out, map[string]string{"position": pos.String()})
	}
	printPosition(out, pos, showBoard)
	return nil
}

// printPosition writes the FEN and, when board is set, a drawing of it.
// Positions that do not read as FEN are printed as-is.
func printPosition(out io.Writer, pos chessclient.Position, board bool) {
	fmt.Fprintf(out, "FEN: %s\n", pos)
	if !board {
		return
	}
	drawing, err := render.Board(pos.String())
	if errors.Is(err, render.ErrUnreadable) {
		fmt.Fprintln(out, "(position cannot be drawn)")
		return
	}
	fmt.Fprint(out, drawing)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
