package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move SRC DST",
	Short: "Submit a move to the chess server",
	Long: `Ask the chess server to move the piece on SRC to DST.

Squares are passed to the server untouched; the server decides whether the
move is legal. A rejected move exits with a non-zero status and prints the
server's reason.

Examples:
  chessclient move e2 e4
  chessclient move g1 f3 --board`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

var moveShowBoard bool

func init() {
	moveCmd.Flags().BoolVarP(&moveShowBoard, "board", "b", false, "draw the resulting board")
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.client.SubmitMove(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("submitting move: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else if !result.Rejected() {
		printPosition(out, result.Position, moveShowBoard)
	}

	if result.Rejected() {
		return fmt.Errorf("move %s %s rejected: %s", args[0], args[1], result.Reason())
	}
	return nil
}
