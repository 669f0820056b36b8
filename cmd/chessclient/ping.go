package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the chess server answers",
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	msg, err := s.client.Ping(cmd.Context())
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return writeJSON(out, map[string]string{"server": s.client.BaseURL(), "message": msg})
	}
	fmt.Fprintf(out, "%s: %s\n", s.client.BaseURL(), msg)
	return nil
}
