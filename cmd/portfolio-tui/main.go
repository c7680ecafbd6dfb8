package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/prashanthm/portfolio/internal/tui"
)

func newRootCmd() *cobra.Command {
	var (
		mouse     bool
		altScreen bool
		style     string
	)
	cmd := &cobra.Command{
		Use:           "portfolio-tui",
		Short:         "Browse the portfolio in a terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []tea.ProgramOption
			if altScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			if mouse {
				opts = append(opts, tea.WithMouseCellMotion())
			}
			opts = append(opts, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))

			m := tui.New(tui.Options{Style: style})
			defer m.Close()

			if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mouse, "mouse", true, "enable mouse clicks and wheel scrolling")
	cmd.Flags().BoolVar(&altScreen, "alt-screen", true, "use the terminal's alternate screen")
	cmd.Flags().StringVar(&style, "style", "dark", "glamour style for the about section (dark, light, notty, ...)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
