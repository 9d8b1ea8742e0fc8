package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textsum/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file.txt]",
		Short: "Interactive summarizer with ratio control, load and save",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := ratioFlag()
			if err != nil {
				return err
			}
			var text string
			if len(args) == 1 {
				text, err = current.service.LoadText(args[0])
				if err != nil {
					return err
				}
			}
			m := tui.New(current.summarizer, current.service, text, ratio)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}
