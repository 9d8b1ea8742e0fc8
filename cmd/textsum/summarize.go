package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"textsum/internal/domain"
)

func newSummarizeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "summarize [file.txt ...]",
		Short: "Summarize .txt files, or stdin when no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio, err := ratioFlag()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return summarizeStdin(cmd.InOrStdin(), cmd.OutOrStdout(), ratio, output)
			}
			results, err := current.service.SummarizeFiles(args, ratio)
			if err != nil {
				return err
			}
			if output != "" && len(results) > 1 {
				return errors.Errorf("--output accepts a single document, %d matched", len(results))
			}
			out := cmd.OutOrStdout()
			for i, r := range results {
				if output != "" {
					path, err := current.service.SaveSummary(output, r.Summary)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s: kept %d of %d sentences -> %s\n", r.Document.Path, r.Selected, r.Sentences, path)
					continue
				}
				if len(results) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "== %s (%d/%d sentences) ==\n", r.Document.Path, r.Selected, r.Sentences)
				}
				fmt.Fprintln(out, r.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the summary to this file (.txt added when missing)")
	return cmd
}

func summarizeStdin(in io.Reader, out io.Writer, ratio float64, output string) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read stdin")
	}
	summary, err := current.summarizer.Summarize(string(data), ratio)
	if errors.Is(err, domain.ErrEmptyInput) {
		current.log.Warn("no extractable sentences in input")
		return nil
	}
	if err != nil {
		return err
	}
	if output != "" {
		path, err := current.service.SaveSummary(output, summary)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "summary saved to %s\n", path)
		return nil
	}
	fmt.Fprintln(out, summary)
	return nil
}
