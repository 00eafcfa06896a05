package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"signassist/internal/domain"
	"signassist/internal/logging"
	"signassist/internal/ui/views"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// signResult is the json output of the describe command
type signResult struct {
	Term      string `json:"term"`
	HandShape string `json:"handShape"`
	Movement  string `json:"movement"`
	VideoURL  string `json:"videoUrl"`
}

func newDescribeCmd(flags *globalFlags) *cobra.Command {
	var format string
	var width int

	cmd := &cobra.Command{
		Use:   "describe <term>",
		Short: "Describe how to sign a word and print its video link",
		Example: `  signassist describe hello
  signassist describe thank you --format json
  signassist describe love --provider offline`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatMarkdown, formatJSON:
			default:
				return fmt.Errorf("unsupported format %q, must be one of: %s, %s, %s", format, formatText, formatMarkdown, formatJSON)
			}

			logger := logging.NewWithComponent(logging.Config{
				Level:  levelOr(flags.logLevel, "warn"),
				Pretty: true,
				Output: cmd.ErrOrStderr(),
			}, "cli")

			a, err := newApp(cmd.Context(), flags, cmd.Flags(), false, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			term := strings.Join(args, " ")
			url, err := a.urls.Build(term)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout := a.cfg.AI.Timeout.Std(); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			desc, err := a.fetcher.FetchDescription(ctx, term)
			if err != nil {
				return fmt.Errorf("couldn't describe %q: %w", term, err)
			}

			return writeDescription(cmd.OutOrStdout(), format, width, term, desc, url)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatText, "Output format (text, markdown, json)")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for markdown output")
	// Add shell completion for format flag.
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{formatText, formatMarkdown, formatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func writeDescription(w io.Writer, format string, width int, term string, desc domain.SignDescription, url string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(signResult{
			Term:      term,
			HandShape: desc.HandShape,
			Movement:  desc.Movement,
			VideoURL:  url,
		})
	case formatMarkdown:
		_, err := fmt.Fprintf(w, "%s\n\nVideo: %s\n", views.NewCardRenderer().Render(desc, width), url)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s\n  Hand shape: %s\n  Movement:   %s\n  Video:      %s\n", term, desc.HandShape, desc.Movement, url)
		return err
	}
}

func levelOr(level, fallback string) string {
	if level == "" {
		return fallback
	}
	return level
}
