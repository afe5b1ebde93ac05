package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summary-service/internal/summarizer"
)

func NewSummarizeCmd(opts *Options) *cobra.Command {
	var systemPrompt, userPrompt string

	cmd := &cobra.Command{
		Use:   "summarize [file|-]",
		Short: "Summarize text from a file or stdin and print the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}

			text, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read text: %w", err)
			}

			if !cmd.Flags().Changed("system-prompt") {
				systemPrompt = app.Config.Summarizer.SystemPrompt
			}

			result := app.Summarizer.Summarize(cmd.Context(), summarizer.Request{
				Text:         string(text),
				SystemPrompt: systemPrompt,
				UserPrompt:   userPrompt,
			})

			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&systemPrompt, "system-prompt", "", "system prompt (defaults to summarizer.system_prompt)")
	cmd.Flags().StringVar(&userPrompt, "user-prompt", "", "extra instructions prepended to the text")

	return cmd
}
