package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summary-service/internal/inbox"
	"github.com/nguyentantai21042004/audio-summary-service/internal/processor"
)

func NewProcessCmd(opts *Options) *cobra.Command {
	var systemPrompt, userPrompt string

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Run one local audio file through the pipeline and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			if !cmd.Flags().Changed("system-prompt") {
				systemPrompt = app.Config.Summarizer.SystemPrompt
			}

			result := app.Processor.ProcessAudio(cmd.Context(), processor.Input{
				Body:         f,
				Filename:     filepath.Base(args[0]),
				ContentType:  inbox.ContentType(args[0]),
				SystemPrompt: systemPrompt,
				UserPrompt:   userPrompt,
			})

			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&systemPrompt, "system-prompt", "", "system prompt (defaults to summarizer.system_prompt)")
	cmd.Flags().StringVar(&userPrompt, "user-prompt", "", "extra instructions prepended to the transcript")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
