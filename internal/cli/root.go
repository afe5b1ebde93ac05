package cli

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summary-service/internal/api"
)

type Options struct {
	ConfigPath string
}

func NewRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "audio-summary",
		Short: "Transcribe audio files and summarize them with an LLM",
		Long: "An HTTP service that converts uploaded audio with ffmpeg, transcribes it with a speech " +
			"recognition backend and summarizes the transcript through OpenRouter or Gemini.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	rootCmd.Version = api.Version
	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file (defaults and environment only when empty)")

	rootCmd.AddCommand(NewServeCmd(opts))
	rootCmd.AddCommand(NewProcessCmd(opts))
	rootCmd.AddCommand(NewSummarizeCmd(opts))
	rootCmd.AddCommand(NewDoctorCmd(opts))

	return rootCmd
}
