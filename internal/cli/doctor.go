package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summary-service/internal/config"
)

func NewDoctorCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			cfg := app.Config
			out := cmd.OutOrStdout()
			ok := true

			if path, err := app.Executor.LookPath(cfg.FFmpeg.BinaryPath); err != nil {
				check(out, "ffmpeg", false, "not found on PATH. Install ffmpeg or set ffmpeg.binary_path")
				ok = false
			} else {
				check(out, "ffmpeg", true, path)
			}

			switch cfg.Summarizer.Provider {
			case config.ProviderGemini:
				ok = checkKey(out, "Gemini API key", cfg.Gemini.APIKey, "GEMINI_API_KEY") && ok
			default:
				ok = checkKey(out, "OpenRouter API key", cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY") && ok
			}

			switch cfg.Speech.Backend {
			case config.SpeechBackendWhisperCPP:
				if path, err := app.Executor.LookPath(cfg.Whisper.BinaryPath); err != nil {
					check(out, "whisper.cpp", false, "binary not found: "+cfg.Whisper.BinaryPath)
					ok = false
				} else {
					check(out, "whisper.cpp", true, path)
				}
				if _, err := os.Stat(cfg.Whisper.ModelPath); err != nil {
					check(out, "whisper model", false, err.Error())
					ok = false
				} else {
					check(out, "whisper model", true, cfg.Whisper.ModelPath)
				}
			default:
				ok = checkKey(out, "Speech API key", cfg.Speech.APIKey, "SPEECH_API_KEY or OPENAI_API_KEY") && ok
			}

			if f, err := os.CreateTemp(cfg.Paths.Temp, "doctor-*"); err != nil {
				check(out, "Temp directory", false, err.Error())
				ok = false
			} else {
				f.Close()
				os.Remove(f.Name())
				check(out, "Temp directory", true, cfg.Paths.Temp)
			}

			if !ok {
				fmt.Fprintln(out, "\nSome prerequisites are missing.")
				return errors.New("some prerequisites are missing")
			}
			fmt.Fprintln(out, "\nAll prerequisites met.")
			return nil
		},
	}
}

func checkKey(out io.Writer, name, value, env string) bool {
	if value == "" {
		check(out, name, false, "not set. Set "+env)
		return false
	}
	check(out, name, true, "configured")
	return true
}

func check(out io.Writer, name string, ok bool, detail string) {
	mark := "ok"
	if !ok {
		mark = "missing"
	}
	fmt.Fprintf(out, "[%s] %s: %s\n", mark, name, detail)
}
