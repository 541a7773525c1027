package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/azzautomation2026/shama/internal/llm"
	"github.com/azzautomation2026/shama/internal/quiz"
	"github.com/azzautomation2026/shama/internal/quizgen"
	"github.com/azzautomation2026/shama/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a quiz from a file or stdin and print it as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readSource(args)
		if err != nil {
			return err
		}

		draft := quiz.NewDraft()
		draft.Content = string(content)
		draft.Difficulty = quiz.Difficulty(flagString(cmd, "difficulty"))
		draft.Language = flagString(cmd, "language")
		draft.Subject = flagString(cmd, "subject")
		draft.Tone = flagString(cmd, "tone")
		draft.QuestionCount, _ = cmd.Flags().GetInt("count")

		if err := draft.Validate(); err != nil {
			return err
		}

		cfg, found := resolveLLMConfig()
		if !found {
			return fmt.Errorf("no LLM API key found; set SHAMA_GEMINI_API_KEY or another provider key")
		}

		// The request log still records headless calls.
		var repo *store.RequestLogRepo
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				repo = st.RequestLog()
			}
		}

		logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
		provider, err := llm.NewProvider(cmd.Context(), cfg, repo, logger)
		if err != nil {
			return fmt.Errorf("configure provider: %w", err)
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		q, err := gen.Generate(cmd.Context(), draft)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(q, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read source file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions (1-15)")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, hard")
	generateCmd.Flags().StringP("language", "l", "ar", "Quiz language code (ar, en, es, fr)")
	generateCmd.Flags().String("subject", "", "Optional subject hint")
	generateCmd.Flags().String("tone", "", "Optional tone hint")
}
