package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azzautomation2026/shama/internal/store"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List saved quizzes for an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		acct, err := st.Accounts().AccountByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("look up account: %w", err)
		}
		if acct == nil {
			return fmt.Errorf("no account with email %q", email)
		}

		quizzes, err := st.Quizzes().ListByAccount(ctx, acct.ID)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}
		if len(quizzes) == 0 {
			fmt.Println("No saved quizzes.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-9s  %s\n", "ID", "Created", "Questions", "Title")
		fmt.Println(strings.Repeat("─", 100))
		for _, q := range quizzes {
			created := ""
			if q.CreatedAt != nil {
				created = q.CreatedAt.Local().Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-36s  %-19s  %-9d  %s\n", q.ID, created, len(q.Questions), q.Title)
		}
		return nil
	},
}

func init() {
	quizzesCmd.Flags().StringP("email", "e", "", "Account email")
}
