package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"verge/internal/adapters/author"
	"verge/internal/application/commands"
)

var commentAuthor string

var commentCmd = &cobra.Command{
	Use:   "comment <garden-id> <text...>",
	Short: "Add a comment to a garden for this session",
	Long: `Add an observation to a garden and print its comments, newest first.

Comments live only for the session: the dataset is not modified.

Examples:
  verge-cli comment 1 "Lomandra flowering"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetSession()
		authors := s.Authors
		if commentAuthor != "" {
			authors = author.Fixed(commentAuthor)
		}

		result, err := commands.NewAddCommentCommand(s.Catalog, authors, args[0], strings.Join(args[1:], " ")).
			Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, muted(result.Message))
		writeComments(os.Stdout, result.Garden.Comments)
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <garden-id> <description...>",
	Short: "Lodge a mock maintenance report for this session",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewLodgeReportCommand(GetSession().Catalog, args[0], strings.Join(args[1:], " ")).
			Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(reportCmd)
	commentCmd.Flags().StringVar(&commentAuthor, "author", "", "attribute the comment to this name instead of a random one")
}
