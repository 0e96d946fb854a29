package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"verge/internal/application/commands"
)

var showCmd = &cobra.Command{
	Use:   "show <garden-id>",
	Short: "Show a garden's condition, plants and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := GetSession()
		g, err := commands.NewGetGardenCommand(s.Catalog, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		writeGarden(os.Stdout, *g, s.Catalog.Reports(g.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
