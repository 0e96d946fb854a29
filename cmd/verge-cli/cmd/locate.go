package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"verge/internal/application/commands"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Look up your current position",
	Long: `Make one request for your current position.

The configured location is used when set; otherwise the position is looked
up from your IP address. Set geolocation_url to "off" to disable the lookup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewLocateCommand(GetSession().Locator).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Position)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
