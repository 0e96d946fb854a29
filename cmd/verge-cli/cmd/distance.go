package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"verge/internal/domain"
)

var distanceCmd = &cobra.Command{
	Use:   "distance <lat,lng> <lat,lng>",
	Short: "Great-circle distance between two positions in km",
	Long: `Print the great-circle (Haversine) distance between two positions.

Examples:
  verge-cli distance -27.4698,153.0251 -27.4705,153.0260`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := domain.ParsePoint(args[0])
		if err != nil {
			return err
		}
		b, err := domain.ParsePoint(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%.3f km\n", domain.Distance(a, b))
		return nil
	},
}

var radiiCmd = &cobra.Command{
	Use:   "radii",
	Short: "List the search radius choices",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range domain.RadiusChoices {
			marker := ""
			if r == cfg.DefaultRadiusKm {
				marker = muted(" (default)")
			}
			fmt.Printf("%g km%s\n", r, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(radiiCmd)
}
