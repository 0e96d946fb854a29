package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verge/internal/application/commands"
	"verge/internal/domain"
)

var (
	listType   string
	listSearch string
	listNear   string
	listRadius string
	listLocate bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List gardens, optionally filtered",
	Long: `List the gardens in the catalog.

Filters combine: a garden is listed only if it passes the type, text and
proximity filters. Proximity is on when --near or --locate is given.

Examples:
  verge-cli list
  verge-cli list --type bioswale
  verge-cli list --search bulimba
  verge-cli list --near -27.47,153.02 --radius 2km
  verge-cli list --locate --radius 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s := GetSession()

		tf, err := domain.ParseTypeFilter(listType)
		if err != nil {
			return err
		}

		filter := domain.NewFilter()
		filter.Type = tf
		filter.Query = listSearch
		filter.RadiusKm = s.Config.DefaultRadiusKm
		if cmd.Flags().Changed("radius") {
			r, err := domain.ParseRadius(listRadius)
			if err != nil {
				return err
			}
			filter.RadiusKm = r
		}

		switch {
		case listNear != "":
			p, err := domain.ParsePoint(listNear)
			if err != nil {
				return err
			}
			filter.Near = &p
		case listLocate:
			result, err := commands.NewLocateCommand(s.Locator).Execute(ctx)
			if err != nil {
				// proximity stays off
				fmt.Fprintln(os.Stderr, color.New(color.FgYellow).Sprint(err.Error()))
			} else {
				filter.Near = &result.Position
				fmt.Fprintln(os.Stderr, muted(result.Message))
			}
		}

		result, err := commands.NewFilterGardensCommand(s.Catalog, filter).Execute(ctx)
		if err != nil {
			return err
		}

		if len(result.Gardens) == 0 {
			fmt.Println("No gardens match your search.")
		} else {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tNAME\tLOCATION\tHEALTH\tFLOOD\tDISTANCE")
			for _, g := range result.Gardens {
				dist := "-"
				if filter.Near != nil {
					dist = fmt.Sprintf("%.1f km", domain.Distance(*filter.Near, g.Position()))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					g.ID, typeLabel(g.Type), g.Name, g.Location, healthLabel(g.Health), floodLabel(g.FloodRisk), dist)
			}
			w.Flush()
		}

		if result.Summary != "" {
			fmt.Println()
			fmt.Println(result.Summary)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listType, "type", "t", "all", "garden type: all, verge (VG) or bioswale (BS)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "text to match against name, location or type")
	listCmd.Flags().StringVar(&listNear, "near", "", "reference position as lat,lng")
	listCmd.Flags().StringVarP(&listRadius, "radius", "r", "", "radius in km, e.g. 2 or 2km ("+domain.RadiusChoicesString()+"; default from config)")
	listCmd.Flags().BoolVar(&listLocate, "locate", false, "use your current location as the reference position")
}
