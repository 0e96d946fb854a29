package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verge/internal/adapters/sqlite"
)

var indexForce bool

var indexCmd = &cobra.Command{
	Use:   "index <dataset.json> <catalog.db>",
	Short: "Build a sqlite catalog from a JSON dataset",
	Long: `Build a sqlite catalog from a JSON dataset.

Invalid records are skipped and reported. The catalog is left alone when it
was already built from the same gardens, unless --force is given. Pass the
.db file to --data to browse it.

Examples:
  verge-cli index gardens.json ~/.local/share/verge/gardens.db`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		gardens, rejected, err := loadDataset(ctx, args[0])
		if err != nil {
			return err
		}
		for _, r := range rejected {
			logger.Warn().Int("index", r.Index).Str("garden_id", r.ID).Err(r.Err).Msg("garden record rejected")
		}
		if len(gardens) == 0 {
			return fmt.Errorf("no valid gardens in %s", args[0])
		}

		idx := sqlite.NewIndex()
		if err := idx.Open(args[1]); err != nil {
			return err
		}
		defer idx.Close()

		upToDate, err := idx.UpToDate(gardens)
		if err != nil {
			return err
		}
		if !indexForce && upToDate {
			fmt.Printf("%s %s is up to date\n", color.New(color.FgGreen).Sprint("OK"), idx.Path())
			return nil
		}

		stats, err := idx.Rebuild(ctx, gardens)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s: %d gardens, %d plants, %d comments in %s\n",
			color.New(color.FgGreen).Sprint("BUILT"), idx.Path(),
			stats.GardensAdded, stats.PlantsAdded, stats.CommentsAdded, stats.Duration.Round(time.Millisecond))
		if skipped := len(rejected) + stats.RecordsSkipped; skipped > 0 {
			fmt.Printf("%s %d record(s) skipped\n", color.New(color.FgYellow).Sprint("WARN"), skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVarP(&indexForce, "force", "f", false, "rebuild even if the catalog is up to date")
}
