package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verge/internal/adapters/dataset"
	"verge/internal/application"
	"verge/internal/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a garden dataset and report rejected records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accepted, rejected, err := loadDataset(context.Background(), args[0])
		if err != nil {
			return err
		}

		for _, r := range rejected {
			fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("REJECTED"), r.Error())
		}
		fmt.Printf("%s %d garden(s) valid, %d rejected\n",
			color.New(color.FgGreen).Sprint("OK"), len(accepted), len(rejected))

		if len(rejected) > 0 {
			return fmt.Errorf("%d record(s) rejected", len(rejected))
		}
		return nil
	},
}

// loadDataset decodes and validates a JSON dataset, returning the accepted
// gardens and every rejected record
func loadDataset(ctx context.Context, path string) ([]domain.Garden, []*application.RecordError, error) {
	gardens, err := dataset.NewFileSource(path).LoadAll(ctx)

	var rejected []*application.RecordError
	if err != nil {
		recs, ok := application.RecordErrors(err)
		if !ok {
			return nil, nil, err
		}
		rejected = append(rejected, recs...)
	}

	accepted, err := application.ValidateGardens(gardens)
	if err != nil {
		recs, ok := application.RecordErrors(err)
		if !ok {
			return nil, nil, err
		}
		rejected = append(rejected, recs...)
	}
	return accepted, rejected, nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
