package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/crop-advisor/pkg/recommender"
)

func cropsCmd() *cli.Command {
	return &cli.Command{
		Name:  "crops",
		Usage: "List the crop catalog with pH, moisture and nutrient requirements",
		Description: `Print every crop in catalog order with its pH range, moisture range
and minimum nitrogen/phosphorus/potassium levels. The json and yaml formats
include the advisory tables.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := recommender.NewBuilder(recommender.WithVersion(version)).Crops(ctx)
			if err != nil {
				return fmt.Errorf("error loading crop catalog: %w", err)
			}
			return writeOutput(ctx, cmd, doc)
		},
	}
}

func adviseCmd() *cli.Command {
	return &cli.Command{
		Name:  "advise",
		Usage: "Show pest control, rotation and irrigation advice for one crop",
		Description: `Look up the advisory tables for a crop. Names are matched after title
casing, so "wheat" finds "Wheat". Crops without data print the fallback text.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "crop",
				Aliases:  []string{"c"},
				Usage:    "crop name (e.g., Wheat)",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			advisory, err := recommender.NewBuilder(recommender.WithVersion(version)).
				Advise(ctx, cmd.String("crop"))
			if err != nil {
				return fmt.Errorf("error looking up advisory: %w", err)
			}
			return writeOutput(ctx, cmd, advisory)
		},
	}
}
