/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/crop-advisor/pkg/recommender"
	"github.com/NVIDIA/crop-advisor/pkg/soil"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		EnableShellCompletion: true,
		Usage:                 "List crops suited to a soil sample with pest, rotation and irrigation advice",
		Description: `Match a soil sample against the crop catalog. The sample comes from one of:
  - the --ph, --moisture, --nitrogen, --phosphorus and --potassium flags
  - a YAML or JSON file given with --input
  - interactive prompts on stdin (--interactive, or when no reading flag is given)

Crops are listed in catalog order. The report can be written as text, JSON,
YAML or a table.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "ph",
				Usage: "soil pH level (e.g., 6.5)",
			},
			&cli.IntFlag{
				Name:  "moisture",
				Usage: "soil moisture percent (e.g., 40)",
			},
			&cli.IntFlag{
				Name:  "nitrogen",
				Usage: "soil nitrogen level",
			},
			&cli.IntFlag{
				Name:  "phosphorus",
				Usage: "soil phosphorus level",
			},
			&cli.IntFlag{
				Name:  "potassium",
				Usage: "soil potassium level",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage: `path to a YAML or JSON soil sample, e.g.:
	ph: 6.5
	moisture: 40
	nutrients: {nitrogen: 90, phosphorus: 70, potassium: 50}
	If provided, the reading flags are ignored.`,
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "prompt for each reading on stdin",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			sample, err := sampleFromCmd(ctx, cmd)
			if err != nil {
				return fmt.Errorf("error reading soil sample: %w", err)
			}

			slog.Debug("soil sample", "sample", sample.String())

			b := recommender.NewBuilder(
				recommender.WithVersion(version),
			)

			rec, err := b.Build(ctx, sample)
			if err != nil {
				return fmt.Errorf("error building recommendation: %w", err)
			}

			return writeOutput(ctx, cmd, rec)
		},
	}
}

// sampleFromCmd picks the sample source: --input, then --interactive, then
// the reading flags. With no source at all it falls back to prompting.
var readingFlags = []string{"ph", "moisture", "nitrogen", "phosphorus", "potassium"}

func sampleFromCmd(ctx context.Context, cmd *cli.Command) (soil.Sample, error) {
	if path := cmd.String("input"); path != "" {
		sample, err := recommender.LoadSampleFromFile(path)
		if err != nil {
			return soil.Sample{}, fmt.Errorf("failed to load sample from %q: %w", path, err)
		}
		return sample, nil
	}

	if cmd.Bool("interactive") || !slices.ContainsFunc(readingFlags, cmd.IsSet) {
		p := newPrompter(stdin(cmd), stderr(cmd))
		defer p.close()
		return p.readSample(ctx)
	}

	return sampleFromFlags(cmd)
}

// sampleFromFlags requires every reading flag so a forgotten one is not
// silently read as zero.
func sampleFromFlags(cmd *cli.Command) (soil.Sample, error) {
	var missing []string
	for _, f := range readingFlags {
		if !cmd.IsSet(f) {
			missing = append(missing, "--"+f)
		}
	}
	if len(missing) > 0 {
		return soil.Sample{}, fmt.Errorf("missing required flags: %v", missing)
	}

	return soil.NewSample(
		cmd.Float("ph"),
		int(cmd.Int("moisture")),
		soil.NewNutrientProfile(
			int(cmd.Int("nitrogen")),
			int(cmd.Int("phosphorus")),
			int(cmd.Int("potassium")),
		),
	), nil
}
