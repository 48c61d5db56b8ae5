package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/importer"
	infraRepo "github.com/nailnav/nailnav/internal/infra/repository"
)

const defaultWorkbook = "Australian_Salons.xlsx"

type importFlags struct {
	policy      string
	batch       int
	pause       time.Duration
	rps         float64
	flagMode    string
	seed        int64
	skipRecount bool
}

func (f *importFlags) bind(cmd *cobra.Command, defaultPolicy, defaultMode string) {
	fs := cmd.Flags()
	fs.StringVar(&f.policy, "on-conflict", defaultPolicy, "existing slug handling: skip, overwrite, always-insert")
	fs.IntVar(&f.batch, "batch", importer.DefaultBatchSize, "rows per batch before pausing")
	fs.DurationVar(&f.pause, "pause", importer.DefaultBatchPause, "pause between batches")
	fs.Float64Var(&f.rps, "rps", 0, "rows per second; replaces batch pausing when set")
	fs.StringVar(&f.flagMode, "flags", defaultMode, "service flags: sheet, random, all")
	fs.Int64Var(&f.seed, "seed", 0, "random seed; 0 uses the clock")
	fs.BoolVar(&f.skipRecount, "no-recount", false, "skip the city salon count refresh")
}

func (f *importFlags) rng() *rand.Rand {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (f *importFlags) options(rng *rand.Rand, p importer.Probabilities) (importer.Options, error) {
	policy, err := importer.ParsePolicy(f.policy)
	if err != nil {
		return importer.Options{}, err
	}

	opts := importer.Options{Policy: policy, Recount: !f.skipRecount}

	if f.rps > 0 {
		opts.Throttle = importer.NewRateThrottle(f.rps, 1)
	} else {
		opts.Throttle = importer.NewBatchThrottle(f.batch, f.pause)
	}

	switch f.flagMode {
	case "sheet", "":
		opts.Flags = importer.SheetFlags()
	case "random":
		opts.Flags = importer.RandomFlags(rng, p)
	case "all":
		opts.Flags = importer.FullServiceFlags(rng)
	default:
		return importer.Options{}, fmt.Errorf("unknown flag mode %q", f.flagMode)
	}
	return opts, nil
}

func runImport(cmd *cobra.Command, e *env, opts importer.Options, recs []importer.Record) error {
	db, err := e.gorm()
	if err != nil {
		return err
	}

	e.log.Info("importing salons",
		zap.Int("rows", len(recs)),
		zap.Stringer("policy", opts.Policy),
	)

	res, err := importer.New(infraRepo.NewImportGormRepository(db), e.log, opts).Run(cmd.Context(), recs)
	if err != nil {
		return err
	}

	e.log.Info("import finished",
		zap.Int("total", res.Total),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", len(res.Failed)),
		zap.Int("cities_created", res.CitiesCreated),
		zap.Int("state_defaults", res.StateDefaults),
	)
	for _, f := range res.Failed {
		e.log.Warn("row failed", zap.Error(f))
	}
	return nil
}

func importSheetCmd(e *env) *cobra.Command {
	var f importFlags
	cmd := &cobra.Command{
		Use:   "import-sheet [workbook.xlsx]",
		Short: "Import salons from the first sheet of a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultWorkbook
			if len(args) == 1 {
				path = args[0]
			}

			rows, err := importer.ReadWorkbook(path)
			if err != nil {
				return err
			}

			opts, err := f.options(f.rng(), importer.SampleProbabilities)
			if err != nil {
				return err
			}
			return runImport(cmd, e, opts, importer.RecordsFromSheet(rows))
		},
	}
	f.bind(cmd, "skip", "sheet")
	return cmd
}

func seedSampleCmd(e *env) *cobra.Command {
	var f importFlags
	cmd := &cobra.Command{
		Use:   "seed-sample",
		Short: "Insert the fixed demo salons with random service flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(f.rng(), importer.SampleProbabilities)
			if err != nil {
				return err
			}
			return runImport(cmd, e, opts, importer.SampleRecords())
		},
	}
	f.bind(cmd, "always-insert", "random")
	return cmd
}

func seedRealCmd(e *env) *cobra.Command {
	var f importFlags
	cmd := &cobra.Command{
		Use:   "seed-real",
		Short: "Insert the city catalogue of real salon names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := f.rng()
			opts, err := f.options(rng, importer.ExpandProbabilities)
			if err != nil {
				return err
			}
			return runImport(cmd, e, opts, importer.CatalogueRecords(rng))
		},
	}
	f.bind(cmd, "always-insert", "random")
	return cmd
}
