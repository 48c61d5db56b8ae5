package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/migrations"
)

func migrateCmd(e *env) *cobra.Command {
	var file string
	var list bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				names, err := migrations.Names()
				if err != nil {
					return err
				}
				for _, n := range names {
					e.log.Info("migration", zap.String("file", n))
				}
				return nil
			}

			ctx := cmd.Context()
			conn, err := migrations.Connect(ctx, e.cfg.DBUrl)
			if err != nil {
				return err
			}
			defer conn.Close(ctx)

			m := migrations.New(conn, e.log)
			var rep *migrations.Report
			if file != "" {
				rep, err = m.RunFile(ctx, file)
			} else {
				rep, err = m.Run(ctx)
			}
			if err != nil {
				return err
			}
			e.log.Info("migrations applied",
				zap.Int("files", rep.Files),
				zap.Int("statements", rep.Applied),
				zap.Int("skipped", rep.Skipped),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "run a single migration file")
	cmd.Flags().BoolVar(&list, "list", false, "list embedded migrations and exit")
	return cmd
}
