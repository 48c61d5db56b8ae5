// Command nailnav runs the directory's data and account maintenance tasks.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nailnav/nailnav/internal/config"
	dbpkg "github.com/nailnav/nailnav/internal/db"
	"github.com/nailnav/nailnav/internal/logging"
)

// env is shared by every subcommand. The database is opened on first use so
// commands that only need pgx never open a gorm pool.
type env struct {
	verbose bool

	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func (e *env) setup() error {
	e.cfg = config.Load()
	e.log = logging.NewConsole(e.verbose)
	return e.cfg.Validate()
}

func (e *env) gorm() (*gorm.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	db, err := dbpkg.Open(e.cfg)
	if err != nil {
		return nil, err
	}
	e.db = db
	return db, nil
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "nailnav",
		Short:         "NailNav data and account maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup()
		},
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		importSheetCmd(e),
		seedSampleCmd(e),
		seedRealCmd(e),
		seedLocationsCmd(e),
		seedServicesCmd(e),
		cleanSalonsCmd(e),
		fixCitiesCmd(e),
		geocodeCmd(e),
		updateReviewCountsCmd(e),
		recountCmd(e),
		verifyCmd(e),
		promoteAdminCmd(e),
		restoreAdminCmd(e),
		createAdminCmd(e),
		linkUsersCmd(e),
		migrateCmd(e),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		logging.NewConsole(false).Error(root.Name()+" failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}
