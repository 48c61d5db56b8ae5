package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	infraRepo "github.com/nailnav/nailnav/internal/infra/repository"
	"github.com/nailnav/nailnav/internal/usecase/vendorapp"
)

func (e *env) admin() (*vendorapp.Admin, error) {
	db, err := e.gorm()
	if err != nil {
		return nil, err
	}
	return vendorapp.NewAdmin(infraRepo.NewVendorAppGormRepository(db), e.log), nil
}

func logAdminResult(e *env, msg string, res *vendorapp.AdminResult) {
	e.log.Info(msg,
		zap.String("application_id", res.Application.ID.String()),
		zap.String("salon_name", res.Application.SalonName),
		zap.String("status", res.Application.Status),
		zap.Bool("created", res.Created),
		zap.Bool("changed", res.Changed),
		zap.Bool("linked", res.Linked),
	)
}

func promoteAdminCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "promote-admin <email>",
		Short: "Turn the application for email into an administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := e.admin()
			if err != nil {
				return err
			}
			res, err := uc.Promote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logAdminResult(e, "admin promoted", res)
			return nil
		},
	}
}

func restoreAdminCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "restore-admin <email>",
		Short: "Restore administrator access, recreating the application if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := e.admin()
			if err != nil {
				return err
			}
			res, err := uc.Restore(cmd.Context(), args[0])
			if errors.Is(err, vendorapp.ErrNoAuthUser) {
				e.log.Error("no account with that email; register first or use create-admin",
					zap.String("email", args[0]))
				return err
			}
			if err != nil {
				return err
			}
			logAdminResult(e, "admin access restored", res)
			return nil
		},
	}
}

func createAdminCmd(e *env) *cobra.Command {
	var password, fullName string
	cmd := &cobra.Command{
		Use:   "create-admin <email>",
		Short: "Create an administrator account, profile and application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := e.admin()
			if err != nil {
				return err
			}
			res, err := uc.Create(cmd.Context(), args[0], password, fullName)
			if err != nil {
				return err
			}
			logAdminResult(e, "admin created", res)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password for a new account (ignored when the account exists)")
	cmd.Flags().StringVar(&fullName, "name", "Administrator", "profile full name")
	return cmd
}

func linkUsersCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "link-users",
		Short: "Fill missing user ids on applications by matching email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := e.admin()
			if err != nil {
				return err
			}
			sum, err := uc.LinkUsers(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("applications linked",
				zap.Int("scanned", sum.Scanned),
				zap.Int("linked", sum.Linked),
				zap.Int("missing", len(sum.Missing)),
			)
			for _, email := range sum.Missing {
				e.log.Warn("no account for application", zap.String("email", email))
			}
			return nil
		},
	}
}
