package migrations

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nailnav/nailnav/internal/dberr"
)

// VendorSetup checks for and creates the vendor_applications table on demand.
type VendorSetup struct {
	db    *gorm.DB
	dbURL string
	log   *zap.Logger
}

func NewVendorSetup(db *gorm.DB, dbURL string, log *zap.Logger) *VendorSetup {
	return &VendorSetup{db: db, dbURL: dbURL, log: log}
}

// Exists probes the table; a missing-relation error means it is absent.
func (v *VendorSetup) Exists(ctx context.Context) (bool, error) {
	var n int64
	err := v.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM vendor_applications").Scan(&n).Error
	if err == nil {
		return true, nil
	}
	if dberr.IsMissingRelation(err) {
		return false, nil
	}
	return false, err
}

func (v *VendorSetup) Create(ctx context.Context) error {
	conn, err := Connect(ctx, v.dbURL)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	_, err = New(conn, v.log).RunFile(ctx, VendorApplicationsFile)
	return err
}

// SQL is the script an operator can paste into a SQL console.
func (v *VendorSetup) SQL() string {
	s, _ := Source(VendorApplicationsFile)
	return s
}
