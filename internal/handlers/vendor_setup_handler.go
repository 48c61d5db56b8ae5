package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorTable is satisfied by *migrations.VendorSetup.
type VendorTable interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context) error
	SQL() string
}

type VendorSetupHandler struct {
	table VendorTable
	log   *zap.Logger
}

func NewVendorSetupHandler(t VendorTable, log *zap.Logger) *VendorSetupHandler {
	return &VendorSetupHandler{table: t, log: log}
}

var migrationSteps = []string{
	"1. Run `nailnav migrate` against the target database",
	"2. Or POST /api/vendor-setup to create the table from this service",
	"3. Refresh this page to test again",
}

func (h *VendorSetupHandler) Check(c *gin.Context) {
	ok, err := h.table.Exists(c.Request.Context())
	if err != nil || !ok {
		details := "relation vendor_applications does not exist"
		if err != nil {
			details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":         false,
			"error":           "vendor_applications table not found",
			"details":         details,
			"suggestion":      "Run the vendor applications migration",
			"migration_steps": migrationSteps,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "vendor_applications table exists and is accessible",
		"table_ready": true,
	})
}

func (h *VendorSetupHandler) Create(c *gin.Context) {
	if err := h.table.Create(c.Request.Context()); err != nil {
		h.log.Error("vendor table setup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":    false,
			"error":      "Setup failed",
			"details":    err.Error(),
			"sql_to_run": h.table.SQL(),
			"instructions": []string{
				"1. Copy the SQL above",
				"2. Open a SQL console on the database",
				"3. Paste and run the SQL",
				"4. Test registration again",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "vendor_applications table is ready",
		"table_ready": true,
	})
}
