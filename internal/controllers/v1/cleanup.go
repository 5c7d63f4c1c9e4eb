package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"gorm.io/gorm"
)

// @Summary		Delete everything
// @Description	Permanently deletes all resources of the organization in the X-Org-ID header. The organization itself is kept.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			confirm		query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	s := scope.FromContext(c)

	// Use a transaction so that we can roll back if errors happen
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return deleteOrganizationData(tx, s.OrganizationID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// deleteOrganizationData deletes all resources of an organization.
func deleteOrganizationData(tx *gorm.DB, organizationID uint64) error {
	// Foreign keys are checked during cleanup, resources
	// are deleted before any of the resources they reference
	statements := []struct {
		model any
		query string
	}{
		{&models.PaymentAllocation{}, "payment_id IN (SELECT id FROM payments WHERE organization_id = ?)"},
		{&models.Payment{}, "organization_id = ?"},
		{&models.InvoiceLine{}, "invoice_id IN (SELECT id FROM invoices WHERE organization_id = ?)"},
		{&models.Invoice{}, "organization_id = ?"},
		{&models.BillingRule{}, "organization_id = ?"},
		{&models.AgeingBucket{}, "organization_id = ?"},
		{&models.FieldDefinition{}, "organization_id = ?"},
		{&models.Lease{}, "organization_id = ?"},
		{&models.Unit{}, "organization_id = ?"},
		{&models.Floor{}, "tower_id IN (SELECT id FROM towers WHERE organization_id = ?)"},
		{&models.Tower{}, "organization_id = ?"},
		{&models.Tenant{}, "organization_id = ?"},
	}

	// Invoice line hooks reject changes to issued invoices
	tx = tx.Session(&gorm.Session{SkipHooks: true})

	for _, s := range statements {
		err := tx.Unscoped().Where(s.query, organizationID).Delete(s.model).Error
		if err != nil {
			return err
		}
	}

	return nil
}
