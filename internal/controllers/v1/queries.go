package v1

import (
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"gorm.io/gorm"
)

// The functions in this file return queries narrowed to the request scope.
// Every handler for organization-owned resources starts from one of them.

func towersQuery(s scope.Scope) *gorm.DB {
	return models.DB.Model(&models.Tower{}).Scopes(s.Owned("towers"), s.InTower("towers.id"))
}

func floorsQuery(s scope.Scope) *gorm.DB {
	return models.DB.
		Model(&models.Floor{}).
		Joins("JOIN towers ON towers.id = floors.tower_id").
		Scopes(s.Owned("towers"), s.InTower("towers.id"))
}

func unitsQuery(s scope.Scope) *gorm.DB {
	return models.DB.Model(&models.Unit{}).Scopes(s.Owned("units"), s.InTower("units.tower_id"))
}

// tenantsQuery is not narrowed by towers, tenants can lease units in several towers.
func tenantsQuery(s scope.Scope) *gorm.DB {
	return models.DB.Model(&models.Tenant{}).Scopes(s.Owned("tenants"))
}

func leasesQuery(s scope.Scope) *gorm.DB {
	q := models.DB.Model(&models.Lease{}).Scopes(s.Owned("leases"))

	if s.Type == scope.TypeTower {
		q = q.
			Joins("JOIN units ON units.id = leases.unit_id").
			Scopes(s.InTower("units.tower_id"))
	}

	return q
}

func billingRulesQuery(s scope.Scope) *gorm.DB {
	return models.DB.Model(&models.BillingRule{}).Scopes(s.Owned("billing_rules"))
}

func fieldDefinitionsQuery(s scope.Scope) *gorm.DB {
	return models.DB.Model(&models.FieldDefinition{}).Scopes(s.Owned("field_definitions"))
}

func invoicesQuery(s scope.Scope) *gorm.DB {
	return models.InvoicesInScope(models.DB, s)
}

func paymentsQuery(s scope.Scope) *gorm.DB {
	return models.DB.Model(&models.Payment{}).Scopes(s.Owned("payments"))
}
