package models_test

import (
	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cash(tenantID uint64, amount string, allocations ...allocation.SubmissionAllocation) allocation.Submission {
	return allocation.Submission{
		Payment: allocation.Payment{
			TenantID:   tenantID,
			Amount:     types.MustMoney(amount),
			ReceivedOn: types.NewDate(2026, 4, 20),
			Mode:       allocation.ModeCash,
		},
		Allocations: allocations,
	}
}

func allocate(lineID uint64, amount string) allocation.SubmissionAllocation {
	return allocation.SubmissionAllocation{InvoiceLineID: lineID, AllocatedAmount: types.MustMoney(amount)}
}

func (suite *TestSuiteStandard) reloadInvoice(id uint64) models.Invoice {
	var invoice models.Invoice
	err := models.DB.Preload("Lines").First(&invoice, id).Error
	require.Nil(suite.T(), err)
	return invoice
}

func (suite *TestSuiteStandard) TestRecordPaymentStatus() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "1000", "250.50")

	payment, replayed, err := models.RecordPayment(models.DB, l.Organization.ID, cash(tenant.ID, "400", allocate(invoice.Lines[0].ID, "400")), "")
	require.Nil(suite.T(), err)
	assert.False(suite.T(), replayed)
	assert.Equal(suite.T(), "RCPT-2026-00001", payment.Number)
	require.Len(suite.T(), payment.Allocations, 1)
	assert.Equal(suite.T(), models.InvoicePartiallyPaid, suite.reloadInvoice(invoice.ID).Status)

	payment, _, err = models.RecordPayment(models.DB, l.Organization.ID, cash(tenant.ID, "850.50",
		allocate(invoice.Lines[0].ID, "600"),
		allocate(invoice.Lines[1].ID, "250.50"),
	), "")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "RCPT-2026-00002", payment.Number)
	assert.Equal(suite.T(), models.InvoicePaid, suite.reloadInvoice(invoice.ID).Status)
}

func (suite *TestSuiteStandard) TestRecordPaymentCeilingIsOutstanding() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100")

	_, _, err := models.RecordPayment(models.DB, l.Organization.ID, cash(tenant.ID, "60", allocate(invoice.Lines[0].ID, "60")), "")
	require.Nil(suite.T(), err)

	_, _, err = models.RecordPayment(models.DB, l.Organization.ID, cash(tenant.ID, "50", allocate(invoice.Lines[0].ID, "50")), "")
	assert.ErrorIs(suite.T(), err, allocation.ErrLineCeilingExceeded)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Payment{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count, "rejected payment must not be persisted")
}

func (suite *TestSuiteStandard) TestRecordPaymentRejected() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	otherTenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100", "50")
	otherInvoice := suite.createIssuedInvoice(l.Organization.ID, otherTenant.ID, types.NewDate(2026, 4, 15), "100")
	draft := suite.createTestInvoice(models.Invoice{
		OrganizationID: l.Organization.ID,
		TenantID:       tenant.ID,
		Lines:          []models.InvoiceLine{{ChargeType: "RENT", Amount: decimal.NewFromInt(10)}},
	})

	invalidMode := cash(tenant.ID, "10", allocate(invoice.Lines[0].ID, "10"))
	invalidMode.Payment.Mode = "CARD"

	invalidReceivedAt := cash(tenant.ID, "10", allocate(invoice.Lines[0].ID, "10"))
	invalidReceivedAt.Payment.Meta.ReceivedAt = "yesterday"

	tests := []struct {
		name       string
		submission allocation.Submission
		err        error
	}{
		{"Missing tenant", cash(0, "10", allocate(invoice.Lines[0].ID, "10")), allocation.ErrMissingTenant},
		{"Zero amount", cash(tenant.ID, "0", allocate(invoice.Lines[0].ID, "0")), allocation.ErrNonPositiveAmount},
		{"Invalid mode", invalidMode, allocation.ErrModeInvalid},
		{"Invalid received at", invalidReceivedAt, allocation.ErrReceivedAtInvalid},
		{"No allocations", cash(tenant.ID, "10"), allocation.ErrEmptyAllocation},
		{"All zero", cash(tenant.ID, "10", allocate(invoice.Lines[0].ID, "0")), allocation.ErrEmptyAllocation},
		{"Sum mismatch", cash(tenant.ID, "100", allocate(invoice.Lines[0].ID, "60"), allocate(invoice.Lines[1].ID, "30")), allocation.ErrSumMismatch},
		{"Negative", cash(tenant.ID, "10", allocate(invoice.Lines[0].ID, "20"), allocate(invoice.Lines[1].ID, "-10")), allocation.ErrNegativeAllocation},
		{"Line of other tenant", cash(tenant.ID, "10", allocate(otherInvoice.Lines[0].ID, "10")), allocation.ErrMultipleTenants},
		{"Line of draft invoice", cash(tenant.ID, "10", allocate(draft.Lines[0].ID, "10")), models.ErrPaymentLineUnknown},
		{"Line twice", cash(tenant.ID, "10", allocate(invoice.Lines[0].ID, "5"), allocate(invoice.Lines[0].ID, "5")), models.ErrPaymentLineTwice},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, _, err := models.RecordPayment(models.DB, l.Organization.ID, tt.submission, "")
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}

	assert.Equal(suite.T(), models.InvoiceIssued, suite.reloadInvoice(invoice.ID).Status)
}

func (suite *TestSuiteStandard) TestRecordPaymentOtherOrganization() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100")
	other := suite.createTestOrganization(models.Organization{})

	_, _, err := models.RecordPayment(models.DB, other.ID, cash(tenant.ID, "100", allocate(invoice.Lines[0].ID, "100")), "")
	assert.ErrorIs(suite.T(), err, models.ErrPaymentLineUnknown)
}

func (suite *TestSuiteStandard) TestRecordPaymentIdempotent() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100")

	submission := cash(tenant.ID, "40", allocate(invoice.Lines[0].ID, "40"))
	submission.Payment.Meta = allocation.Meta{BankName: "HDFC", ReceivedAt: "2026-04-20T10:15:00Z"}

	first, replayed, err := models.RecordPayment(models.DB, l.Organization.ID, submission, "5f0c6f3e-8d9a-4f43-9a55-3c2a1f1f2b10")
	require.Nil(suite.T(), err)
	assert.False(suite.T(), replayed)
	assert.Equal(suite.T(), "2026-04-20T10:15:00+00:00", first.ReceivedAt)

	second, replayed, err := models.RecordPayment(models.DB, l.Organization.ID, submission, "5f0c6f3e-8d9a-4f43-9a55-3c2a1f1f2b10")
	require.Nil(suite.T(), err)
	assert.True(suite.T(), replayed)
	assert.Equal(suite.T(), first.ID, second.ID)
	assert.Len(suite.T(), second.Allocations, 1)

	summaries, err := models.InvoiceSummaries(models.DB, []models.Invoice{suite.reloadInvoice(invoice.ID)})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "40.00", types.Format(summaries[invoice.ID].Paid))
	assert.Equal(suite.T(), "60.00", types.Format(summaries[invoice.ID].Balance))
}

func (suite *TestSuiteStandard) TestPaymentSubmissionRoundTrip() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100")

	submission := cash(tenant.ID, "100", allocate(invoice.Lines[0].ID, "100"))
	submission.Payment.ReferenceNo = "CHQ-0042"

	payment, _, err := models.RecordPayment(models.DB, l.Organization.ID, submission, "")
	require.Nil(suite.T(), err)

	out := payment.Submission()
	assert.Equal(suite.T(), tenant.ID, out.Payment.TenantID)
	assert.Equal(suite.T(), "100.00", out.Payment.Amount.String())
	assert.Equal(suite.T(), "CHQ-0042", out.Payment.ReferenceNo)
	require.Len(suite.T(), out.Allocations, 1)
	assert.Equal(suite.T(), invoice.Lines[0].ID, out.Allocations[0].InvoiceLineID)
}

func (suite *TestSuiteStandard) TestAllocationInvoices() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100", "50")

	_, _, err := models.RecordPayment(models.DB, l.Organization.ID, cash(tenant.ID, "120",
		allocate(invoice.Lines[0].ID, "100"),
		allocate(invoice.Lines[1].ID, "20"),
	), "")
	require.Nil(suite.T(), err)

	invoices, err := models.AllocationInvoices(models.DB, l.Organization.ID, []uint64{invoice.ID})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), invoices, 1)
	assert.True(suite.T(), invoices[0].Payable)

	// The fully paid line is left out, the other one only has its balance left
	require.Len(suite.T(), invoices[0].Lines, 1)
	assert.Equal(suite.T(), invoice.Lines[1].ID, invoices[0].Lines[0].ID)
	assert.Equal(suite.T(), "30.00", types.Format(invoices[0].Lines[0].Amount))

	_, err = models.AllocationInvoices(models.DB, l.Organization.ID, []uint64{invoice.ID + 100})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestValidatePaymentStoresNothing() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "100", "50")

	allocations, err := models.ValidatePayment(models.DB, l.Organization.ID, cash(tenant.ID, "120",
		allocate(invoice.Lines[0].ID, "100"),
		allocate(invoice.Lines[1].ID, "20"),
	))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), allocations, 2)
	assert.Equal(suite.T(), invoice.ID, allocations[1].InvoiceID)
	assert.Equal(suite.T(), "20.00", types.Format(allocations[1].Amount))

	_, err = models.ValidatePayment(models.DB, l.Organization.ID, cash(tenant.ID, "120", allocate(invoice.Lines[0].ID, "100")))
	assert.ErrorIs(suite.T(), err, allocation.ErrSumMismatch)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Payment{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
	assert.Equal(suite.T(), models.InvoiceIssued, suite.reloadInvoice(invoice.ID).Status)
}
