package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/metrics"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func RegisterPaymentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPayments)
		r.GET("", GetPayments)
		r.POST("", CreatePayment)
		r.OPTIONS("/allocation-preview", OptionsPaymentAction)
		r.POST("/allocation-preview", PreviewAllocation)
		r.OPTIONS("/validate", OptionsPaymentAction)
		r.POST("/validate", ValidatePayment)
	}
	{
		r.OPTIONS("/:id", OptionsPaymentDetail)
		r.GET("/:id", GetPayment)
	}
}

// rejected counts allocation validation failures by kind.
func rejected(err error) {
	var v *allocation.ValidationError
	if errors.As(err, &v) {
		metrics.AllocationRejections.WithLabelValues(string(v.Kind)).Inc()
	}
}

// invoicesInScope verifies that all invoices are visible in tower scopes.
func invoicesInScope(s scope.Scope, ids []uint64) error {
	if s.Type != scope.TypeTower {
		return nil
	}

	for _, id := range ids {
		err := invoicesQuery(s).First(&models.Invoice{}, "invoices.id = ?", id).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// submissionInScope verifies that the invoices of all allocated lines are
// visible in tower scopes.
func submissionInScope(s scope.Scope, submission allocation.Submission) error {
	lineIDs := submission.LineIDs()
	if s.Type != scope.TypeTower || len(lineIDs) == 0 {
		return nil
	}

	var invoiceIDs []uint64
	err := models.DB.
		Model(&models.InvoiceLine{}).
		Where("id IN ?", lineIDs).
		Distinct().
		Pluck("invoice_id", &invoiceIDs).Error
	if err != nil {
		return err
	}

	return invoicesInScope(s, invoiceIDs)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/v1/payments [options]
func OptionsPayments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/v1/payments/allocation-preview [options]
// @Router			/v1/payments/validate [options]
func OptionsPaymentAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [options]
func OptionsPaymentDetail(c *gin.Context) {
	_, ok := getResource[models.Payment](c, paymentsQuery(scope.FromContext(c)), "payments")
	if !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Preview allocation
// @Description	Builds one allocation row per outstanding line of the selected invoices, in the order the invoices are selected.
// @Description	With an amount, the rows are allocated front to back until the amount is used up.
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	AllocationPreviewResponse
// @Failure		400			{object}	allocationError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int							true	"Organization ID"
// @Param			selection	body		AllocationPreviewRequest	true	"Selected invoices"
// @Router			/v1/payments/allocation-preview [post]
func PreviewAllocation(c *gin.Context) {
	var request AllocationPreviewRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		writeError(c, err)
		return
	}

	s := scope.FromContext(c)

	err = invoicesInScope(s, request.InvoiceIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	invoices, err := models.AllocationInvoices(models.DB, s.OrganizationID, request.InvoiceIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	rows, err := allocation.BuildRows(invoices)
	if err != nil {
		rejected(err)
		writeError(c, err)
		return
	}

	remaining := decimal.Zero
	if request.Amount != nil {
		result := allocation.AutoAllocate(request.Amount.Decimal, rows)
		rows = result.Rows
		remaining = result.Remaining
	}

	c.JSON(http.StatusOK, AllocationPreviewResponse{
		Data: &AllocationPreview{
			Rows:      newAllocationRows(rows),
			Total:     types.NewMoney(allocation.Total(rows)),
			Allocated: types.NewMoney(allocation.Allocated(rows)),
			Remaining: types.NewMoney(remaining),
		},
	})
}

// @Summary		Validate payment
// @Description	Checks a payment submission without recording it and returns the allocations that would be recorded.
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	PaymentValidationResponse
// @Failure		400			{object}	allocationError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int						true	"Organization ID"
// @Param			payment		body		allocation.Submission	true	"Payment"
// @Router			/v1/payments/validate [post]
func ValidatePayment(c *gin.Context) {
	var submission allocation.Submission
	err := httputil.BindData(c, &submission)
	if err != nil {
		writeError(c, err)
		return
	}

	s := scope.FromContext(c)

	err = submissionInScope(s, submission)
	if err != nil {
		writeError(c, err)
		return
	}

	allocations, err := models.ValidatePayment(models.DB, s.OrganizationID, submission)
	if err != nil {
		rejected(err)
		writeError(c, err)
		return
	}

	data := PaymentValidation{Allocations: make([]ValidatedAllocation, 0, len(allocations))}
	for _, a := range allocations {
		data.Allocations = append(data.Allocations, ValidatedAllocation{
			InvoiceID:     a.InvoiceID,
			InvoiceLineID: a.InvoiceLineID,
			Amount:        types.NewMoney(a.Amount),
		})
	}

	c.JSON(http.StatusOK, PaymentValidationResponse{Data: &data})
}

// @Summary		Record payment
// @Description	Records a payment with its allocations and updates the status of the invoices it pays into.
// @Description	Send an Idempotency-Key header to make retries safe: a repeated key returns the payment recorded first with status 200.
// @Tags			Payments
// @Produce		json
// @Success		200				{object}	PaymentResponse
// @Success		201				{object}	PaymentResponse
// @Failure		400				{object}	allocationError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			X-Org-ID		header		int						true	"Organization ID"
// @Param			Idempotency-Key	header		string					false	"UUID identifying the submission"
// @Param			payment			body		allocation.Submission	true	"Payment"
// @Router			/v1/payments [post]
func CreatePayment(c *gin.Context) {
	key := c.GetHeader("Idempotency-Key")
	if key != "" {
		if _, err := uuid.Parse(key); err != nil {
			writeError(c, errIdempotencyKey)
			return
		}
	}

	var submission allocation.Submission
	err := httputil.BindData(c, &submission)
	if err != nil {
		writeError(c, err)
		return
	}

	s := scope.FromContext(c)

	err = submissionInScope(s, submission)
	if err != nil {
		writeError(c, err)
		return
	}

	payment, replayed, err := models.RecordPayment(models.DB, s.OrganizationID, submission, key)
	if err != nil {
		rejected(err)
		writeError(c, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
		log.Debug().Str("idempotency_key", key).Uint64("payment", payment.ID).Msg("replayed payment")
	} else {
		metrics.PaymentsRecorded.WithLabelValues(string(payment.Mode)).Inc()
		log.Info().Str("scope", s.String()).Str("number", payment.Number).Str("amount", types.Format(payment.Amount)).Msg("payment recorded")
	}

	data := newPayment(c, payment)
	c.JSON(status, PaymentResponse{Data: &data})
}

// @Summary		Get payments
// @Description	Returns the payments of the organization, newest first
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	PaymentListResponse
// @Failure		400			{object}	PaymentListResponse
// @Failure		500			{object}	PaymentListResponse
// @Router			/v1/payments [get]
// @Param			X-Org-ID	header	int		true	"Organization ID"
// @Param			tenant_id	query	int		false	"Filter by tenant ID"
// @Param			mode		query	string	false	"Filter by payment mode"
// @Param			invoice_id	query	int		false	"Payments with an allocation to this invoice"
// @Param			offset		query	uint	false	"The offset of the first payment returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of payments to return. Defaults to 50."
func GetPayments(c *gin.Context) {
	var filter PaymentQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PaymentListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := paymentsQuery(scope.FromContext(c)).
		Order("payments.received_on DESC, payments.id DESC").
		Where(&where, queryFields...)

	if filter.InvoiceID != 0 {
		q = q.Where("payments.id IN (?)", models.DB.
			Model(&models.PaymentAllocation{}).
			Select("payment_id").
			Where("invoice_id = ?", filter.InvoiceID))
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var payments []models.Payment
	err := q.Session(&gorm.Session{}).Preload("Allocations").Find(&payments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Payment, 0, len(payments))
	for _, payment := range payments {
		data = append(data, newPayment(c, payment))
	}

	c.JSON(http.StatusOK, PaymentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get payment
// @Description	Returns a specific payment with its allocations
// @Tags			Payments
// @Produce		json
// @Success		200			{object}	PaymentResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ID formatted as string"
// @Router			/v1/payments/{id} [get]
func GetPayment(c *gin.Context) {
	payment, ok := getResource[models.Payment](c, paymentsQuery(scope.FromContext(c)).Preload("Allocations"), "payments")
	if !ok {
		return
	}

	data := newPayment(c, payment)
	c.JSON(http.StatusOK, PaymentResponse{Data: &data})
}
