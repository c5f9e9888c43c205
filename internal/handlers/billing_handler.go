package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/payments"
)

// BillingHandler issues bills after a visit and runs payment through the
// checkout gateway. The gateway can be absent (no access token in the
// environment); billing still works, only online payment is off.
type BillingHandler struct {
	db      *gorm.DB
	gateway *payments.Gateway
	audit   *audit.Dispatcher
}

func NewBillingHandler(db *gorm.DB, gateway *payments.Gateway, audit *audit.Dispatcher) *BillingHandler {
	return &BillingHandler{db: db, gateway: gateway, audit: audit}
}

// --------- issue ---------

type BillItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity"`
	AmountPaise int64  `json:"amount_paise" binding:"required"`
}

type CreateBillRequest struct {
	AppointmentID uint              `json:"appointment_id" binding:"required"`
	Items         []BillItemRequest `json:"items" binding:"required,min=1"`
	Notes         string            `json:"notes"`
}

func (h *BillingHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND hospital_id = ?", req.AppointmentID, currentHospitalID(c)).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	items := make([]models.BillItem, 0, len(req.Items))
	var total int64
	for _, item := range req.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		if item.AmountPaise < 0 {
			httperr.BadRequest(c, "invalid_amount", "Line amounts cannot be negative.")
			return
		}
		items = append(items, models.BillItem{
			Description: item.Description,
			Quantity:    qty,
			AmountPaise: item.AmountPaise,
		})
		total += item.AmountPaise * int64(qty)
	}

	bill := models.Bill{
		AppointmentID: ap.ID,
		PatientID:     ap.PatientID,
		DoctorID:      ap.DoctorID,
		Items:         items,
		TotalPaise:    total,
		Status:        models.BillUnpaid,
		Notes:         req.Notes,
	}

	if err := h.db.Create(&bill).Error; err != nil {
		writeError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &userID,
		Action:     "bill_issued",
		Entity:     "bill",
		EntityID:   &bill.ID,
		Metadata:   map[string]any{"total_paise": bill.TotalPaise},
	})

	c.JSON(http.StatusCreated, bill)
}

// Cancel voids a bill. Paid bills stay on the books.
func (h *BillingHandler) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var bill models.Bill
	if err := h.db.
		Joins("JOIN appointments ON appointments.id = bills.appointment_id").
		Where("bills.id = ? AND appointments.hospital_id = ?", id, currentHospitalID(c)).
		First(&bill).Error; err != nil {
		httperr.NotFound(c, "bill_not_found", "Bill not found.")
		return
	}

	if bill.Status != models.BillUnpaid {
		writeError(c, httperr.ErrBusiness("invalid_state"))
		return
	}

	bill.Status = models.BillCancelled
	if err := h.db.Save(&bill).Error; err != nil {
		writeError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &userID,
		Action:     "bill_cancelled",
		Entity:     "bill",
		EntityID:   &bill.ID,
	})

	httpresp.OK(c, bill)
}

// --------- patient side ---------

func (h *BillingHandler) ListMine(c *gin.Context) {
	var bills []models.Bill
	if err := h.db.
		Preload("Items").
		Where("patient_id = ?", currentUserID(c)).
		Order("created_at desc").
		Find(&bills).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bills)
}

// Pay creates a checkout preference for an unpaid bill and hands the
// redirect URL back. The payment row keeps our reference so the gateway
// callback can be reconciled later.
func (h *BillingHandler) Pay(c *gin.Context) {
	if h.gateway == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "payments_disabled", "Online payment is not configured.")
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	patientID := currentUserID(c)

	var bill models.Bill
	if err := h.db.Preload("Patient").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&bill).Error; err != nil {
		httperr.NotFound(c, "bill_not_found", "Bill not found.")
		return
	}

	if bill.Status != models.BillUnpaid {
		writeError(c, httperr.ErrBusiness("bill_not_payable"))
		return
	}

	reference := uuid.NewString()

	checkout, err := h.gateway.CreateCheckout(c.Request.Context(), payments.CheckoutInput{
		Reference:   reference,
		Title:       "Hospital bill #" + c.Param("id"),
		AmountPaise: bill.TotalPaise,
		PayerEmail:  bill.Patient.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	payment := models.Payment{
		BillID:       bill.ID,
		Reference:    reference,
		PreferenceID: checkout.PreferenceID,
		CheckoutURL:  checkout.URL,
		AmountPaise:  bill.TotalPaise,
		Status:       models.PaymentCreated,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"payment":      payment,
		"checkout_url": checkout.URL,
	})
}

// --------- reconciliation ---------

type ConfirmPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
	Approved  bool   `json:"approved"`
}

// ConfirmPayment settles a pending payment by its reference. In
// production this is driven by the gateway's notification; the endpoint
// also lets an admin settle cash payments by hand.
func (h *BillingHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var payment models.Payment
	if err := h.db.Where("reference = ?", req.Reference).First(&payment).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Payment not found.")
		return
	}

	if payment.Status != models.PaymentCreated {
		writeError(c, httperr.ErrBusiness("invalid_state"))
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if !req.Approved {
			payment.Status = models.PaymentRejected
			return tx.Save(&payment).Error
		}

		payment.Status = models.PaymentApproved
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&models.Bill{}).
			Where("id = ?", payment.BillID).
			Updates(map[string]any{
				"status":  models.BillPaid,
				"paid_at": now,
			}).Error
	})
	if err != nil {
		writeError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &userID,
		Action:     "payment_settled",
		Entity:     "payment",
		EntityID:   &payment.ID,
		Metadata:   map[string]any{"approved": req.Approved},
	})

	httpresp.OK(c, payment)
}
