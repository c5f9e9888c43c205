package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	domain "github.com/CarePulseLabs/clinic-scheduler/internal/domain/appointment"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	usecase "github.com/CarePulseLabs/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// APPOINTMENT HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	bookUC        *usecase.BookAppointment
	cancelUC      *usecase.CancelAppointment
	completeUC    *usecase.CompleteAppointment
	eligibilityUC *usecase.GetCancellationEligibility
	freeSlotsUC   *usecase.GetFreeSlots

	listForPatientUC *usecase.ListAppointmentsForPatient
	listByDateUC     *usecase.ListAppointmentsByDate
	listByMonthUC    *usecase.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	bookUC *usecase.BookAppointment,
	cancelUC *usecase.CancelAppointment,
	completeUC *usecase.CompleteAppointment,
	eligibilityUC *usecase.GetCancellationEligibility,
	freeSlotsUC *usecase.GetFreeSlots,
	listForPatientUC *usecase.ListAppointmentsForPatient,
	listByDateUC *usecase.ListAppointmentsByDate,
	listByMonthUC *usecase.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:               db,
		audit:            audit,
		bookUC:           bookUC,
		cancelUC:         cancelUC,
		completeUC:       completeUC,
		eligibilityUC:    eligibilityUC,
		freeSlotsUC:      freeSlotsUC,
		listForPatientUC: listForPatientUC,
		listByDateUC:     listByDateUC,
		listByMonthUC:    listByMonthUC,
	}
}

// --------- patient side ---------

type BookRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Notes    string `json:"notes"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		HospitalID: currentHospitalID(c),
		PatientID:  currentUserID(c),
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	out, err := h.listForPatientUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// CancellationEligibility previews the evaluator's verdict without
// changing anything; the UI drives its Cancel button off this.
func (h *AppointmentHandler) CancellationEligibility(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	el, err := h.eligibilityUC.Execute(
		c.Request.Context(),
		currentHospitalID(c),
		currentUserID(c),
		id,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, el)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(
		c.Request.Context(),
		currentHospitalID(c),
		currentUserID(c),
		id,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// FreeSlots lists the open slots for one doctor on one date, for the
// booking screen.
func (h *AppointmentHandler) FreeSlots(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctorId")
	if !ok {
		return
	}

	var hospital models.Hospital
	if err := h.db.First(&hospital, currentHospitalID(c)).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital no longer exists.")
		return
	}

	date, err := parseDateInHospital(&hospital, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	slots, err := h.freeSlotsUC.Execute(
		c.Request.Context(),
		hospital.ID,
		doctorID,
		date,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// --------- doctor side ---------

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	var hospital models.Hospital
	if err := h.db.First(&hospital, currentHospitalID(c)).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital no longer exists.")
		return
	}

	date, err := parseDateInHospital(&hospital, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	out, err := h.listByDateUC.Execute(
		c.Request.Context(),
		currentUserID(c),
		hospital.ID,
		date,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

type monthQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.listByMonthUC.Execute(
		c.Request.Context(),
		currentUserID(c),
		currentHospitalID(c),
		q.Year,
		q.Month,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(
		c.Request.Context(),
		currentHospitalID(c),
		currentUserID(c),
		id,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Reject and MarkFollowUp are doctor-only status flips with no window
// logic attached, so they talk to the database directly.

func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.flipStatus(c, "appointment_rejected", domain.Reject)
}

func (h *AppointmentHandler) MarkFollowUp(c *gin.Context) {
	h.flipStatus(c, "appointment_follow_up", domain.MarkFollowUp)
}

func (h *AppointmentHandler) flipStatus(
	c *gin.Context,
	action string,
	flip func(*models.Appointment) error,
) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	doctorID := currentUserID(c)

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND doctor_id = ?", id, doctorID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if err := flip(&ap); err != nil {
		writeError(c, err)
		return
	}

	if err := h.db.Save(&ap).Error; err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &doctorID,
		Action:     action,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	httpresp.OK(c, ap)
}
