package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

type PrescriptionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPrescriptionHandler(db *gorm.DB, audit *audit.Dispatcher) *PrescriptionHandler {
	return &PrescriptionHandler{db: db, audit: audit}
}

// --------- doctor side ---------

type PrescriptionMedicineRequest struct {
	MedicineName string `json:"medicine_name" binding:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
	Quantity     int    `json:"quantity"`

	PurchaseFromHospital bool  `json:"purchase_from_hospital"`
	InventoryItemID      *uint `json:"inventory_item_id"`
}

type CreatePrescriptionRequest struct {
	AppointmentID uint                          `json:"appointment_id" binding:"required"`
	Diagnosis     string                        `json:"diagnosis"`
	Notes         string                        `json:"notes"`
	Medicines     []PrescriptionMedicineRequest `json:"medicines" binding:"required,min=1"`
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doctorID := currentUserID(c)

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND doctor_id = ?", req.AppointmentID, doctorID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	medicines := make([]models.PrescriptionMedicine, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		qty := m.Quantity
		if qty <= 0 {
			qty = 1
		}
		medicines = append(medicines, models.PrescriptionMedicine{
			MedicineName:         m.MedicineName,
			Dosage:               m.Dosage,
			Frequency:            m.Frequency,
			Duration:             m.Duration,
			Instructions:         m.Instructions,
			Quantity:             qty,
			PurchaseFromHospital: m.PurchaseFromHospital,
			InventoryItemID:      m.InventoryItemID,
		})
	}

	p := models.Prescription{
		AppointmentID: ap.ID,
		PatientID:     ap.PatientID,
		DoctorID:      doctorID,
		Diagnosis:     req.Diagnosis,
		Notes:         req.Notes,
		Status:        models.PrescriptionNew,
		Medicines:     medicines,
		IssuedAt:      time.Now(),
	}

	if err := h.db.Create(&p).Error; err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &doctorID,
		Action:     "prescription_issued",
		Entity:     "prescription",
		EntityID:   &p.ID,
	})

	c.JSON(http.StatusCreated, p)
}

// --------- patient side ---------

func (h *PrescriptionHandler) ListMine(c *gin.Context) {
	var out []models.Prescription
	if err := h.db.
		Preload("Medicines").
		Where("patient_id = ?", currentUserID(c)).
		Order("issued_at desc").
		Find(&out).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// --------- pharmacy side ---------

func (h *PrescriptionHandler) ListPending(c *gin.Context) {
	var out []models.Prescription
	if err := h.db.
		Preload("Medicines").
		Preload("Patient").
		Joins("JOIN users ON users.id = prescriptions.patient_id").
		Where("users.hospital_id = ?", currentHospitalID(c)).
		Where("prescriptions.status IN ?", []string{models.PrescriptionNew, models.PrescriptionPartial}).
		Order("prescriptions.issued_at asc").
		Find(&out).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// Fulfil dispenses a prescription's hospital-stock medicines. Stock is
// decremented inside one transaction with a conditional UPDATE, so two
// pharmacists racing on the same item cannot drive it negative. Medicines
// not linked to inventory (bought outside) are skipped; when any linked
// line cannot be covered the whole fulfilment aborts.
func (h *PrescriptionHandler) Fulfil(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	pharmacistID := currentUserID(c)

	var p models.Prescription
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Medicines").First(&p, id).Error; err != nil {
			return httperr.ErrBusiness("prescription_not_found")
		}

		if p.Status != models.PrescriptionNew && p.Status != models.PrescriptionPartial {
			return httperr.ErrBusiness("invalid_state")
		}

		for _, m := range p.Medicines {
			if !m.PurchaseFromHospital || m.InventoryItemID == nil {
				continue
			}

			res := tx.Model(&models.InventoryItem{}).
				Where("id = ? AND stock_quantity >= ?", *m.InventoryItemID, m.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", m.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusinessMsg("insufficient_stock", "Not enough stock for "+m.MedicineName+".")
			}
		}

		p.Status = models.PrescriptionFilled
		return tx.Save(&p).Error
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &pharmacistID,
		Action:     "prescription_fulfilled",
		Entity:     "prescription",
		EntityID:   &p.ID,
	})

	httpresp.OK(c, p)
}
