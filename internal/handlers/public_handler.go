package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	usecase "github.com/CarePulseLabs/clinic-scheduler/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated booking funnel: find a
// hospital, browse its doctors, see which slots are still open.
type PublicHandler struct {
	db          *gorm.DB
	freeSlotsUC *usecase.GetFreeSlots
}

func NewPublicHandler(db *gorm.DB, freeSlotsUC *usecase.GetFreeSlots) *PublicHandler {
	return &PublicHandler{db: db, freeSlotsUC: freeSlotsUC}
}

func (h *PublicHandler) hospitalBySlug(c *gin.Context) (*models.Hospital, bool) {
	var hospital models.Hospital
	if err := h.db.Where("slug = ?", c.Param("slug")).First(&hospital).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital not found.")
		return nil, false
	}
	return &hospital, true
}

func (h *PublicHandler) GetHospital(c *gin.Context) {
	hospital, ok := h.hospitalBySlug(c)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{
		"id":                hospital.ID,
		"name":              hospital.Name,
		"slug":              hospital.Slug,
		"address":           hospital.Address,
		"phone":             hospital.Phone,
		"timezone":          hospital.Timezone,
		"booking_fee_paise": hospital.BookingFeePaise,
	})
}

type doctorCard struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	Qualifications  string `json:"qualifications"`
	ExperienceYears int    `json:"experience_years"`
	Location        string `json:"location"`
	PhotoKey        string `json:"photo_key"`

	ConsultationFeePaise int64 `json:"consultation_fee_paise"`
}

func (h *PublicHandler) ListDoctors(c *gin.Context) {
	hospital, ok := h.hospitalBySlug(c)
	if !ok {
		return
	}

	q := h.db.
		Table("users").
		Select(`users.id, users.name,
			doctor_profiles.specialization, doctor_profiles.qualifications,
			doctor_profiles.experience_years, doctor_profiles.location,
			doctor_profiles.photo_key, doctor_profiles.consultation_fee_paise`).
		Joins("LEFT JOIN doctor_profiles ON doctor_profiles.doctor_id = users.id").
		Where("users.hospital_id = ? AND users.role = ?", hospital.ID, models.RoleDoctor)

	if spec := c.Query("specialization"); spec != "" {
		q = q.Where("doctor_profiles.specialization ILIKE ?", "%"+spec+"%")
	}

	var cards []doctorCard
	if err := q.Order("users.name asc").Scan(&cards).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, cards)
}

func (h *PublicHandler) FreeSlots(c *gin.Context) {
	hospital, ok := h.hospitalBySlug(c)
	if !ok {
		return
	}

	doctorID, ok := paramUint(c, "doctorId")
	if !ok {
		return
	}

	date, err := parseDateInHospital(hospital, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	slots, err := h.freeSlotsUC.Execute(c.Request.Context(), hospital.ID, doctorID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}
