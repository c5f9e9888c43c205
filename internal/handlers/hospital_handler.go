package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/timezone"
	"github.com/CarePulseLabs/clinic-scheduler/internal/validators"
)

// HospitalHandler covers the admin-facing hospital settings plus staff
// provisioning (doctors and pharmacists are never self-registered).
type HospitalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewHospitalHandler(db *gorm.DB, audit *audit.Dispatcher) *HospitalHandler {
	return &HospitalHandler{db: db, audit: audit}
}

func (h *HospitalHandler) GetSettings(c *gin.Context) {
	var hospital models.Hospital
	if err := h.db.First(&hospital, currentHospitalID(c)).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital no longer exists.")
		return
	}

	httpresp.OK(c, hospital)
}

type UpdateSettingsRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	BookingFeePaise   *int64  `json:"booking_fee_paise"`
}

func (h *HospitalHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var hospital models.Hospital
	if err := h.db.First(&hospital, currentHospitalID(c)).Error; err != nil {
		httperr.NotFound(c, "hospital_not_found", "Hospital no longer exists.")
		return
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone name.")
			return
		}
		hospital.Timezone = *req.Timezone
	}
	if req.Name != nil {
		hospital.Name = *req.Name
	}
	if req.Phone != nil {
		hospital.Phone = *req.Phone
	}
	if req.Address != nil {
		hospital.Address = *req.Address
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Minimum advance cannot be negative.")
			return
		}
		hospital.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}
	if req.BookingFeePaise != nil {
		if *req.BookingFeePaise < 0 {
			httperr.BadRequest(c, "invalid_booking_fee", "Booking fee cannot be negative.")
			return
		}
		hospital.BookingFeePaise = *req.BookingFeePaise
	}

	if err := h.db.Save(&hospital).Error; err != nil {
		writeError(c, err)
		return
	}

	adminID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: hospital.ID,
		UserID:     &adminID,
		Action:     "hospital_settings_updated",
		Entity:     "hospital",
		EntityID:   &hospital.ID,
	})

	httpresp.OK(c, hospital)
}

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
}

func (h *HospitalHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	switch req.Role {
	case models.RoleDoctor, models.RolePharmacist, models.RoleAdmin:
	default:
		httperr.BadRequest(c, "invalid_role", "Role must be doctor, pharmacist or admin.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email address domain does not appear to be valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, err)
		return
	}

	user := models.User{
		HospitalID:   currentHospitalID(c),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
		KycStatus:    models.KycPending,
	}

	if err := h.db.Create(&user).Error; err != nil {
		writeError(c, err)
		return
	}

	adminID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: user.HospitalID,
		UserID:     &adminID,
		Action:     "staff_created",
		Entity:     "user",
		EntityID:   &user.ID,
		Metadata:   map[string]any{"role": user.Role},
	})

	c.JSON(http.StatusCreated, user)
}
