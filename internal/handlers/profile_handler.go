package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/storage"
)

// ProfileHandler lets a doctor maintain the public card patients see
// when choosing who to book.
type ProfileHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewProfileHandler(db *gorm.DB, uploader *storage.Uploader) *ProfileHandler {
	return &ProfileHandler{db: db, uploader: uploader}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	var profile models.DoctorProfile
	if err := h.db.Where("doctor_id = ?", currentUserID(c)).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "No profile yet; create one with PUT.")
		return
	}

	httpresp.OK(c, profile)
}

type UpsertProfileRequest struct {
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio"`
	Qualifications  string `json:"qualifications"`
	ExperienceYears int    `json:"experience_years"`
	Location        string `json:"location"`

	ConsultationFeePaise int64 `json:"consultation_fee_paise"`
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if req.ConsultationFeePaise < 0 {
		httperr.BadRequest(c, "invalid_fee", "Consultation fee cannot be negative.")
		return
	}

	doctorID := currentUserID(c)

	var profile models.DoctorProfile
	err := h.db.Where("doctor_id = ?", doctorID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		writeError(c, err)
		return
	}

	profile.DoctorID = doctorID
	profile.Specialization = req.Specialization
	profile.Bio = req.Bio
	profile.Qualifications = req.Qualifications
	profile.ExperienceYears = req.ExperienceYears
	profile.Location = req.Location
	profile.ConsultationFeePaise = req.ConsultationFeePaise

	if err := h.db.Save(&profile).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, profile)
}

// UploadPhoto runs the profile photo through the same resize/re-encode
// pipeline as identity documents.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Expected a multipart field named photo.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Photos are capped at 8 MiB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		writeError(c, err)
		return
	}

	processed, err := storage.ProcessImage(raw)
	if err != nil {
		writeError(c, err)
		return
	}

	doctorID := currentUserID(c)
	key := "profiles/" + uuid.NewString() + ".webp"

	if err := h.uploader.Put(c.Request.Context(), key, "image/webp", processed); err != nil {
		writeError(c, err)
		return
	}

	var profile models.DoctorProfile
	err = h.db.Where("doctor_id = ?", doctorID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		writeError(c, err)
		return
	}

	profile.DoctorID = doctorID
	profile.PhotoKey = key

	if err := h.db.Save(&profile).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, profile)
}
