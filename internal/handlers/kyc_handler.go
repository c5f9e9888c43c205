package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/storage"
)

const maxUploadBytes = 8 << 20

// KycHandler accepts identity documents, normalizes them through the
// image pipeline and parks them for admin review. A user becomes
// "verified" once an admin approves any one document.
type KycHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewKycHandler(db *gorm.DB, uploader *storage.Uploader, audit *audit.Dispatcher) *KycHandler {
	return &KycHandler{db: db, uploader: uploader, audit: audit}
}

// --------- upload ---------

func (h *KycHandler) Upload(c *gin.Context) {
	kind := c.PostForm("kind")
	if kind == "" {
		kind = "other"
	}

	file, err := c.FormFile("document")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Expected a multipart field named document.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Documents are capped at 8 MiB.")
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

	userID := currentUserID(c)
	key := "kyc/" + uuid.NewString() + ".webp"

	if err := h.uploader.Put(c.Request.Context(), key, "image/webp", processed); err != nil {
		writeError(c, err)
		return
	}

	doc := models.KycDocument{
		UserID:      userID,
		Kind:        kind,
		ObjectKey:   key,
		ContentType: "image/webp",
		SizeBytes:   int64(len(processed)),
		Status:      models.KycPending,
	}

	if err := h.db.Create(&doc).Error; err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &userID,
		Action:     "kyc_document_uploaded",
		Entity:     "kyc_document",
		EntityID:   &doc.ID,
		Metadata:   map[string]any{"kind": kind},
	})

	c.JSON(http.StatusCreated, doc)
}

func (h *KycHandler) ListMine(c *gin.Context) {
	var docs []models.KycDocument
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at desc").
		Find(&docs).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, docs)
}

// --------- admin review ---------

func (h *KycHandler) ListPending(c *gin.Context) {
	var docs []models.KycDocument
	if err := h.db.
		Preload("User").
		Joins("JOIN users ON users.id = kyc_documents.user_id").
		Where("users.hospital_id = ?", currentHospitalID(c)).
		Where("kyc_documents.status = ?", models.KycPending).
		Order("kyc_documents.created_at asc").
		Find(&docs).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, docs)
}

type ReviewKycRequest struct {
	Approve bool   `json:"approve"`
	Remark  string `json:"remark"`
}

func (h *KycHandler) Review(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req ReviewKycRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var doc models.KycDocument
	if err := h.db.First(&doc, id).Error; err != nil {
		httperr.NotFound(c, "document_not_found", "Document not found.")
		return
	}

	if doc.Status != models.KycPending {
		writeError(c, httperr.ErrBusiness("invalid_state"))
		return
	}

	reviewerID := currentUserID(c)
	now := time.Now()

	status := models.KycRejected
	if req.Approve {
		status = models.KycVerified
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		doc.Status = status
		doc.ReviewedBy = &reviewerID
		doc.ReviewedAt = &now
		doc.Remark = req.Remark

		if err := tx.Save(&doc).Error; err != nil {
			return err
		}

		if req.Approve {
			return tx.Model(&models.User{}).
				Where("id = ?", doc.UserID).
				UpdateColumn("kyc_status", models.KycVerified).Error
		}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &reviewerID,
		Action:     "kyc_document_reviewed",
		Entity:     "kyc_document",
		EntityID:   &doc.ID,
		Metadata:   map[string]any{"approved": req.Approve},
	})

	httpresp.OK(c, doc)
}
