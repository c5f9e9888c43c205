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

type InventoryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewInventoryHandler(db *gorm.DB, audit *audit.Dispatcher) *InventoryHandler {
	return &InventoryHandler{db: db, audit: audit}
}

type InventoryItemRequest struct {
	MedicineName string `json:"medicine_name" binding:"required"`
	GenericName  string `json:"generic_name"`
	Manufacturer string `json:"manufacturer"`

	StockQuantity     int `json:"stock_quantity"`
	LowStockThreshold int `json:"low_stock_threshold"`

	UnitPricePaise int64  `json:"unit_price_paise"`
	ExpiryDate     string `json:"expiry_date"` // YYYY-MM-DD, optional
}

func (r *InventoryItemRequest) expiry() (*time.Time, error) {
	if r.ExpiryDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", r.ExpiryDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.StockQuantity < 0 || req.UnitPricePaise < 0 {
		httperr.BadRequest(c, "invalid_quantity", "Stock and price cannot be negative.")
		return
	}

	expiry, err := req.expiry()
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected expiry_date=YYYY-MM-DD.")
		return
	}

	item := models.InventoryItem{
		HospitalID:        currentHospitalID(c),
		MedicineName:      req.MedicineName,
		GenericName:       req.GenericName,
		Manufacturer:      req.Manufacturer,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		UnitPricePaise:    req.UnitPricePaise,
		ExpiryDate:        expiry,
	}
	if item.LowStockThreshold <= 0 {
		item.LowStockThreshold = 10
	}

	if err := h.db.Create(&item).Error; err != nil {
		writeError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: item.HospitalID,
		UserID:     &userID,
		Action:     "inventory_item_created",
		Entity:     "inventory_item",
		EntityID:   &item.ID,
	})

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) List(c *gin.Context) {
	q := h.db.Where("hospital_id = ?", currentHospitalID(c))

	if name := c.Query("q"); name != "" {
		q = q.Where("medicine_name ILIKE ?", "%"+name+"%")
	}

	var items []models.InventoryItem
	if err := q.Order("medicine_name asc").Find(&items).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, items)
}

// LowStock lists items at or below their own reorder threshold.
func (h *InventoryHandler) LowStock(c *gin.Context) {
	var items []models.InventoryItem
	if err := h.db.
		Where("hospital_id = ?", currentHospitalID(c)).
		Where("stock_quantity <= low_stock_threshold").
		Order("stock_quantity asc").
		Find(&items).Error; err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.StockQuantity < 0 || req.UnitPricePaise < 0 {
		httperr.BadRequest(c, "invalid_quantity", "Stock and price cannot be negative.")
		return
	}

	expiry, err := req.expiry()
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected expiry_date=YYYY-MM-DD.")
		return
	}

	var item models.InventoryItem
	if err := h.db.
		Where("id = ? AND hospital_id = ?", id, currentHospitalID(c)).
		First(&item).Error; err != nil {
		httperr.NotFound(c, "inventory_item_not_found", "Inventory item not found.")
		return
	}

	item.MedicineName = req.MedicineName
	item.GenericName = req.GenericName
	item.Manufacturer = req.Manufacturer
	item.StockQuantity = req.StockQuantity
	item.UnitPricePaise = req.UnitPricePaise
	item.ExpiryDate = expiry
	if req.LowStockThreshold > 0 {
		item.LowStockThreshold = req.LowStockThreshold
	}

	if err := h.db.Save(&item).Error; err != nil {
		writeError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: item.HospitalID,
		UserID:     &userID,
		Action:     "inventory_item_updated",
		Entity:     "inventory_item",
		EntityID:   &item.ID,
	})

	httpresp.OK(c, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND hospital_id = ?", id, currentHospitalID(c)).
		Delete(&models.InventoryItem{})
	if res.Error != nil {
		writeError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "inventory_item_not_found", "Inventory item not found.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &userID,
		Action:     "inventory_item_deleted",
		Entity:     "inventory_item",
		EntityID:   &id,
	})

	c.Status(http.StatusNoContent)
}
