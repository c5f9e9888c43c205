package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	"github.com/CarePulseLabs/clinic-scheduler/internal/cache"
	"github.com/CarePulseLabs/clinic-scheduler/internal/domain/availability"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/httpresp"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
)

// ======================================================
// AVAILABILITY HANDLER
// ======================================================
//
// The weekly editor lives in the browser; the server persists whole
// weeks. Every mutation snapshots the previous persisted state to redis
// first, which is what backs the undo endpoint for a short window.

type AvailabilityHandler struct {
	db    *gorm.DB
	store *cache.AvailabilityStore
	audit *audit.Dispatcher
}

func NewAvailabilityHandler(
	db *gorm.DB,
	store *cache.AvailabilityStore,
	audit *audit.Dispatcher,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:    db,
		store: store,
		audit: audit,
	}
}

// --------- read side ---------

func (h *AvailabilityHandler) loadPersisted(ctx context.Context, doctorID uint) ([]availability.DayAvailability, error) {
	if days, ok := h.store.GetWeek(ctx, doctorID); ok {
		return days, nil
	}

	var rows []models.AvailabilityDay
	if err := h.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	days := make([]availability.DayAvailability, 0, len(rows))
	for _, row := range rows {
		slots := availability.DecodeSlots(row.Slots)
		encoded := make([]string, 0, len(slots))
		for _, s := range slots {
			encoded = append(encoded, s.String())
		}
		days = append(days, availability.DayAvailability{Day: row.Day, Slots: encoded})
	}

	h.store.SetWeek(ctx, doctorID, days)
	return days, nil
}

type weekView struct {
	// The persisted contract shape: only days with at least one slot.
	Availability []availability.DayAvailability `json:"availability"`

	// All seven days expanded, for the editor grid.
	Week    []dayView `json:"week"`
	Presets []string  `json:"presets"`
}

type dayView struct {
	Day   string              `json:"day"`
	Slots []availability.Slot `json:"slots"`
}

func fullWeekView(week *availability.Week) weekView {
	days := make([]dayView, 0, len(availability.AllDays))
	for _, d := range availability.AllDays {
		slots := week.Slots(d)
		if slots == nil {
			slots = []availability.Slot{}
		}
		days = append(days, dayView{Day: d.Title(), Slots: slots})
	}
	return weekView{
		Availability: week.Persisted(),
		Week:         days,
		Presets:      availability.PresetNames(),
	}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	doctorID := currentUserID(c)

	persisted, err := h.loadPersisted(c.Request.Context(), doctorID)
	if err != nil {
		writeError(c, err)
		return
	}

	week, err := availability.LoadWeek(persisted)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, fullWeekView(week))
}

func (h *AvailabilityHandler) Presets(c *gin.Context) {
	httpresp.List(c, availability.PresetNames())
}

// --------- write side ---------

// save replaces the doctor's persisted week and refreshes both redis
// entries: the old state becomes the undo snapshot, the new state the
// cached week. keepSnapshot suppresses the snapshot write (used by undo
// itself, so undoing twice does not ping-pong).
func (h *AvailabilityHandler) save(
	c *gin.Context,
	doctorID uint,
	week *availability.Week,
	previous []availability.DayAvailability,
	keepSnapshot bool,
	action string,
) {
	ctx := c.Request.Context()
	next := week.Persisted()

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctorID).
			Delete(&models.AvailabilityDay{}).Error; err != nil {
			return err
		}

		for _, entry := range next {
			day, err := availability.ParseDay(entry.Day)
			if err != nil {
				return err
			}
			row := models.AvailabilityDay{
				DoctorID: doctorID,
				Day:      string(day),
				Slots:    availability.EncodeSlots(week.Slots(day)),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if !keepSnapshot {
		h.store.PutSnapshot(ctx, doctorID, previous)
	}
	h.store.SetWeek(ctx, doctorID, next)
	week.MarkSaved()

	h.audit.Dispatch(audit.Event{
		HospitalID: currentHospitalID(c),
		UserID:     &doctorID,
		Action:     action,
		Entity:     "availability",
		EntityID:   &doctorID,
	})

	httpresp.OK(c, fullWeekView(week))
}

type SaveWeekRequest struct {
	Availability []availability.DayAvailability `json:"availability" binding:"required"`
}

// Put is the replace-all save: the editor sends the whole week and the
// previous rows are dropped.
func (h *AvailabilityHandler) Put(c *gin.Context) {
	var req SaveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	doctorID := currentUserID(c)

	previous, err := h.loadPersisted(c.Request.Context(), doctorID)
	if err != nil {
		writeError(c, err)
		return
	}

	week, err := availability.LoadWeek(req.Availability)
	if err != nil {
		writeError(c, err)
		return
	}

	h.save(c, doctorID, week, previous, false, "availability_saved")
}

type ApplyPresetRequest struct {
	Preset string   `json:"preset" binding:"required"`
	Days   []string `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) ApplyPreset(c *gin.Context) {
	var req ApplyPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	days := make([]availability.Day, 0, len(req.Days))
	for _, raw := range req.Days {
		day, err := availability.ParseDay(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		days = append(days, day)
	}

	doctorID := currentUserID(c)

	previous, err := h.loadPersisted(c.Request.Context(), doctorID)
	if err != nil {
		writeError(c, err)
		return
	}

	week, err := availability.LoadWeek(previous)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := week.ApplyPreset(req.Preset, days); err != nil {
		writeError(c, err)
		return
	}

	h.save(c, doctorID, week, previous, false, "availability_preset_applied")
}

type CopyWeekdaysRequest struct {
	Source string `json:"source" binding:"required"`
}

func (h *AvailabilityHandler) CopyToWeekdays(c *gin.Context) {
	var req CopyWeekdaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	source, err := availability.ParseDay(req.Source)
	if err != nil {
		writeError(c, err)
		return
	}

	doctorID := currentUserID(c)

	previous, err := h.loadPersisted(c.Request.Context(), doctorID)
	if err != nil {
		writeError(c, err)
		return
	}

	week, err := availability.LoadWeek(previous)
	if err != nil {
		writeError(c, err)
		return
	}

	week.CopyToWeekdays(source)

	h.save(c, doctorID, week, previous, false, "availability_copied_to_weekdays")
}

type ClearAllRequest struct {
	Confirm bool `json:"confirm"`
}

// ClearAll wipes the whole week. The explicit confirm flag stands in for
// the editor's confirmation dialog; without it nothing happens.
func (h *AvailabilityHandler) ClearAll(c *gin.Context) {
	var req ClearAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !req.Confirm {
		httperr.BadRequest(c, "confirmation_required", "Clearing all availability must be confirmed.")
		return
	}

	doctorID := currentUserID(c)

	previous, err := h.loadPersisted(c.Request.Context(), doctorID)
	if err != nil {
		writeError(c, err)
		return
	}

	week, err := availability.LoadWeek(previous)
	if err != nil {
		writeError(c, err)
		return
	}

	week.ClearAll()

	h.save(c, doctorID, week, previous, false, "availability_cleared")
}

// Undo restores the snapshot taken before the last save. The snapshot
// expires a few minutes after the save; past that the endpoint refuses.
func (h *AvailabilityHandler) Undo(c *gin.Context) {
	doctorID := currentUserID(c)

	snapshot, ok := h.store.GetSnapshot(c.Request.Context(), doctorID)
	if !ok {
		writeError(c, httperr.ErrBusiness("nothing_to_undo"))
		return
	}

	week, err := availability.LoadWeek(snapshot)
	if err != nil {
		writeError(c, err)
		return
	}

	h.save(c, doctorID, week, nil, true, "availability_undone")
}
