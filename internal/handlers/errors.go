package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CarePulseLabs/clinic-scheduler/internal/httperr"
	"github.com/CarePulseLabs/clinic-scheduler/internal/logger"
	"github.com/CarePulseLabs/clinic-scheduler/internal/middleware"
)

// writeError maps domain errors onto HTTP statuses. Anything that is not
// a known business code is logged and surfaced as a 500.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		logger.Get().Error("unhandled request error", zap.Error(err))
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}

	switch be.Code {
	case "invalid_date",
		"invalid_day",
		"invalid_slot_field",
		"slot_index_out_of_range",
		"unknown_preset",
		"unsupported_image",
		"too_soon":
		httperr.BadRequest(c, be.Code, msg)

	case "invalid_state",
		"slot_taken",
		"slot_not_offered",
		"cancellation_window_closed",
		"insufficient_stock",
		"bill_not_payable",
		"nothing_to_undo":
		httperr.Conflict(c, be.Code, msg)

	case "appointment_not_found",
		"doctor_not_found",
		"prescription_not_found",
		"bill_not_found",
		"inventory_item_not_found",
		"document_not_found":
		httperr.NotFound(c, be.Code, msg)

	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "The "+name+" parameter must be a positive integer.")
		return 0, false
	}
	return uint(v), true
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func currentHospitalID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextHospitalID)
	id, _ := v.(uint)
	return id
}
