package handlers

import (
	"net/http"

	"github.com/lumenshop/beacon/internal/app/service/events"
	"github.com/lumenshop/beacon/pkg/response"
	"github.com/lumenshop/beacon/pkg/types"

	"github.com/gin-gonic/gin"
)

type RecordEventRequest struct {
	MerchantID string          `json:"merchant_id" binding:"required"`
	Type       types.EventKind `json:"type" binding:"required"`
	CustomerID *string         `json:"customer_id"`
	Payload    map[string]any  `json:"payload"`
}

type RecordEventResponse struct {
	EventID string `json:"event_id"`
}

// @Summary      Record event
// @Description  Appends one commerce event and queues async rule evaluation. Delivery of any matched jobs happens later via the job processor.
// @Tags         Events
// @Accept       json
// @Produce      json
// @Param        request body handlers.RecordEventRequest true "Event to record"
// @Success      200  {object}  handlers.RespRecordEvent
// @Router       /api/v1/events [post]
func ApiRecordEvent(ev *events.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		event, err := ev.Record(c.Request.Context(), req.MerchantID, req.Type, req.Payload, req.CustomerID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(RecordEventResponse{EventID: event.ID}))
	}
}

func RegisterEventRoutes(r gin.IRouter, ev *events.Service) {
	r.POST("/events", ApiRecordEvent(ev))
}
