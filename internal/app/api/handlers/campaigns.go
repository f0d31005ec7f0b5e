package handlers

import (
	"errors"
	"net/http"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/internal/app/service/billing"
	"github.com/lumenshop/beacon/internal/app/service/events"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/response"
	"github.com/lumenshop/beacon/pkg/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateCampaignResponse struct {
	JobsCreated int `json:"jobs_created"`
}

// @Summary      Create scheduled campaign
// @Description  Creates a scheduled push campaign: one rule plus one queued job per audience member, all due at scheduled_for. Consumes a single scheduled-push quota entry regardless of audience size.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body automation.CreateCampaignRequest true "Campaign definition"
// @Success      200  {object}  handlers.RespCreateCampaign
// @Router       /api/v1/admin/campaigns [post]
func ApiCreateCampaign(auto *automation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req automation.CreateCampaignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.MerchantID == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "missing merchant_id"))
			return
		}

		created, err := auto.CreateScheduledCampaign(c.Request.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, automation.ErrValidation):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			case errors.Is(err, automation.ErrFeatureDisabled):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeFeatureDisabled, err.Error()))
			case errors.Is(err, billing.ErrQuotaExceeded):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeQuotaExceeded, err.Error()))
			default:
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			}
			return
		}
		c.JSON(http.StatusOK, response.OKT(CreateCampaignResponse{JobsCreated: created}))
	}
}

// @Summary      Send push now
// @Description  Sends a one-off push to the audience immediately, bypassing the job queue. Charges one monthly push quota entry regardless of audience size and records a push_requested event.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body automation.SendPushRequest true "Push to send"
// @Success      200  {object}  handlers.RespSendPush
// @Router       /api/v1/admin/push [post]
func ApiSendPush(auto *automation.Service, ev *events.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req automation.SendPushRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.MerchantID == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "missing merchant_id"))
			return
		}

		summary, err := auto.SendImmediatePush(c.Request.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, automation.ErrValidation):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			case errors.Is(err, billing.ErrQuotaExceeded):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeQuotaExceeded, err.Error()))
			default:
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			}
			return
		}

		// The push already went out; a failed event append is logged,
		// not surfaced.
		payload := map[string]any{
			"title":     req.Title,
			"body":      req.Body,
			"audience":  string(req.Audience),
			"immediate": true,
			"attempted": summary.Attempted,
			"delivered": summary.Delivered,
		}
		if _, err := ev.Record(c.Request.Context(), req.MerchantID, types.EventPushRequested, payload, nil); err != nil {
			logctx.FromGin(c, log).Errorw("push event record failed", "merchant_id", req.MerchantID, "err", err)
		}

		c.JSON(http.StatusOK, response.OKT(summary))
	}
}
