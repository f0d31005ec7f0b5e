package handlers

import (
	"errors"
	"net/http"

	"github.com/lumenshop/beacon/internal/app/service/automation"
	"github.com/lumenshop/beacon/internal/app/service/events"
	"github.com/lumenshop/beacon/pkg/response"
	"github.com/lumenshop/beacon/pkg/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary      List rules
// @Description  Returns every automation rule for the merchant, including paused ones and ephemeral campaign rules.
// @Tags         Admin
// @Produce      json
// @Param        merchant_id query string true "Merchant ID"
// @Success      200  {object}  handlers.RespListRules
// @Router       /api/v1/admin/rules [get]
func ApiListRules(auto *automation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantID := c.Query("merchant_id")
		if merchantID == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "missing merchant_id"))
			return
		}
		rules, err := auto.ListRules(c.Request.Context(), merchantID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(rules))
	}
}

type ToggleRuleRequest struct {
	MerchantID string           `json:"merchant_id" binding:"required"`
	RuleID     string           `json:"rule_id" binding:"required"`
	Status     types.RuleStatus `json:"status" binding:"required"`
}

// @Summary      Toggle rule
// @Description  Sets a rule's status to active or paused. Paused rules are skipped during event evaluation; jobs already queued by the rule still run.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ToggleRuleRequest true "Rule status change"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/rules/toggle [post]
func ApiToggleRule(auto *automation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleRuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.Status != types.RuleStatusActive && req.Status != types.RuleStatusPaused {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "status must be active or paused"))
			return
		}
		if err := auto.SetRuleStatus(c.Request.Context(), req.MerchantID, req.RuleID, req.Status); err != nil {
			if errors.Is(err, automation.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// RegisterAdminRoutes mounts the admin surface: campaigns, immediate push,
// job control, rules.
func RegisterAdminRoutes(r gin.IRouter, auto *automation.Service, ev *events.Service, log *zap.SugaredLogger) {
	r.POST("/campaigns", ApiCreateCampaign(auto))
	r.POST("/push", ApiSendPush(auto, ev, log))
	r.POST("/jobs/process", ApiProcessJobs(auto))
	r.POST("/jobs/list", ApiListJobs(auto))
	r.POST("/jobs/cancel", ApiCancelJob(auto))
	r.GET("/rules", ApiListRules(auto))
	r.POST("/rules/toggle", ApiToggleRule(auto))
}
