package handlers

import (
	"errors"
	"net/http"

	"github.com/lumenshop/beacon/internal/app/service/billing"
	"github.com/lumenshop/beacon/internal/app/service/events"
	"github.com/lumenshop/beacon/internal/app/service/merchant"
	"github.com/lumenshop/beacon/pkg/logctx"
	"github.com/lumenshop/beacon/pkg/response"
	"github.com/lumenshop/beacon/pkg/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderCreatedWebhookRequest struct {
	Shop       string  `json:"shop" binding:"required"`
	OrderID    string  `json:"order_id" binding:"required"`
	CartID     *string `json:"cart_id"`
	CustomerID *string `json:"customer_id"`
	TotalPrice string  `json:"total_price"`
	Currency   string  `json:"currency"`
}

// @Summary      Order created webhook
// @Description  Records an order_created event for the shop. Any queued cart-recovery jobs matching the order's customer or cart are cancelled during evaluation.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        request body handlers.OrderCreatedWebhookRequest true "Order payload"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/webhooks/orders/create [post]
func ApiOrderCreatedWebhook(ev *events.Service, mch *merchant.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OrderCreatedWebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		m, err := mch.GetByShop(c.Request.Context(), req.Shop)
		if err != nil {
			if errors.Is(err, merchant.ErrMerchantNotFound) {
				// Unknown shop: acknowledge so the upstream does not retry forever.
				logctx.FromGin(c, log).Warnw("order webhook for unknown shop", "shop", req.Shop)
				c.JSON(http.StatusOK, response.OKT[any](nil))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		payload := map[string]any{
			"order_id":    req.OrderID,
			"total_price": req.TotalPrice,
			"currency":    req.Currency,
		}
		if req.CartID != nil {
			payload["cart_id"] = *req.CartID
		}
		if _, err := ev.Record(c.Request.Context(), m.ID, types.EventOrderCreated, payload, req.CustomerID); err != nil {
			logctx.FromGin(c, log).Errorw("order webhook record failed", "shop", req.Shop, "err", err)
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

type SubscriptionWebhookRequest struct {
	Shop           string                   `json:"shop" binding:"required"`
	SubscriptionID string                   `json:"subscription_id" binding:"required"`
	Plan           types.PlanTier           `json:"plan" binding:"required"`
	Status         types.SubscriptionStatus `json:"status" binding:"required"`
}

// @Summary      Subscription webhook
// @Description  Syncs the shop's subscription record and plan limits. Any status other than active downgrades the effective plan to Free.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        request body handlers.SubscriptionWebhookRequest true "Subscription payload"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/webhooks/subscription [post]
func ApiSubscriptionWebhook(bill *billing.Service, mch *merchant.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubscriptionWebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		m, err := mch.GetByShop(c.Request.Context(), req.Shop)
		if err != nil {
			if errors.Is(err, merchant.ErrMerchantNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		if err := bill.UpdateSubscription(c.Request.Context(), m.ID, req.SubscriptionID, req.Status, req.Plan); err != nil {
			logctx.FromGin(c, log).Errorw("subscription webhook failed", "shop", req.Shop, "err", err)
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterWebhookRoutes(r gin.IRouter, ev *events.Service, bill *billing.Service, mch *merchant.Service, log *zap.SugaredLogger) {
	r.POST("/orders/create", ApiOrderCreatedWebhook(ev, mch, log))
	r.POST("/subscription", ApiSubscriptionWebhook(bill, mch, log))
}
