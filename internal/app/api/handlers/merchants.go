package handlers

import (
	"errors"
	"net/http"

	"github.com/lumenshop/beacon/internal/app/service/merchant"
	"github.com/lumenshop/beacon/internal/app/service/push"
	"github.com/lumenshop/beacon/pkg/response"

	"github.com/gin-gonic/gin"
)

type SetupMerchantRequest struct {
	Shop string `json:"shop" binding:"required"`
	Name string `json:"name"`
}

// @Summary      Merchant setup
// @Description  Upserts the merchant for a shop and seeds its default cart-recovery rule and Free-tier limits. Safe to call on every install callback.
// @Tags         Merchant
// @Accept       json
// @Produce      json
// @Param        request body handlers.SetupMerchantRequest true "Shop to set up"
// @Success      200  {object}  handlers.RespMerchant
// @Router       /api/v1/merchants/setup [post]
func ApiSetupMerchant(mch *merchant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetupMerchantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		m, err := mch.Setup(c.Request.Context(), req.Shop, req.Name)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

type RegisterTokenRequest struct {
	MerchantID string  `json:"merchant_id" binding:"required"`
	Token      string  `json:"token" binding:"required"`
	CustomerID *string `json:"customer_id"`
}

// @Summary      Register push token
// @Description  Registers an Expo device token for the merchant, optionally linked to a customer. Re-registering updates the customer link.
// @Tags         Merchant
// @Accept       json
// @Produce      json
// @Param        request body handlers.RegisterTokenRequest true "Token registration"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/push/tokens [post]
func ApiRegisterToken(p *push.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		pt, err := p.RegisterToken(c.Request.Context(), req.MerchantID, req.Token, req.CustomerID)
		if err != nil {
			if errors.Is(err, push.ErrInvalidToken) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(pt))
	}
}

func RegisterMerchantRoutes(r gin.IRouter, mch *merchant.Service, p *push.Service) {
	r.POST("/merchants/setup", ApiSetupMerchant(mch))
	r.POST("/push/tokens", ApiRegisterToken(p))
}
