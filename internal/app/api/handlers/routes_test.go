package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	apiV1 := r.Group("/api/v1")
	RegisterEventRoutes(apiV1, nil)
	RegisterMerchantRoutes(apiV1, nil, nil)
	RegisterWebhookRoutes(apiV1.Group("/webhooks"), nil, nil, nil, nil)
	RegisterAdminRoutes(apiV1.Group("/admin"), nil, nil, nil)
	RegisterHealthRoutes(r)

	routes := r.Routes()
	contains := func(target string) bool {
		for _, rt := range routes {
			if rt.Method+" "+rt.Path == target {
				return true
			}
		}
		return false
	}

	require.True(t, contains("POST /api/v1/events"))
	require.True(t, contains("POST /api/v1/merchants/setup"))
	require.True(t, contains("POST /api/v1/push/tokens"))
	require.True(t, contains("POST /api/v1/webhooks/orders/create"))
	require.True(t, contains("POST /api/v1/webhooks/subscription"))
	require.True(t, contains("POST /api/v1/admin/campaigns"))
	require.True(t, contains("POST /api/v1/admin/push"))
	require.True(t, contains("POST /api/v1/admin/jobs/process"))
	require.True(t, contains("POST /api/v1/admin/jobs/list"))
	require.True(t, contains("POST /api/v1/admin/jobs/cancel"))
	require.True(t, contains("GET /api/v1/admin/rules"))
	require.True(t, contains("POST /api/v1/admin/rules/toggle"))
	require.True(t, contains("GET /healthz"))
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHealthRoutes(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}
