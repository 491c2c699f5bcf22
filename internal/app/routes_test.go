package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-service/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := &App{Router: gin.New()}

	a.RegisterRoutes(&handlers.CaptureHandler{}, &handlers.PostbackHandler{})

	var routes []string
	for _, r := range a.Router.Routes() {
		routes = append(routes, r.Method+" "+r.Path)
	}
	assert.ElementsMatch(t, []string{
		"GET /pagarme/capture/:slug/:token",
		"GET /pagarme/one-click/:slug",
		"GET /pagarme/payments/:token",
		"POST /pagarme/notification",
		"GET /metrics",
	}, routes)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
