package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(capture *handlers.CaptureHandler, postback *handlers.PostbackHandler) {
	app := a.Router.Group("/pagarme")
	app.GET("/capture/:slug/:token", capture.Capture)
	app.GET("/one-click/:slug", capture.OneClick)
	app.GET("/payments/:token", capture.GetPayment)
	app.POST("/notification", postback.Notify)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
