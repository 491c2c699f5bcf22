package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/service"
	"github.com/sirupsen/logrus"
)

// UserIDHeader carries the id of the logged in buyer, when there is one.
const UserIDHeader = "X-User-Id"

type CaptureServiceIn interface {
	Capture(ctx context.Context, slug, token string, userID *string) (*models.CaptureResult, error)
	FindItem(ctx context.Context, slug string) (*models.ItemConfig, error)
	FindPayment(ctx context.Context, transactionID string) (*models.Payment, error)
}

// TemplateResolver picks the first defined page among names.
type TemplateResolver interface {
	Resolve(names ...string) (string, error)
}

type CaptureHandler struct {
	Service CaptureServiceIn
	Pages   TemplateResolver
}

func NewCaptureHandler(s CaptureServiceIn, pages TemplateResolver) *CaptureHandler {
	return &CaptureHandler{Service: s, Pages: pages}
}

// GET /pagarme/capture/:slug/:token
func (h *CaptureHandler) Capture(c *gin.Context) {
	slug, token := c.Param("slug"), c.Param("token")

	var userID *string
	if id := c.GetHeader(UserIDHeader); id != "" {
		userID = &id
	}

	result, err := h.Service.Capture(c.Request.Context(), slug, token, userID)
	if err != nil {
		h.abort(c, err)
		return
	}

	var status models.PaymentStatus
	if result.Notification != nil {
		status = result.Notification.Status
	}

	page, err := h.Pages.Resolve(confirmationPages(status, slug)...)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.HTML(http.StatusOK, page, gin.H{
		"item":         result.Item,
		"upsell":       result.Item.Upsell,
		"payment":      result.Payment,
		"notification": result.Notification,
	})
}

// GET /pagarme/one-click/:slug
func (h *CaptureHandler) OneClick(c *gin.Context) {
	slug := c.Param("slug")

	item, err := h.Service.FindItem(c.Request.Context(), slug)
	if err != nil {
		h.abort(c, err)
		return
	}

	var options []models.InstallmentOption
	if item.DefaultConfig != nil {
		options = item.DefaultConfig.InstallmentOptions(item.Price)
	}

	page, err := h.Pages.Resolve(pageNames("one_click", slug)...)
	if err != nil {
		h.abort(c, err)
		return
	}

	c.HTML(http.StatusOK, page, gin.H{
		"item":    item,
		"options": options,
	})
}

// GET /pagarme/payments/:token
func (h *CaptureHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.FindPayment(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *CaptureHandler) abort(c *gin.Context, err error) {
	var captureErr *service.CaptureError
	switch {
	case errors.As(err, &captureErr):
		logrus.Error(captureErr.Message)
		c.JSON(http.StatusBadRequest, gin.H{"error": captureErr.Message})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("Error handling %s: %s", c.Request.URL.Path, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func confirmationPages(status models.PaymentStatus, slug string) []string {
	switch status {
	case models.StatusWaitingPayment:
		return pageNames("show_boleto_data", slug)
	case models.StatusRefused:
		return pageNames("refused", slug)
	default:
		return pageNames("thanks", slug)
	}
}

// pageNames lists the slug page before the shared one. Hyphens in the slug
// become underscores, so upsell-item looks for thanks_upsell_item.html.
func pageNames(page, slug string) []string {
	return []string{
		fmt.Sprintf("%s_%s.html", page, strings.ReplaceAll(slug, "-", "_")),
		page + ".html",
	}
}
