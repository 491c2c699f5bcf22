package handlers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/sirupsen/logrus"
)

const SignatureHeader = "X-Hub-Signature"

type SignatureVerifier interface {
	VerifySignature(body []byte, signature string) bool
}

type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// PostbackHandler accepts the gateway status postbacks and queues them. They
// are recorded by the NotificationHandler consuming the queue.
type PostbackHandler struct {
	Verifier  SignatureVerifier
	Publisher Publisher
}

func NewPostbackHandler(verifier SignatureVerifier, publisher Publisher) *PostbackHandler {
	return &PostbackHandler{Verifier: verifier, Publisher: publisher}
}

// POST /pagarme/notification
func (h *PostbackHandler) Notify(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.Verifier.VerifySignature(body, c.GetHeader(SignatureHeader)) {
		logrus.Warnf("Postback with invalid signature from %s", c.ClientIP())
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if object := form.Get("object"); object != "transaction" {
		logrus.Infof("Ignoring postback for object %q", object)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	event := models.PostbackReceivedEvent{
		TransactionID: form.Get("id"),
		CurrentStatus: models.PaymentStatus(form.Get("current_status")),
		OldStatus:     models.PaymentStatus(form.Get("old_status")),
		ReceivedAt:    time.Now().UTC(),
	}
	if event.TransactionID == "" || !event.CurrentStatus.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid postback"})
		return
	}

	if err := h.Publisher.Publish(c.Request.Context(), models.PostbackReceivedEventTopic, event); err != nil {
		logrus.Errorf("Error queueing postback of transaction %s: %s", event.TransactionID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
