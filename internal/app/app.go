package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-service/config"
	"github.com/jeffleon2/draftea-checkout-service/internal/cache"
	"github.com/jeffleon2/draftea-checkout-service/internal/gateway"
	"github.com/jeffleon2/draftea-checkout-service/internal/handlers"
	"github.com/jeffleon2/draftea-checkout-service/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-service/internal/publisher"
	"github.com/jeffleon2/draftea-checkout-service/internal/render"
	"github.com/jeffleon2/draftea-checkout-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-checkout-service/internal/service"
	"github.com/jeffleon2/draftea-checkout-service/internal/subscriber"
	"github.com/jeffleon2/draftea-checkout-service/internal/templates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	redis     *cache.RedisLocker
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := posgrest.Migrate(db); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	locker, err := a.newLocker()
	if err != nil {
		return err
	}

	renderer, err := render.New(templates.HTML(), cfg.APP.TemplatesDir)
	if err != nil {
		return err
	}

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	pagarme := gateway.NewPagarmeClient(cfg.Pagarme.BaseURL, cfg.Pagarme.APIKey, cfg.Pagarme.Timeout)
	paymentRepo := posgrest.NewPaymentRepository(db)
	itemRepo := posgrest.NewItemRepository(db)

	captureService := service.NewCaptureService(pagarme, paymentRepo, itemRepo, a.publisher, locker)
	notificationService := service.NewNotificationService(paymentRepo, a.publisher)

	captureHandler := handlers.NewCaptureHandler(captureService, renderer)
	postbackHandler := handlers.NewPostbackHandler(pagarme, a.publisher)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	a.Router = gin.Default()
	a.Router.SetHTMLTemplate(renderer.Template())
	a.RegisterRoutes(captureHandler, postbackHandler)

	a.initSubscribers(notificationHandler)
	return nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests and
// stops the Kafka clients.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Checkout service listening on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
	}
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	a.close()
	return err
}

func (a *App) newLocker() (service.Locker, error) {
	if a.config.Redis.ADDR == "" {
		logrus.Info("REDIS_ADDR not set, capture locks are local to this process")
		return cache.NewLocalLocker(), nil
	}

	a.redis = cache.NewRedisLocker(a.config.Redis.ADDR, a.config.Redis.PASSWORD, a.config.Redis.LockTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.redis.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return a.redis, nil
}

func (a *App) initSubscribers(notificationHandler *handlers.NotificationHandler) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.CheckoutConsumerGroup

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, groupID, a.publisher, a.config.Kafka.GetRetryConfig())

	a.consumer.Listen(context.Background(), func(ctx context.Context, topic string, value []byte) error {
		log.Printf("📩 Received message → topic=%s value=%s\n", topic, string(value))
		return notificationHandler.HandleEvents(ctx, topic, value)
	})
}

func (a *App) close() {
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			logrus.Errorf("Error closing consumer: %s", err.Error())
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Error closing publisher: %s", err.Error())
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logrus.Errorf("Error closing redis: %s", err.Error())
		}
	}
}
