package posgrest_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-checkout-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_GetBySlug_PreloadsConfigAndUpsell(t *testing.T) {
	db := testutil.NewDB(t)
	checkout := testutil.SeedCheckout(t, db)
	repo := posgrest.NewItemRepository(db)

	item, err := repo.GetBySlug(context.Background(), checkout.Item.Slug)

	require.NoError(t, err)
	require.NotNil(t, item.DefaultConfig)
	assert.Equal(t, 12, item.DefaultConfig.MaxInstallments)
	assert.Equal(t, "1.66", item.DefaultConfig.InterestRate.StringFixed(2))
	require.NotNil(t, item.Upsell)
	assert.Equal(t, "upsell-item", item.Upsell.Slug)
}

func TestItemRepository_GetBySlug_NotFound(t *testing.T) {
	db := testutil.NewDB(t)
	repo := posgrest.NewItemRepository(db)

	item, err := repo.GetBySlug(context.Background(), "missing")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestItemRepository_GetBySlugs(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCheckout(t, db)
	repo := posgrest.NewItemRepository(db)

	items, err := repo.GetBySlugs(context.Background(), []string{"payment-item", "upsell-item", "unknown"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = repo.GetBySlugs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPaymentRepository_CreateAndGetByTransactionID(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	checkout := testutil.SeedCheckout(t, db)
	repo := posgrest.NewPaymentRepository(db)

	payment := testutil.CapturedTransaction(checkout.Item).ToEntity([]models.ItemConfig{*checkout.Item}, nil)
	require.NoError(t, repo.Create(ctx, payment))
	assert.NotEmpty(t, payment.ID)

	stored, err := repo.GetByTransactionID(ctx, testutil.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, stored.ID)
	assert.Nil(t, stored.CardID)
	assert.Nil(t, stored.CardLastDigits)
	require.NotNil(t, stored.BoletoURL)
	assert.Equal(t, testutil.BoletoURL, *stored.BoletoURL)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, checkout.Item.ID, stored.Items[0].ID)
	require.Len(t, stored.Notifications, 1)
	assert.Equal(t, models.StatusWaitingPayment, stored.Notifications[0].Status)

	var forms int64
	require.NoError(t, db.Model(&models.FormConfig{}).Count(&forms).Error)
	assert.Equal(t, int64(1), forms)
}

func TestPaymentRepository_AddNotification_KeepsOrder(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	checkout := testutil.SeedCheckout(t, db)
	repo := posgrest.NewPaymentRepository(db)

	payment := testutil.CapturedTransaction(checkout.Item).ToEntity([]models.ItemConfig{*checkout.Item}, nil)
	require.NoError(t, repo.Create(ctx, payment))

	require.NoError(t, repo.AddNotification(ctx, &models.PaymentNotification{
		PaymentID: payment.ID,
		Status:    models.StatusPaid,
		CreatedAt: time.Now().UTC().Add(time.Minute),
	}))

	stored, err := repo.GetByTransactionID(ctx, testutil.TransactionID)
	require.NoError(t, err)
	require.Len(t, stored.Notifications, 2)
	assert.Equal(t, models.StatusWaitingPayment, stored.Notifications[0].Status)
	assert.Equal(t, models.StatusPaid, stored.LatestNotification().Status)
}

func TestPaymentRepository_GetByTransactionID_NotFound(t *testing.T) {
	db := testutil.NewDB(t)
	repo := posgrest.NewPaymentRepository(db)

	_, err := repo.GetByTransactionID(context.Background(), "404")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepository_GenericCRUD(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := posgrest.New[models.FormConfig](db)

	form := testutil.NewFormConfig()
	require.NoError(t, repo.Create(ctx, form))

	found, err := repo.GetBy(ctx, "name", "default")
	require.NoError(t, err)
	require.Len(t, *found, 1)
	assert.Equal(t, form.ID, (*found)[0].ID)

	form.MaxInstallments = 6
	require.NoError(t, repo.Update(ctx, form, form.ID))

	found, err = repo.GetBy(ctx, "id", form.ID)
	require.NoError(t, err)
	require.Len(t, *found, 1)
	assert.Equal(t, 6, (*found)[0].MaxInstallments)

	missing, err := repo.GetBy(ctx, "name", "unknown")
	require.NoError(t, err)
	assert.Empty(t, *missing)
}

func TestRepository_UpdateWritesZeroValues(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := posgrest.NewItemRepository(db)

	item := testutil.SeedCheckout(t, db).Item
	require.NotNil(t, item.UpsellID)

	stored, err := repo.GetBy(ctx, "slug", item.Slug)
	require.NoError(t, err)
	require.Len(t, *stored, 1)

	updated := (*stored)[0]
	createdAt := updated.CreatedAt
	updated.Tangible = true
	require.NoError(t, repo.Update(ctx, &updated, updated.ID))

	updated.Tangible = false
	updated.UpsellID = nil
	require.NoError(t, repo.Update(ctx, &updated, updated.ID))

	reloaded, err := repo.GetBySlug(ctx, item.Slug)
	require.NoError(t, err)
	assert.False(t, reloaded.Tangible)
	assert.Nil(t, reloaded.UpsellID)
	assert.Equal(t, createdAt.Unix(), reloaded.CreatedAt.Unix())
}
