package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeffleon2/draftea-checkout-service/internal/database"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-checkout-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
forms:
  - name: default
    max_installments: 12
    free_installments: 1
    interest_rate: "1.66"
    payment_methods: [boleto, credit_card]
items:
  - slug: payment-item
    name: Payment Item
    price: 9999
    form: default
    upsell: upsell-item
  - slug: upsell-item
    name: Upsell Item
    price: 4999
    form: default
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeed(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	seed, err := database.LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)
	require.NoError(t, database.Seed(ctx, db, seed))

	item, err := posgrest.NewItemRepository(db).GetBySlug(ctx, "payment-item")
	require.NoError(t, err)
	assert.Equal(t, int64(9999), item.Price)
	require.NotNil(t, item.DefaultConfig)
	assert.Equal(t, "default", item.DefaultConfig.Name)
	assert.Equal(t, "1.66", item.DefaultConfig.InterestRate.String())
	assert.True(t, item.DefaultConfig.AcceptsMethod(models.MethodCreditCard))
	require.NotNil(t, item.Upsell)
	assert.Equal(t, "upsell-item", item.Upsell.Slug)
}

func TestSeed_Twice(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	seed, err := database.LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)
	require.NoError(t, database.Seed(ctx, db, seed))

	seed.Items[0].Price = 12999
	require.NoError(t, database.Seed(ctx, db, seed))

	var forms, items int64
	require.NoError(t, db.Model(&models.FormConfig{}).Count(&forms).Error)
	require.NoError(t, db.Model(&models.ItemConfig{}).Count(&items).Error)
	assert.Equal(t, int64(1), forms)
	assert.Equal(t, int64(2), items)

	item, err := posgrest.NewItemRepository(db).GetBySlug(ctx, "payment-item")
	require.NoError(t, err)
	assert.Equal(t, int64(12999), item.Price)
}

func TestSeed_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown form": `
items:
  - slug: lonely
    form: missing
`,
		"unknown upsell": `
forms:
  - name: default
    interest_rate: "0"
    max_installments: 1
items:
  - slug: item
    form: default
    upsell: ghost
`,
		"unknown method": `
forms:
  - name: default
    interest_rate: "0"
    max_installments: 1
    payment_methods: [pix]
`,
		"bad rate": `
forms:
  - name: default
    interest_rate: lots
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			db := testutil.NewDB(t)

			seed, err := database.LoadSeed(writeSeed(t, content))
			require.NoError(t, err)

			assert.Error(t, database.Seed(context.Background(), db, seed))

			var items int64
			require.NoError(t, db.Model(&models.ItemConfig{}).Count(&items).Error)
			assert.Zero(t, items)
		})
	}
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := database.LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}
