package database

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile lists the form configs and items the checkout sells.
type SeedFile struct {
	Forms []FormSeed `yaml:"forms"`
	Items []ItemSeed `yaml:"items"`
}

type FormSeed struct {
	Name             string   `yaml:"name"`
	MaxInstallments  int      `yaml:"max_installments"`
	FreeInstallments int      `yaml:"free_installments"`
	InterestRate     string   `yaml:"interest_rate"`
	PaymentMethods   []string `yaml:"payment_methods"`
}

// ItemSeed references its form by name and its upsell by slug.
type ItemSeed struct {
	Slug     string `yaml:"slug"`
	Name     string `yaml:"name"`
	Price    int64  `yaml:"price"`
	Tangible bool   `yaml:"tangible"`
	Form     string `yaml:"form"`
	Upsell   string `yaml:"upsell"`
}

func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("error parsing seed file %s: %w", path, err)
	}
	return &seed, nil
}

// Seed creates or updates every form and item of the file. Forms are matched
// by name and items by slug, so seeding twice leaves a single copy of each.
func Seed(ctx context.Context, db *gorm.DB, seed *SeedFile) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		formRepo := posgrest.New[models.FormConfig](tx)
		itemRepo := posgrest.NewItemRepository(tx)

		forms := make(map[string]string, len(seed.Forms))
		for _, f := range seed.Forms {
			id, err := seedForm(ctx, formRepo, f)
			if err != nil {
				return err
			}
			forms[f.Name] = id
		}

		items := make(map[string]*models.ItemConfig, len(seed.Items))
		for _, i := range seed.Items {
			formID, ok := forms[i.Form]
			if !ok {
				return fmt.Errorf("item %s: unknown form %q", i.Slug, i.Form)
			}

			item, err := seedItem(ctx, itemRepo, i, formID)
			if err != nil {
				return err
			}
			items[i.Slug] = item
		}

		for _, i := range seed.Items {
			item := items[i.Slug]
			item.UpsellID = nil
			if i.Upsell != "" {
				upsell, ok := items[i.Upsell]
				if !ok {
					return fmt.Errorf("item %s: unknown upsell %q", i.Slug, i.Upsell)
				}
				item.UpsellID = &upsell.ID
			}
			if err := itemRepo.Update(ctx, item, item.ID); err != nil {
				return fmt.Errorf("error linking upsell of %s: %w", i.Slug, err)
			}
		}

		logrus.Infof("Seeded %d forms and %d items", len(seed.Forms), len(seed.Items))
		return nil
	})
}

func seedForm(ctx context.Context, repo formStore, f FormSeed) (string, error) {
	rate, err := decimal.NewFromString(f.InterestRate)
	if err != nil {
		return "", fmt.Errorf("form %s: invalid interest rate %q: %w", f.Name, f.InterestRate, err)
	}
	for _, m := range f.PaymentMethods {
		if !models.PaymentMethod(m).IsValid() {
			return "", fmt.Errorf("form %s: unknown payment method %q", f.Name, m)
		}
	}
	if f.FreeInstallments > f.MaxInstallments {
		return "", fmt.Errorf("form %s: free installments above max installments", f.Name)
	}

	found, err := repo.GetBy(ctx, "name", f.Name)
	if err != nil {
		return "", fmt.Errorf("error looking up form %s: %w", f.Name, err)
	}

	form := models.FormConfig{Name: f.Name}
	if len(*found) > 0 {
		form = (*found)[0]
	}
	form.MaxInstallments = f.MaxInstallments
	form.FreeInstallments = f.FreeInstallments
	form.InterestRate = rate
	form.PaymentMethods = strings.Join(f.PaymentMethods, ",")

	if form.ID == "" {
		err = repo.Create(ctx, &form)
	} else {
		err = repo.Update(ctx, &form, form.ID)
	}
	if err != nil {
		return "", fmt.Errorf("error seeding form %s: %w", f.Name, err)
	}
	return form.ID, nil
}

func seedItem(ctx context.Context, repo itemStore, i ItemSeed, formID string) (*models.ItemConfig, error) {
	found, err := repo.GetBy(ctx, "slug", i.Slug)
	if err != nil {
		return nil, fmt.Errorf("error looking up item %s: %w", i.Slug, err)
	}

	item := models.ItemConfig{Slug: i.Slug}
	if len(*found) > 0 {
		item = (*found)[0]
	}
	item.Name = i.Name
	item.Price = i.Price
	item.Tangible = i.Tangible
	item.DefaultConfigID = formID

	if item.ID == "" {
		err = repo.Create(ctx, &item)
	} else {
		err = repo.Update(ctx, &item, item.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("error seeding item %s: %w", i.Slug, err)
	}
	return &item, nil
}

type formStore interface {
	Create(ctx context.Context, form *models.FormConfig) error
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.FormConfig, error)
	Update(ctx context.Context, form *models.FormConfig, id string) error
}

type itemStore interface {
	Create(ctx context.Context, item *models.ItemConfig) error
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.ItemConfig, error)
	Update(ctx context.Context, item *models.ItemConfig, id string) error
}
