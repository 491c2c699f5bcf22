package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	*repository[models.ItemConfig]
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{New[models.ItemConfig](db)}
}

// GetBySlug loads an item with its form config and upsell item.
func (r *ItemRepository) GetBySlug(ctx context.Context, slug string) (*models.ItemConfig, error) {
	var item models.ItemConfig
	err := r.db.WithContext(ctx).
		Preload("DefaultConfig").
		Preload("Upsell").
		Where("slug = ?", slug).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *ItemRepository) GetBySlugs(ctx context.Context, slugs []string) ([]models.ItemConfig, error) {
	var items []models.ItemConfig
	if len(slugs) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
