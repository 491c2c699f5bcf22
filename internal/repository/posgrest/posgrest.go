package posgrest

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides standard CRUD operations for any entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetBy retrieves entities matching a specific field value.
// The key parameter is the column name, and value is the value to match.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(map[string]interface{}{key: value}).Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update writes every column of entity, zero values included, to the row
// identified by ID. created_at is left untouched.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Select("*").Omit("created_at").Updates(entity).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

// Migrate creates or updates the checkout tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.FormConfig{},
		&models.ItemConfig{},
		&models.Payment{},
		&models.PaymentNotification{},
	)
}
