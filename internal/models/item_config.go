package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemConfig is a sellable item. Its Slug is the item id sent to the gateway.
type ItemConfig struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	Name            string      `gorm:"not null" json:"name"`
	Slug            string      `gorm:"uniqueIndex;not null" json:"slug"`
	Price           int64       `gorm:"not null" json:"price"`
	Tangible        bool        `json:"tangible"`
	DefaultConfigID string      `gorm:"index;not null" json:"default_config_id"`
	DefaultConfig   *FormConfig `json:"default_config,omitempty"`
	UpsellID        *string     `gorm:"index" json:"upsell_id,omitempty"`
	Upsell          *ItemConfig `gorm:"foreignKey:UpsellID" json:"upsell,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (i *ItemConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}

	return
}
