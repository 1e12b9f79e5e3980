package model

import (
	"time"

	"gorm.io/datatypes"
)

// SiteConfig is one JSON settings blob addressed by key.
type SiteConfig struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"size:100;uniqueIndex;not null"`
	Value     datatypes.JSON `json:"value" gorm:"not null"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TableName keeps the table name used by existing deployments.
func (SiteConfig) TableName() string {
	return "site_config"
}
