package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Distance  int            `gorm:"not null"`
	Stroke    string         `gorm:"type:varchar(32);not null"`
	Course    string         `gorm:"type:varchar(3);not null"`
	Gender    string         `gorm:"type:varchar(16)"`
	Relay     bool           `gorm:"not null;default:false"`
	SortOrder int            `gorm:"not null;default:0;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}
