package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Season struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TeamId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	StartDate time.Time      `gorm:"type:date;not null"`
	EndDate   *time.Time     `gorm:"type:date"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Team Team `gorm:"foreignKey:TeamId;constraint:OnDelete:RESTRICT"`
}

func (Season) TableName() string {
	return "seasons"
}
