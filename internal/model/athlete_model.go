package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Athlete struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	TeamId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	SeasonId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	UsaSwimmingId string         `gorm:"type:varchar(32)"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Person Person `gorm:"foreignKey:PersonId;constraint:OnDelete:RESTRICT"`
	Team   Team   `gorm:"foreignKey:TeamId;constraint:OnDelete:RESTRICT"`
	Season Season `gorm:"foreignKey:SeasonId;constraint:OnDelete:RESTRICT"`
}

func (Athlete) TableName() string {
	return "athletes"
}
