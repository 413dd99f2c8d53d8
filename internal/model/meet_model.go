package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meet struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SeasonId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	TeamId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Location  string         `gorm:"type:varchar(255)"`
	Course    string         `gorm:"type:varchar(3);not null"`
	StartDate time.Time      `gorm:"type:date;not null;index"`
	EndDate   *time.Time     `gorm:"type:date"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Season Season `gorm:"foreignKey:SeasonId;constraint:OnDelete:RESTRICT"`
	Team   Team   `gorm:"foreignKey:TeamId;constraint:OnDelete:RESTRICT"`
}

func (Meet) TableName() string {
	return "meets"
}
