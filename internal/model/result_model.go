package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Result struct {
	Id             uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AthleteId      uuid.UUID                `gorm:"type:uuid;not null;index"`
	MeetId         uuid.UUID                `gorm:"type:uuid;not null;index"`
	EventId        uuid.UUID                `gorm:"type:uuid;not null;index"`
	TeamId         uuid.UUID                `gorm:"type:uuid;not null;index"`
	SeasonId       uuid.UUID                `gorm:"type:uuid;not null;index"`
	TimeHundredths int                      `gorm:"not null;index"`
	Place          int                      `gorm:"not null;default:0"`
	Splits         datatypes.JSONSlice[int] `gorm:"type:jsonb"`
	Disqualified   bool                     `gorm:"not null;default:false"`
	CreatedAt      time.Time                `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt           `gorm:"index"`

	Athlete Athlete `gorm:"foreignKey:AthleteId;constraint:OnDelete:RESTRICT"`
	Meet    Meet    `gorm:"foreignKey:MeetId;constraint:OnDelete:RESTRICT"`
	Event   Event   `gorm:"foreignKey:EventId;constraint:OnDelete:RESTRICT"`
}

func (Result) TableName() string {
	return "results"
}
