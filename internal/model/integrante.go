package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Integrante is a ministry member. SenhaHash never leaves the repo layer;
// reads return IntegrantePublic, which has no hash field at all.
type Integrante struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Nome      string  `gorm:"not null"`
	Documento string  `gorm:"uniqueIndex;not null"`
	Email     string  `gorm:"not null"`
	SenhaHash string  `gorm:"not null"`
	Telefone  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Integrante) TableName() string { return "integrantes" }

func (i *Integrante) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
