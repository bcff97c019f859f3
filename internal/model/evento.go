package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Evento struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Data         time.Time `gorm:"not null;index"`
	TipoEventoID string    `gorm:"type:uuid;not null;index"`
	Descricao    string    `gorm:"type:text;not null"`

	TipoEvento *TipoEvento `gorm:"foreignKey:TipoEventoID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Evento) TableName() string { return "eventos" }

func (e *Evento) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
