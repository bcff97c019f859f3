package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog entities: flat rows with a unique natural key on the name.

type Artista struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Nome string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Artista) TableName() string { return "artistas" }

func (a *Artista) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Categoria struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Nome string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Categoria) TableName() string { return "categorias" }

func (c *Categoria) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Funcao is an instrument or ministry function (vocals, drums, sound desk).
type Funcao struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Nome string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Funcao) TableName() string { return "funcoes" }

func (f *Funcao) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Tonalidade is a musical key, natural-keyed by its display string ("C", "Em").
type Tonalidade struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Nome string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tonalidade) TableName() string { return "tonalidades" }

func (t *Tonalidade) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type TipoEvento struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Nome string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TipoEvento) TableName() string { return "tipos_eventos" }

func (t *TipoEvento) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
