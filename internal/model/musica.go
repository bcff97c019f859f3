package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Musica struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Nome         string  `gorm:"not null;index"`
	TonalidadeID *string `gorm:"type:uuid;index"`

	Tonalidade *Tonalidade `gorm:"foreignKey:TonalidadeID;constraint:OnDelete:SET NULL"`
	Versoes    []Versao    `gorm:"foreignKey:MusicaID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Musica) TableName() string { return "musicas" }

func (m *Musica) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Versao is the per-artist arrangement of a song. The (artista, musica)
// pair is immutable once created; only the arrangement fields change.
type Versao struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	MusicaID  string `gorm:"type:uuid;not null;uniqueIndex:uq_versoes_artista_musica"`
	ArtistaID string `gorm:"type:uuid;not null;uniqueIndex:uq_versoes_artista_musica"`

	BPM        *int    `gorm:"column:bpm"`
	Cifras     *string `gorm:"type:text"`
	Letra      *string `gorm:"type:text"`
	LinkVersao *string

	Artista *Artista `gorm:"foreignKey:ArtistaID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Versao) TableName() string { return "versoes" }

func (v *Versao) BeforeCreate(*gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
