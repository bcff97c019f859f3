package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Join rows: two foreign keys plus a surrogate id, pair-unique.
// Existence and duplicate checks happen in the service layer before any
// insert; the unique index is the backstop for racing requests.

type MusicaCategoria struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	MusicaID    string `gorm:"type:uuid;not null;uniqueIndex:uq_musicas_categorias_pair"`
	CategoriaID string `gorm:"type:uuid;not null;uniqueIndex:uq_musicas_categorias_pair"`

	Musica    *Musica    `gorm:"foreignKey:MusicaID;constraint:OnDelete:CASCADE"`
	Categoria *Categoria `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}

func (MusicaCategoria) TableName() string { return "musicas_categorias" }

func (mc *MusicaCategoria) BeforeCreate(*gorm.DB) error {
	if mc.ID == "" {
		mc.ID = uuid.NewString()
	}
	return nil
}

type MusicaFuncao struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	MusicaID string `gorm:"type:uuid;not null;uniqueIndex:uq_musicas_funcoes_pair"`
	FuncaoID string `gorm:"type:uuid;not null;uniqueIndex:uq_musicas_funcoes_pair"`

	Musica *Musica `gorm:"foreignKey:MusicaID;constraint:OnDelete:CASCADE"`
	Funcao *Funcao `gorm:"foreignKey:FuncaoID;constraint:OnDelete:CASCADE"`
}

func (MusicaFuncao) TableName() string { return "musicas_funcoes" }

func (mf *MusicaFuncao) BeforeCreate(*gorm.DB) error {
	if mf.ID == "" {
		mf.ID = uuid.NewString()
	}
	return nil
}

type IntegranteFuncao struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	IntegranteID string `gorm:"type:uuid;not null;uniqueIndex:uq_integrantes_funcoes_pair"`
	FuncaoID     string `gorm:"type:uuid;not null;uniqueIndex:uq_integrantes_funcoes_pair"`

	Integrante *Integrante `gorm:"foreignKey:IntegranteID;constraint:OnDelete:CASCADE"`
	Funcao     *Funcao     `gorm:"foreignKey:FuncaoID;constraint:OnDelete:CASCADE"`
}

func (IntegranteFuncao) TableName() string { return "integrantes_funcoes" }

func (inf *IntegranteFuncao) BeforeCreate(*gorm.DB) error {
	if inf.ID == "" {
		inf.ID = uuid.NewString()
	}
	return nil
}

type EventoMusica struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	EventoID string `gorm:"type:uuid;not null;uniqueIndex:uq_eventos_musicas_pair"`
	MusicaID string `gorm:"type:uuid;not null;uniqueIndex:uq_eventos_musicas_pair"`

	Evento *Evento `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE"`
	Musica *Musica `gorm:"foreignKey:MusicaID;constraint:OnDelete:CASCADE"`
}

func (EventoMusica) TableName() string { return "eventos_musicas" }

func (em *EventoMusica) BeforeCreate(*gorm.DB) error {
	if em.ID == "" {
		em.ID = uuid.NewString()
	}
	return nil
}

type EventoIntegrante struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	EventoID     string `gorm:"type:uuid;not null;uniqueIndex:uq_eventos_integrantes_pair"`
	IntegranteID string `gorm:"type:uuid;not null;uniqueIndex:uq_eventos_integrantes_pair"`

	Evento     *Evento     `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE"`
	Integrante *Integrante `gorm:"foreignKey:IntegranteID;constraint:OnDelete:CASCADE"`
}

func (EventoIntegrante) TableName() string { return "eventos_integrantes" }

func (ei *EventoIntegrante) BeforeCreate(*gorm.DB) error {
	if ei.ID == "" {
		ei.ID = uuid.NewString()
	}
	return nil
}
