package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"louvor/internal/model"
)

type EventoRepo struct {
	db *gorm.DB
}

func NewEventoRepo(db *gorm.DB) *EventoRepo {
	return &EventoRepo{db: db}
}

func (r *EventoRepo) List(ctx context.Context) ([]model.Evento, error) {
	var rows []model.Evento
	err := r.db.WithContext(ctx).
		Preload("TipoEvento").
		Order("data asc").
		Find(&rows).Error
	return rows, err
}

func (r *EventoRepo) FindByID(ctx context.Context, tx *gorm.DB, id string) (*model.Evento, error) {
	var e model.Evento
	err := conn(r.db, tx).WithContext(ctx).
		Preload("TipoEvento").
		Where("id = ?", id).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventoRepo) Create(ctx context.Context, tx *gorm.DB, e *model.Evento) error {
	return conn(r.db, tx).WithContext(ctx).Create(e).Error
}

func (r *EventoRepo) Updates(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Model(&model.Evento{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *EventoRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&model.Evento{}).Error
}

// -- musica links

func (r *EventoRepo) ListMusicas(ctx context.Context, eventoID string) ([]model.Musica, error) {
	var rows []model.Musica
	err := r.db.WithContext(ctx).
		Joins("JOIN eventos_musicas em ON em.musica_id = musicas.id").
		Where("em.evento_id = ?", eventoID).
		Order("musicas.nome asc").
		Find(&rows).Error
	return rows, err
}

func (r *EventoRepo) FindMusicaLink(ctx context.Context, tx *gorm.DB, eventoID, musicaID string) (*model.EventoMusica, error) {
	var link model.EventoMusica
	err := conn(r.db, tx).WithContext(ctx).
		Where("evento_id = ? AND musica_id = ?", eventoID, musicaID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *EventoRepo) AddMusicaLink(ctx context.Context, tx *gorm.DB, eventoID, musicaID string) error {
	link := model.EventoMusica{EventoID: eventoID, MusicaID: musicaID}
	return conn(r.db, tx).WithContext(ctx).Create(&link).Error
}

func (r *EventoRepo) DeleteMusicaLink(ctx context.Context, tx *gorm.DB, linkID string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", linkID).Delete(&model.EventoMusica{}).Error
}

// -- integrante links

func (r *EventoRepo) ListIntegrantes(ctx context.Context, eventoID string) ([]model.IntegrantePublic, error) {
	var rows []model.IntegrantePublic
	err := r.db.WithContext(ctx).
		Model(&model.Integrante{}).
		Select("integrantes.id, integrantes.nome, integrantes.documento, integrantes.email, integrantes.telefone").
		Joins("JOIN eventos_integrantes ei ON ei.integrante_id = integrantes.id").
		Where("ei.evento_id = ?", eventoID).
		Order("integrantes.nome asc").
		Scan(&rows).Error
	return rows, err
}

func (r *EventoRepo) FindIntegranteLink(ctx context.Context, tx *gorm.DB, eventoID, integranteID string) (*model.EventoIntegrante, error) {
	var link model.EventoIntegrante
	err := conn(r.db, tx).WithContext(ctx).
		Where("evento_id = ? AND integrante_id = ?", eventoID, integranteID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *EventoRepo) AddIntegranteLink(ctx context.Context, tx *gorm.DB, eventoID, integranteID string) error {
	link := model.EventoIntegrante{EventoID: eventoID, IntegranteID: integranteID}
	return conn(r.db, tx).WithContext(ctx).Create(&link).Error
}

func (r *EventoRepo) DeleteIntegranteLink(ctx context.Context, tx *gorm.DB, linkID string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", linkID).Delete(&model.EventoIntegrante{}).Error
}
