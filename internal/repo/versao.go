package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"louvor/internal/model"
)

type VersaoRepo struct {
	db *gorm.DB
}

func NewVersaoRepo(db *gorm.DB) *VersaoRepo {
	return &VersaoRepo{db: db}
}

func (r *VersaoRepo) ListByMusica(ctx context.Context, musicaID string) ([]model.Versao, error) {
	var rows []model.Versao
	err := r.db.WithContext(ctx).
		Preload("Artista").
		Where("musica_id = ?", musicaID).
		Order("created_at asc").
		Find(&rows).Error
	return rows, err
}

func (r *VersaoRepo) FindByID(ctx context.Context, tx *gorm.DB, id string) (*model.Versao, error) {
	var v model.Versao
	err := conn(r.db, tx).WithContext(ctx).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByPair looks up the arrangement by its natural key.
func (r *VersaoRepo) FindByPair(ctx context.Context, tx *gorm.DB, artistaID, musicaID string) (*model.Versao, error) {
	var v model.Versao
	err := conn(r.db, tx).WithContext(ctx).
		Where("artista_id = ? AND musica_id = ?", artistaID, musicaID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VersaoRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Versao) error {
	return conn(r.db, tx).WithContext(ctx).Create(v).Error
}

// Updates touches only the arrangement fields; the (artista, musica) pair
// never appears in the fields map.
func (r *VersaoRepo) Updates(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Model(&model.Versao{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *VersaoRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&model.Versao{}).Error
}
