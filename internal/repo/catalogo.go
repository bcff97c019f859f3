package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"louvor/internal/model"
)

// CatalogoRepo covers the flat natural-key entities (artista, categoria,
// funcao, tonalidade, tipo de evento). They share exactly the same queries;
// only the row type differs.
type CatalogoRepo[T any] struct {
	db *gorm.DB
}

func NewArtistaRepo(db *gorm.DB) *CatalogoRepo[model.Artista] {
	return &CatalogoRepo[model.Artista]{db: db}
}

func NewCategoriaRepo(db *gorm.DB) *CatalogoRepo[model.Categoria] {
	return &CatalogoRepo[model.Categoria]{db: db}
}

func NewFuncaoRepo(db *gorm.DB) *CatalogoRepo[model.Funcao] {
	return &CatalogoRepo[model.Funcao]{db: db}
}

func NewTonalidadeRepo(db *gorm.DB) *CatalogoRepo[model.Tonalidade] {
	return &CatalogoRepo[model.Tonalidade]{db: db}
}

func NewTipoEventoRepo(db *gorm.DB) *CatalogoRepo[model.TipoEvento] {
	return &CatalogoRepo[model.TipoEvento]{db: db}
}

func (r *CatalogoRepo[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).Order("nome asc").Find(&rows).Error
	return rows, err
}

func (r *CatalogoRepo[T]) FindByID(ctx context.Context, tx *gorm.DB, id string) (*T, error) {
	var row T
	err := conn(r.db, tx).WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CatalogoRepo[T]) FindByNome(ctx context.Context, tx *gorm.DB, nome string) (*T, error) {
	var row T
	err := conn(r.db, tx).WithContext(ctx).Where("nome = ?", nome).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// CountByIDs backs the batch existence check for id lists: one count query
// against the deduplicated list instead of one lookup per id.
func (r *CatalogoRepo[T]) CountByIDs(ctx context.Context, tx *gorm.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := conn(r.db, tx).WithContext(ctx).
		Model(new(T)).
		Where("id IN ?", ids).
		Count(&n).Error
	return n, err
}

func (r *CatalogoRepo[T]) Create(ctx context.Context, tx *gorm.DB, row *T) error {
	return conn(r.db, tx).WithContext(ctx).Create(row).Error
}

func (r *CatalogoRepo[T]) UpdateNome(ctx context.Context, tx *gorm.DB, id, nome string) error {
	return conn(r.db, tx).WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Update("nome", nome).Error
}

func (r *CatalogoRepo[T]) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}
