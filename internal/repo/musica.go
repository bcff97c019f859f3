package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"louvor/internal/model"
)

type MusicaRepo struct {
	db *gorm.DB
}

func NewMusicaRepo(db *gorm.DB) *MusicaRepo {
	return &MusicaRepo{db: db}
}

func (r *MusicaRepo) Create(ctx context.Context, tx *gorm.DB, m *model.Musica) error {
	return conn(r.db, tx).WithContext(ctx).Create(m).Error
}

func (r *MusicaRepo) FindByID(ctx context.Context, tx *gorm.DB, id string) (*model.Musica, error) {
	var m model.Musica
	err := conn(r.db, tx).WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAggregate loads the song with tonality and versions (with artist).
// Category and role link sets are separate queries; the service stitches
// the full aggregate together.
func (r *MusicaRepo) FindAggregate(ctx context.Context, tx *gorm.DB, id string) (*model.Musica, error) {
	var m model.Musica
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Tonalidade").
		Preload("Versoes.Artista").
		Where("id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MusicaRepo) List(ctx context.Context, offset, limit int) ([]model.Musica, error) {
	var rows []model.Musica
	err := r.db.WithContext(ctx).
		Preload("Tonalidade").
		Preload("Versoes.Artista").
		Order("nome asc").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *MusicaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Musica{}).Count(&n).Error
	return n, err
}

func (r *MusicaRepo) Updates(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Model(&model.Musica{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *MusicaRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&model.Musica{}).Error
}

// -- categoria links

func (r *MusicaRepo) ListCategorias(ctx context.Context, musicaID string) ([]model.Categoria, error) {
	var rows []model.Categoria
	err := r.db.WithContext(ctx).
		Joins("JOIN musicas_categorias mc ON mc.categoria_id = categorias.id").
		Where("mc.musica_id = ?", musicaID).
		Order("categorias.nome asc").
		Find(&rows).Error
	return rows, err
}

func (r *MusicaRepo) FindCategoriaLink(ctx context.Context, tx *gorm.DB, musicaID, categoriaID string) (*model.MusicaCategoria, error) {
	var link model.MusicaCategoria
	err := conn(r.db, tx).WithContext(ctx).
		Where("musica_id = ? AND categoria_id = ?", musicaID, categoriaID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *MusicaRepo) AddCategoriaLink(ctx context.Context, tx *gorm.DB, musicaID, categoriaID string) error {
	link := model.MusicaCategoria{MusicaID: musicaID, CategoriaID: categoriaID}
	return conn(r.db, tx).WithContext(ctx).Create(&link).Error
}

func (r *MusicaRepo) DeleteCategoriaLink(ctx context.Context, tx *gorm.DB, linkID string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", linkID).Delete(&model.MusicaCategoria{}).Error
}

// ReplaceCategoriaLinks makes ids the full link set: rows outside the list
// are deleted, missing pairs inserted.
func (r *MusicaRepo) ReplaceCategoriaLinks(ctx context.Context, tx *gorm.DB, musicaID string, ids []string) error {
	c := conn(r.db, tx).WithContext(ctx)
	if len(ids) == 0 {
		return c.Where("musica_id = ?", musicaID).Delete(&model.MusicaCategoria{}).Error
	}
	if err := c.Where("musica_id = ? AND categoria_id NOT IN ?", musicaID, ids).
		Delete(&model.MusicaCategoria{}).Error; err != nil {
		return err
	}
	var existing []model.MusicaCategoria
	if err := c.Where("musica_id = ?", musicaID).Find(&existing).Error; err != nil {
		return err
	}
	have := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		have[l.CategoriaID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; ok {
			continue
		}
		link := model.MusicaCategoria{MusicaID: musicaID, CategoriaID: id}
		if err := c.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// -- funcao links

func (r *MusicaRepo) ListFuncoes(ctx context.Context, musicaID string) ([]model.Funcao, error) {
	var rows []model.Funcao
	err := r.db.WithContext(ctx).
		Joins("JOIN musicas_funcoes mf ON mf.funcao_id = funcoes.id").
		Where("mf.musica_id = ?", musicaID).
		Order("funcoes.nome asc").
		Find(&rows).Error
	return rows, err
}

func (r *MusicaRepo) FindFuncaoLink(ctx context.Context, tx *gorm.DB, musicaID, funcaoID string) (*model.MusicaFuncao, error) {
	var link model.MusicaFuncao
	err := conn(r.db, tx).WithContext(ctx).
		Where("musica_id = ? AND funcao_id = ?", musicaID, funcaoID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *MusicaRepo) AddFuncaoLink(ctx context.Context, tx *gorm.DB, musicaID, funcaoID string) error {
	link := model.MusicaFuncao{MusicaID: musicaID, FuncaoID: funcaoID}
	return conn(r.db, tx).WithContext(ctx).Create(&link).Error
}

func (r *MusicaRepo) DeleteFuncaoLink(ctx context.Context, tx *gorm.DB, linkID string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", linkID).Delete(&model.MusicaFuncao{}).Error
}

func (r *MusicaRepo) ReplaceFuncaoLinks(ctx context.Context, tx *gorm.DB, musicaID string, ids []string) error {
	c := conn(r.db, tx).WithContext(ctx)
	if len(ids) == 0 {
		return c.Where("musica_id = ?", musicaID).Delete(&model.MusicaFuncao{}).Error
	}
	if err := c.Where("musica_id = ? AND funcao_id NOT IN ?", musicaID, ids).
		Delete(&model.MusicaFuncao{}).Error; err != nil {
		return err
	}
	var existing []model.MusicaFuncao
	if err := c.Where("musica_id = ?", musicaID).Find(&existing).Error; err != nil {
		return err
	}
	have := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		have[l.FuncaoID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; ok {
			continue
		}
		link := model.MusicaFuncao{MusicaID: musicaID, FuncaoID: id}
		if err := c.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
