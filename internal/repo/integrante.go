package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"louvor/internal/model"
)

// IntegranteRepo reads scan straight into IntegrantePublic, so the password
// hash cannot cross the data-access boundary on any read path.
type IntegranteRepo struct {
	db *gorm.DB
}

func NewIntegranteRepo(db *gorm.DB) *IntegranteRepo {
	return &IntegranteRepo{db: db}
}

const integranteCols = "id, nome, documento, email, telefone"

func (r *IntegranteRepo) List(ctx context.Context) ([]model.IntegrantePublic, error) {
	var rows []model.IntegrantePublic
	err := r.db.WithContext(ctx).
		Model(&model.Integrante{}).
		Select(integranteCols).
		Order("nome asc").
		Scan(&rows).Error
	return rows, err
}

func (r *IntegranteRepo) FindByID(ctx context.Context, tx *gorm.DB, id string) (*model.IntegrantePublic, error) {
	var row model.IntegrantePublic
	err := conn(r.db, tx).WithContext(ctx).
		Model(&model.Integrante{}).
		Select(integranteCols).
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *IntegranteRepo) FindByDocumento(ctx context.Context, tx *gorm.DB, documento string) (*model.IntegrantePublic, error) {
	var row model.IntegrantePublic
	err := conn(r.db, tx).WithContext(ctx).
		Model(&model.Integrante{}).
		Select(integranteCols).
		Where("documento = ?", documento).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *IntegranteRepo) Create(ctx context.Context, tx *gorm.DB, i *model.Integrante) error {
	return conn(r.db, tx).WithContext(ctx).Create(i).Error
}

func (r *IntegranteRepo) Updates(ctx context.Context, tx *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Model(&model.Integrante{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *IntegranteRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", id).Delete(&model.Integrante{}).Error
}

// -- funcao links

func (r *IntegranteRepo) ListFuncoes(ctx context.Context, integranteID string) ([]model.Funcao, error) {
	var rows []model.Funcao
	err := r.db.WithContext(ctx).
		Joins("JOIN integrantes_funcoes inf ON inf.funcao_id = funcoes.id").
		Where("inf.integrante_id = ?", integranteID).
		Order("funcoes.nome asc").
		Find(&rows).Error
	return rows, err
}

func (r *IntegranteRepo) FindFuncaoLink(ctx context.Context, tx *gorm.DB, integranteID, funcaoID string) (*model.IntegranteFuncao, error) {
	var link model.IntegranteFuncao
	err := conn(r.db, tx).WithContext(ctx).
		Where("integrante_id = ? AND funcao_id = ?", integranteID, funcaoID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *IntegranteRepo) AddFuncaoLink(ctx context.Context, tx *gorm.DB, integranteID, funcaoID string) error {
	link := model.IntegranteFuncao{IntegranteID: integranteID, FuncaoID: funcaoID}
	return conn(r.db, tx).WithContext(ctx).Create(&link).Error
}

func (r *IntegranteRepo) DeleteFuncaoLink(ctx context.Context, tx *gorm.DB, linkID string) error {
	return conn(r.db, tx).WithContext(ctx).Where("id = ?", linkID).Delete(&model.IntegranteFuncao{}).Error
}
