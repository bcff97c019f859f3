package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"louvor/internal/apperr"
	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/repo"
)

const (
	msgIntegranteIDObrigatorio   = "ID do integrante não enviado"
	msgIntegranteNaoEncontrado   = "Integrante não encontrado"
	msgIntegranteNomeObrigatorio = "Nome do integrante é obrigatório"
	msgDocumentoObrigatorio      = "Documento do integrante é obrigatório"
	msgEmailObrigatorio          = "E-mail do integrante é obrigatório"
	msgSenhaObrigatoria          = "Senha do integrante é obrigatória"
	msgDocumentoDuplicado        = "Já existe um integrante com esse documento"
	msgNenhumCampoParaAtualizar  = "Nenhum campo para atualizar"
)

type IntegranteService struct {
	integrantes *repo.IntegranteRepo
	funcoes     *repo.CatalogoRepo[model.Funcao]
	log         *logger.Logger

	vincFuncao vinculo
}

func NewIntegranteService(integrantes *repo.IntegranteRepo, funcoes *repo.CatalogoRepo[model.Funcao], log *logger.Logger) *IntegranteService {
	s := &IntegranteService{
		integrantes: integrantes,
		funcoes:     funcoes,
		log:         log.With("service", "integrantes"),
	}

	s.vincFuncao = vinculo{
		msgOwnerIDObrigatorio:   msgIntegranteIDObrigatorio,
		msgRelatedIDObrigatorio: msgFuncaoIDObrigatorio,
		msgOwnerNaoEncontrado:   msgIntegranteNaoEncontrado,
		msgRelatedNaoEncontrado: msgFuncaoNaoEncontrada,
		ownerExists: func(ctx context.Context, id string) (bool, error) {
			i, err := integrantes.FindByID(ctx, nil, id)
			return i != nil, err
		},
		relatedExists: func(ctx context.Context, id string) (bool, error) {
			f, err := funcoes.FindByID(ctx, nil, id)
			return f != nil, err
		},
		findLinkID: func(ctx context.Context, ownerID, relatedID string) (string, bool, error) {
			link, err := integrantes.FindFuncaoLink(ctx, nil, ownerID, relatedID)
			if err != nil || link == nil {
				return "", false, err
			}
			return link.ID, true, nil
		},
		insertLink: func(ctx context.Context, ownerID, relatedID string) error {
			return integrantes.AddFuncaoLink(ctx, nil, ownerID, relatedID)
		},
		deleteLink: func(ctx context.Context, linkID string) error {
			return integrantes.DeleteFuncaoLink(ctx, nil, linkID)
		},
	}

	return s
}

func (s *IntegranteService) List(ctx context.Context) ([]model.IntegrantePublic, error) {
	return s.integrantes.List(ctx)
}

func (s *IntegranteService) GetByID(ctx context.Context, id string) (*model.IntegrantePublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgIntegranteIDObrigatorio)
	}
	i, err := s.integrantes.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, apperr.NotFound(msgIntegranteNaoEncontrado)
	}
	return i, nil
}

type IntegranteInput struct {
	Nome      string
	Documento string
	Email     string
	Senha     string
	Telefone  *string
}

func (s *IntegranteService) Create(ctx context.Context, in IntegranteInput) (*model.IntegrantePublic, error) {
	nome := strings.TrimSpace(in.Nome)
	documento := strings.TrimSpace(in.Documento)
	email := strings.TrimSpace(in.Email)

	if nome == "" {
		return nil, apperr.BadRequest(msgIntegranteNomeObrigatorio)
	}
	if documento == "" {
		return nil, apperr.BadRequest(msgDocumentoObrigatorio)
	}
	if email == "" {
		return nil, apperr.BadRequest(msgEmailObrigatorio)
	}
	if in.Senha == "" {
		return nil, apperr.BadRequest(msgSenhaObrigatoria)
	}

	existing, err := s.integrantes.FindByDocumento(ctx, nil, documento)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(msgDocumentoDuplicado)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	i := model.Integrante{
		Nome:      nome,
		Documento: documento,
		Email:     email,
		SenhaHash: string(hash),
		Telefone:  trimPtr(in.Telefone),
	}
	if err := s.integrantes.Create(ctx, nil, &i); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgDocumentoDuplicado)
		}
		return nil, err
	}
	s.log.Info("integrante criado", "id", i.ID)
	pub := model.ToIntegrantePublic(i)
	return &pub, nil
}

type IntegranteUpdateInput struct {
	Nome      *string
	Documento *string
	Email     *string
	Senha     *string
	Telefone  model.Optional[string]
}

func (s *IntegranteService) Update(ctx context.Context, id string, in IntegranteUpdateInput) (*model.IntegrantePublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgIntegranteIDObrigatorio)
	}
	i, err := s.integrantes.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, apperr.NotFound(msgIntegranteNaoEncontrado)
	}

	fields := map[string]any{}
	if nome := trimPtr(in.Nome); nome != nil {
		fields["nome"] = *nome
	}
	if documento := trimPtr(in.Documento); documento != nil {
		colliding, err := s.integrantes.FindByDocumento(ctx, nil, *documento)
		if err != nil {
			return nil, err
		}
		if colliding != nil && colliding.ID != id {
			return nil, apperr.Conflict(msgDocumentoDuplicado)
		}
		fields["documento"] = *documento
	}
	if email := trimPtr(in.Email); email != nil {
		fields["email"] = *email
	}
	// the hash is rewritten only when a new password is actually supplied
	if senha := in.Senha; senha != nil && *senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["senha_hash"] = string(hash)
	}
	if in.Telefone.Set {
		fields["telefone"] = in.Telefone.Ptr()
	}

	if len(fields) == 0 {
		return nil, apperr.BadRequest(msgNenhumCampoParaAtualizar)
	}

	if err := s.integrantes.Updates(ctx, nil, id, fields); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgDocumentoDuplicado)
		}
		return nil, err
	}
	return s.integrantes.FindByID(ctx, nil, id)
}

func (s *IntegranteService) Delete(ctx context.Context, id string) (*model.IntegrantePublic, error) {
	pub, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.integrantes.Delete(ctx, nil, pub.ID); err != nil {
		return nil, err
	}
	s.log.Info("integrante removido", "id", pub.ID)
	return pub, nil
}

// -- funcao associations

func (s *IntegranteService) ListFuncoes(ctx context.Context, integranteID string) ([]model.FuncaoPublic, error) {
	if _, err := s.GetByID(ctx, integranteID); err != nil {
		return nil, err
	}
	rows, err := s.integrantes.ListFuncoes(ctx, strings.TrimSpace(integranteID))
	if err != nil {
		return nil, err
	}
	out := make([]model.FuncaoPublic, 0, len(rows))
	for _, f := range rows {
		out = append(out, model.ToFuncaoPublic(f))
	}
	return out, nil
}

func (s *IntegranteService) AddFuncao(ctx context.Context, integranteID, funcaoID string) error {
	return s.vincFuncao.add(ctx, integranteID, funcaoID)
}

func (s *IntegranteService) RemoveFuncao(ctx context.Context, integranteID, funcaoID string) error {
	return s.vincFuncao.remove(ctx, integranteID, funcaoID)
}
