package service

import (
	"context"
	"strings"

	"louvor/internal/apperr"
	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/repo"
)

type catalogoMsgs struct {
	idObrigatorio   string
	naoEncontrado   string
	nomeObrigatorio string
	nomeDuplicado   string
}

// CatalogoService is the uniform CRUD contract for the flat natural-key
// entities. The messages and row/projection types differ per family; the
// validation sequence does not.
type CatalogoService[T any, P any] struct {
	repo     *repo.CatalogoRepo[T]
	log      *logger.Logger
	msgs     catalogoMsgs
	novo     func(nome string) T
	idOf     func(T) string
	toPublic func(T) P
}

func NewArtistaService(r *repo.CatalogoRepo[model.Artista], log *logger.Logger) *CatalogoService[model.Artista, model.ArtistaPublic] {
	return &CatalogoService[model.Artista, model.ArtistaPublic]{
		repo: r,
		log:  log.With("service", "artistas"),
		msgs: catalogoMsgs{
			idObrigatorio:   "ID do artista não enviado",
			naoEncontrado:   "Artista não encontrado",
			nomeObrigatorio: "Nome do artista é obrigatório",
			nomeDuplicado:   "Já existe um artista com esse nome",
		},
		novo:     func(nome string) model.Artista { return model.Artista{Nome: nome} },
		idOf:     func(a model.Artista) string { return a.ID },
		toPublic: model.ToArtistaPublic,
	}
}

func NewCategoriaService(r *repo.CatalogoRepo[model.Categoria], log *logger.Logger) *CatalogoService[model.Categoria, model.CategoriaPublic] {
	return &CatalogoService[model.Categoria, model.CategoriaPublic]{
		repo: r,
		log:  log.With("service", "categorias"),
		msgs: catalogoMsgs{
			idObrigatorio:   "ID da categoria não enviado",
			naoEncontrado:   "Categoria não encontrada",
			nomeObrigatorio: "Nome da categoria é obrigatório",
			nomeDuplicado:   "Já existe uma categoria com esse nome",
		},
		novo:     func(nome string) model.Categoria { return model.Categoria{Nome: nome} },
		idOf:     func(c model.Categoria) string { return c.ID },
		toPublic: model.ToCategoriaPublic,
	}
}

func NewFuncaoService(r *repo.CatalogoRepo[model.Funcao], log *logger.Logger) *CatalogoService[model.Funcao, model.FuncaoPublic] {
	return &CatalogoService[model.Funcao, model.FuncaoPublic]{
		repo: r,
		log:  log.With("service", "funcoes"),
		msgs: catalogoMsgs{
			idObrigatorio:   "ID da função não enviado",
			naoEncontrado:   "Função não encontrada",
			nomeObrigatorio: "Nome da função é obrigatório",
			nomeDuplicado:   "Já existe uma função com esse nome",
		},
		novo:     func(nome string) model.Funcao { return model.Funcao{Nome: nome} },
		idOf:     func(f model.Funcao) string { return f.ID },
		toPublic: model.ToFuncaoPublic,
	}
}

func NewTonalidadeService(r *repo.CatalogoRepo[model.Tonalidade], log *logger.Logger) *CatalogoService[model.Tonalidade, model.TonalidadePublic] {
	return &CatalogoService[model.Tonalidade, model.TonalidadePublic]{
		repo: r,
		log:  log.With("service", "tonalidades"),
		msgs: catalogoMsgs{
			idObrigatorio:   "ID da tonalidade não enviado",
			naoEncontrado:   "Tonalidade não encontrada",
			nomeObrigatorio: "Nome da tonalidade é obrigatório",
			nomeDuplicado:   "Já existe uma tonalidade com esse nome",
		},
		novo:     func(nome string) model.Tonalidade { return model.Tonalidade{Nome: nome} },
		idOf:     func(t model.Tonalidade) string { return t.ID },
		toPublic: model.ToTonalidadePublic,
	}
}

func NewTipoEventoService(r *repo.CatalogoRepo[model.TipoEvento], log *logger.Logger) *CatalogoService[model.TipoEvento, model.TipoEventoPublic] {
	return &CatalogoService[model.TipoEvento, model.TipoEventoPublic]{
		repo: r,
		log:  log.With("service", "tipos_eventos"),
		msgs: catalogoMsgs{
			idObrigatorio:   "ID do tipo de evento não enviado",
			naoEncontrado:   "Tipo de evento não encontrado",
			nomeObrigatorio: "Nome do tipo de evento é obrigatório",
			nomeDuplicado:   "Já existe um tipo de evento com esse nome",
		},
		novo:     func(nome string) model.TipoEvento { return model.TipoEvento{Nome: nome} },
		idOf:     func(t model.TipoEvento) string { return t.ID },
		toPublic: model.ToTipoEventoPublic,
	}
}

func (s *CatalogoService[T, P]) List(ctx context.Context) ([]P, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]P, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toPublic(row))
	}
	return out, nil
}

func (s *CatalogoService[T, P]) GetByID(ctx context.Context, id string) (*P, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(s.msgs.idObrigatorio)
	}
	row, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound(s.msgs.naoEncontrado)
	}
	p := s.toPublic(*row)
	return &p, nil
}

func (s *CatalogoService[T, P]) Create(ctx context.Context, nome string) (*P, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, apperr.BadRequest(s.msgs.nomeObrigatorio)
	}

	existing, err := s.repo.FindByNome(ctx, nil, nome)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(s.msgs.nomeDuplicado)
	}

	row := s.novo(nome)
	if err := s.repo.Create(ctx, nil, &row); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, apperr.Conflict(s.msgs.nomeDuplicado)
		}
		return nil, err
	}
	s.log.Info("registro criado", "id", s.idOf(row))
	p := s.toPublic(row)
	return &p, nil
}

func (s *CatalogoService[T, P]) Update(ctx context.Context, id, nome string) (*P, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(s.msgs.idObrigatorio)
	}
	row, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound(s.msgs.naoEncontrado)
	}

	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, apperr.BadRequest(s.msgs.nomeObrigatorio)
	}

	colliding, err := s.repo.FindByNome(ctx, nil, nome)
	if err != nil {
		return nil, err
	}
	if colliding != nil && s.idOf(*colliding) != id {
		return nil, apperr.Conflict(s.msgs.nomeDuplicado)
	}

	if err := s.repo.UpdateNome(ctx, nil, id, nome); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, apperr.Conflict(s.msgs.nomeDuplicado)
		}
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	p := s.toPublic(*updated)
	return &p, nil
}

// Delete fetches before deleting and returns the pre-delete projection so
// callers can show what was removed.
func (s *CatalogoService[T, P]) Delete(ctx context.Context, id string) (*P, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(s.msgs.idObrigatorio)
	}
	row, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound(s.msgs.naoEncontrado)
	}
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		return nil, err
	}
	s.log.Info("registro removido", "id", id)
	p := s.toPublic(*row)
	return &p, nil
}
