package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"louvor/internal/apperr"
	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/repo"
)

const (
	msgMusicaIDObrigatorio     = "ID da música não enviado"
	msgMusicaNaoEncontrada     = "Música não encontrada"
	msgMusicaNomeObrigatorio   = "Nome da música é obrigatório"
	msgVersaoIDObrigatorio     = "ID da versão não enviado"
	msgVersaoNaoEncontrada     = "Versão não encontrada"
	msgArtistaObrigatorio      = "Artista é obrigatório para criar uma versão"
	msgArtistaNaoEncontrado    = "Artista não encontrado"
	msgTonalidadeNaoEncontrada = "Tonalidade não encontrada"
	msgCategoriasInvalidas     = "Uma ou mais categorias não foram encontradas"
	msgFuncoesInvalidas        = "Uma ou mais funções não foram encontradas"
	msgCategoriaIDObrigatorio  = "ID da categoria não enviado"
	msgCategoriaNaoEncontrada  = "Categoria não encontrada"
	msgFuncaoIDObrigatorio     = "ID da função não enviado"
	msgFuncaoNaoEncontrada     = "Função não encontrada"
)

type MusicaService struct {
	db  *gorm.DB
	log *logger.Logger

	musicas     *repo.MusicaRepo
	versoes     *repo.VersaoRepo
	artistas    *repo.CatalogoRepo[model.Artista]
	categorias  *repo.CatalogoRepo[model.Categoria]
	funcoes     *repo.CatalogoRepo[model.Funcao]
	tonalidades *repo.CatalogoRepo[model.Tonalidade]

	vincCategoria vinculo
	vincFuncao    vinculo
}

func NewMusicaService(
	db *gorm.DB,
	log *logger.Logger,
	musicas *repo.MusicaRepo,
	versoes *repo.VersaoRepo,
	artistas *repo.CatalogoRepo[model.Artista],
	categorias *repo.CatalogoRepo[model.Categoria],
	funcoes *repo.CatalogoRepo[model.Funcao],
	tonalidades *repo.CatalogoRepo[model.Tonalidade],
) *MusicaService {
	s := &MusicaService{
		db:          db,
		log:         log.With("service", "musicas"),
		musicas:     musicas,
		versoes:     versoes,
		artistas:    artistas,
		categorias:  categorias,
		funcoes:     funcoes,
		tonalidades: tonalidades,
	}

	musicaExists := func(ctx context.Context, id string) (bool, error) {
		m, err := musicas.FindByID(ctx, nil, id)
		return m != nil, err
	}

	s.vincCategoria = vinculo{
		msgOwnerIDObrigatorio:   msgMusicaIDObrigatorio,
		msgRelatedIDObrigatorio: msgCategoriaIDObrigatorio,
		msgOwnerNaoEncontrado:   msgMusicaNaoEncontrada,
		msgRelatedNaoEncontrado: msgCategoriaNaoEncontrada,
		ownerExists:             musicaExists,
		relatedExists: func(ctx context.Context, id string) (bool, error) {
			c, err := categorias.FindByID(ctx, nil, id)
			return c != nil, err
		},
		findLinkID: func(ctx context.Context, ownerID, relatedID string) (string, bool, error) {
			link, err := musicas.FindCategoriaLink(ctx, nil, ownerID, relatedID)
			if err != nil || link == nil {
				return "", false, err
			}
			return link.ID, true, nil
		},
		insertLink: func(ctx context.Context, ownerID, relatedID string) error {
			return musicas.AddCategoriaLink(ctx, nil, ownerID, relatedID)
		},
		deleteLink: func(ctx context.Context, linkID string) error {
			return musicas.DeleteCategoriaLink(ctx, nil, linkID)
		},
	}

	s.vincFuncao = vinculo{
		msgOwnerIDObrigatorio:   msgMusicaIDObrigatorio,
		msgRelatedIDObrigatorio: msgFuncaoIDObrigatorio,
		msgOwnerNaoEncontrado:   msgMusicaNaoEncontrada,
		msgRelatedNaoEncontrado: msgFuncaoNaoEncontrada,
		ownerExists:             musicaExists,
		relatedExists: func(ctx context.Context, id string) (bool, error) {
			f, err := funcoes.FindByID(ctx, nil, id)
			return f != nil, err
		},
		findLinkID: func(ctx context.Context, ownerID, relatedID string) (string, bool, error) {
			link, err := musicas.FindFuncaoLink(ctx, nil, ownerID, relatedID)
			if err != nil || link == nil {
				return "", false, err
			}
			return link.ID, true, nil
		},
		insertLink: func(ctx context.Context, ownerID, relatedID string) error {
			return musicas.AddFuncaoLink(ctx, nil, ownerID, relatedID)
		},
		deleteLink: func(ctx context.Context, linkID string) error {
			return musicas.DeleteFuncaoLink(ctx, nil, linkID)
		},
	}

	return s
}

// -- listing / simple CRUD

func (s *MusicaService) List(ctx context.Context, page, limit int) (*Page[model.MusicaPublic], error) {
	page = clampPage(page)
	limit = clampLimit(limit)

	total, err := s.musicas.Count(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.musicas.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	items := make([]model.MusicaPublic, 0, len(rows))
	for _, m := range rows {
		pub, err := s.withLinks(ctx, m)
		if err != nil {
			return nil, err
		}
		items = append(items, pub)
	}

	return &Page[model.MusicaPublic]{
		Items: items,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			PerPage:    limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func (s *MusicaService) GetByID(ctx context.Context, id string) (*model.MusicaPublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgMusicaIDObrigatorio)
	}
	m, err := s.musicas.FindAggregate(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound(msgMusicaNaoEncontrada)
	}
	pub, err := s.withLinks(ctx, *m)
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

type MusicaInput struct {
	Nome         string
	TonalidadeID *string
}

func (s *MusicaService) Create(ctx context.Context, in MusicaInput) (*model.MusicaPublic, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, apperr.BadRequest(msgMusicaNomeObrigatorio)
	}

	tonalidadeID, err := s.checkTonalidade(ctx, in.TonalidadeID)
	if err != nil {
		return nil, err
	}

	m := model.Musica{Nome: nome, TonalidadeID: tonalidadeID}
	if err := s.musicas.Create(ctx, nil, &m); err != nil {
		return nil, err
	}
	s.log.Info("música criada", "id", m.ID)
	return s.GetByID(ctx, m.ID)
}

type MusicaUpdateInput struct {
	Nome       string
	Tonalidade model.Optional[string]
}

func (s *MusicaService) Update(ctx context.Context, id string, in MusicaUpdateInput) (*model.MusicaPublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgMusicaIDObrigatorio)
	}
	m, err := s.musicas.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound(msgMusicaNaoEncontrada)
	}

	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, apperr.BadRequest(msgMusicaNomeObrigatorio)
	}

	fields := map[string]any{"nome": nome}
	if in.Tonalidade.Set {
		if in.Tonalidade.Valid {
			tonalidadeID, err := s.checkTonalidade(ctx, &in.Tonalidade.Value)
			if err != nil {
				return nil, err
			}
			fields["tonalidade_id"] = tonalidadeID
		} else {
			fields["tonalidade_id"] = nil
		}
	}

	if err := s.musicas.Updates(ctx, nil, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *MusicaService) Delete(ctx context.Context, id string) (*model.MusicaPublic, error) {
	pub, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// versions and link rows go with the song via FK cascade
	if err := s.musicas.Delete(ctx, nil, pub.ID); err != nil {
		return nil, err
	}
	s.log.Info("música removida", "id", pub.ID)
	return pub, nil
}

// -- composite aggregate writer

type MusicaCompleteInput struct {
	Nome         string
	TonalidadeID *string
	ArtistaID    *string
	BPM          *int
	Cifras       *string
	Letra        *string
	LinkVersao   *string
	CategoriaIDs []string
	FuncaoIDs    []string
}

// CreateComplete inserts the song, at most one version and the full link
// sets in one transaction. All validation happens before the transaction
// opens; a failure inside rolls every insert back.
func (s *MusicaService) CreateComplete(ctx context.Context, in MusicaCompleteInput) (*model.MusicaPublic, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, apperr.BadRequest(msgMusicaNomeObrigatorio)
	}

	tonalidadeID, err := s.checkTonalidade(ctx, in.TonalidadeID)
	if err != nil {
		return nil, err
	}

	temCamposVersao := in.BPM != nil || in.Cifras != nil || in.Letra != nil || in.LinkVersao != nil
	artistaID := trimPtr(in.ArtistaID)
	if temCamposVersao && artistaID == nil {
		return nil, apperr.BadRequest(msgArtistaObrigatorio)
	}
	if artistaID != nil {
		a, err := s.artistas.FindByID(ctx, nil, *artistaID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, apperr.NotFound(msgArtistaNaoEncontrado)
		}
	}

	categoriaIDs, err := s.checkBatch(ctx, s.categorias.CountByIDs, in.CategoriaIDs, msgCategoriasInvalidas)
	if err != nil {
		return nil, err
	}
	funcaoIDs, err := s.checkBatch(ctx, s.funcoes.CountByIDs, in.FuncaoIDs, msgFuncoesInvalidas)
	if err != nil {
		return nil, err
	}

	m := model.Musica{Nome: nome, TonalidadeID: tonalidadeID}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.musicas.Create(ctx, tx, &m); err != nil {
			return err
		}
		if artistaID != nil {
			// an artist-only version is valid: all arrangement fields null
			v := model.Versao{
				MusicaID:   m.ID,
				ArtistaID:  *artistaID,
				BPM:        in.BPM,
				Cifras:     in.Cifras,
				Letra:      in.Letra,
				LinkVersao: in.LinkVersao,
			}
			if err := s.versoes.Create(ctx, tx, &v); err != nil {
				return err
			}
		}
		for _, id := range categoriaIDs {
			if err := s.musicas.AddCategoriaLink(ctx, tx, m.ID, id); err != nil {
				return err
			}
		}
		for _, id := range funcaoIDs {
			if err := s.musicas.AddFuncaoLink(ctx, tx, m.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("música criada (aggregate)", "id", m.ID)
	return s.GetByID(ctx, m.ID)
}

type MusicaCompleteUpdateInput struct {
	Nome       *string
	Tonalidade model.Optional[string]
	VersaoID   *string
	BPM        model.Optional[int]
	Cifras     model.Optional[string]
	Letra      model.Optional[string]
	LinkVersao model.Optional[string]
	// non-nil means full replacement of the link set, empty list included
	CategoriaIDs *[]string
	FuncaoIDs    *[]string
}

func (s *MusicaService) UpdateComplete(ctx context.Context, id string, in MusicaCompleteUpdateInput) (*model.MusicaPublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgMusicaIDObrigatorio)
	}
	m, err := s.musicas.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFound(msgMusicaNaoEncontrada)
	}

	// the name is re-validated on every aggregate update, unlike the other
	// fields, which are all optional
	nome := trimPtr(in.Nome)
	if nome == nil {
		return nil, apperr.BadRequest(msgMusicaNomeObrigatorio)
	}

	musicaFields := map[string]any{"nome": *nome}
	if in.Tonalidade.Set {
		if in.Tonalidade.Valid {
			tonalidadeID, err := s.checkTonalidade(ctx, &in.Tonalidade.Value)
			if err != nil {
				return nil, err
			}
			musicaFields["tonalidade_id"] = tonalidadeID
		} else {
			musicaFields["tonalidade_id"] = nil
		}
	}

	versaoID := trimPtr(in.VersaoID)
	if versaoID != nil {
		v, err := s.versoes.FindByID(ctx, nil, *versaoID)
		if err != nil {
			return nil, err
		}
		if v == nil || v.MusicaID != id {
			return nil, apperr.NotFound(msgVersaoNaoEncontrada)
		}
	}

	var categoriaIDs, funcaoIDs []string
	if in.CategoriaIDs != nil {
		categoriaIDs, err = s.checkBatch(ctx, s.categorias.CountByIDs, *in.CategoriaIDs, msgCategoriasInvalidas)
		if err != nil {
			return nil, err
		}
	}
	if in.FuncaoIDs != nil {
		funcaoIDs, err = s.checkBatch(ctx, s.funcoes.CountByIDs, *in.FuncaoIDs, msgFuncoesInvalidas)
		if err != nil {
			return nil, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.musicas.Updates(ctx, tx, id, musicaFields); err != nil {
			return err
		}
		if versaoID != nil {
			versaoFields := map[string]any{}
			if in.BPM.Set {
				versaoFields["bpm"] = in.BPM.Ptr()
			}
			if in.Cifras.Set {
				versaoFields["cifras"] = in.Cifras.Ptr()
			}
			if in.Letra.Set {
				versaoFields["letra"] = in.Letra.Ptr()
			}
			if in.LinkVersao.Set {
				versaoFields["link_versao"] = in.LinkVersao.Ptr()
			}
			if err := s.versoes.Updates(ctx, tx, *versaoID, versaoFields); err != nil {
				return err
			}
		}
		if in.CategoriaIDs != nil {
			if err := s.musicas.ReplaceCategoriaLinks(ctx, tx, id, categoriaIDs); err != nil {
				return err
			}
		}
		if in.FuncaoIDs != nil {
			if err := s.musicas.ReplaceFuncaoLinks(ctx, tx, id, funcaoIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("música atualizada (aggregate)", "id", id)
	return s.GetByID(ctx, id)
}

// -- versões

func (s *MusicaService) ListVersoes(ctx context.Context, musicaID string) ([]model.VersaoPublic, error) {
	if err := s.requireMusica(ctx, &musicaID); err != nil {
		return nil, err
	}
	rows, err := s.versoes.ListByMusica(ctx, musicaID)
	if err != nil {
		return nil, err
	}
	out := make([]model.VersaoPublic, 0, len(rows))
	for _, v := range rows {
		out = append(out, model.ToVersaoPublic(v))
	}
	return out, nil
}

type VersaoInput struct {
	ArtistaID  string
	BPM        *int
	Cifras     *string
	Letra      *string
	LinkVersao *string
}

func (s *MusicaService) AddVersao(ctx context.Context, musicaID string, in VersaoInput) (*model.VersaoPublic, error) {
	if err := s.requireMusica(ctx, &musicaID); err != nil {
		return nil, err
	}

	artistaID := strings.TrimSpace(in.ArtistaID)
	if artistaID == "" {
		return nil, apperr.BadRequest(msgArtistaObrigatorio)
	}
	a, err := s.artistas.FindByID(ctx, nil, artistaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound(msgArtistaNaoEncontrado)
	}

	if dup, err := s.versoes.FindByPair(ctx, nil, artistaID, musicaID); err != nil {
		return nil, err
	} else if dup != nil {
		return nil, apperr.Conflict(msgRegistroDuplicado)
	}

	v := model.Versao{
		MusicaID:   musicaID,
		ArtistaID:  artistaID,
		BPM:        in.BPM,
		Cifras:     in.Cifras,
		Letra:      in.Letra,
		LinkVersao: in.LinkVersao,
	}
	if err := s.versoes.Create(ctx, nil, &v); err != nil {
		if repo.IsUniqueViolation(err) {
			return nil, apperr.Conflict(msgRegistroDuplicado)
		}
		return nil, err
	}
	v.Artista = a
	pub := model.ToVersaoPublic(v)
	return &pub, nil
}

func (s *MusicaService) RemoveVersao(ctx context.Context, musicaID, versaoID string) error {
	if err := s.requireMusica(ctx, &musicaID); err != nil {
		return err
	}
	versaoID = strings.TrimSpace(versaoID)
	if versaoID == "" {
		return apperr.BadRequest(msgVersaoIDObrigatorio)
	}
	v, err := s.versoes.FindByID(ctx, nil, versaoID)
	if err != nil {
		return err
	}
	if v == nil || v.MusicaID != musicaID {
		return apperr.NotFound(msgVersaoNaoEncontrada)
	}
	return s.versoes.Delete(ctx, nil, versaoID)
}

// -- categoria / funcao associations

func (s *MusicaService) ListCategorias(ctx context.Context, musicaID string) ([]model.CategoriaPublic, error) {
	if err := s.requireMusica(ctx, &musicaID); err != nil {
		return nil, err
	}
	rows, err := s.musicas.ListCategorias(ctx, musicaID)
	if err != nil {
		return nil, err
	}
	out := make([]model.CategoriaPublic, 0, len(rows))
	for _, c := range rows {
		out = append(out, model.ToCategoriaPublic(c))
	}
	return out, nil
}

func (s *MusicaService) AddCategoria(ctx context.Context, musicaID, categoriaID string) error {
	return s.vincCategoria.add(ctx, musicaID, categoriaID)
}

func (s *MusicaService) RemoveCategoria(ctx context.Context, musicaID, categoriaID string) error {
	return s.vincCategoria.remove(ctx, musicaID, categoriaID)
}

func (s *MusicaService) ListFuncoes(ctx context.Context, musicaID string) ([]model.FuncaoPublic, error) {
	if err := s.requireMusica(ctx, &musicaID); err != nil {
		return nil, err
	}
	rows, err := s.musicas.ListFuncoes(ctx, musicaID)
	if err != nil {
		return nil, err
	}
	out := make([]model.FuncaoPublic, 0, len(rows))
	for _, f := range rows {
		out = append(out, model.ToFuncaoPublic(f))
	}
	return out, nil
}

func (s *MusicaService) AddFuncao(ctx context.Context, musicaID, funcaoID string) error {
	return s.vincFuncao.add(ctx, musicaID, funcaoID)
}

func (s *MusicaService) RemoveFuncao(ctx context.Context, musicaID, funcaoID string) error {
	return s.vincFuncao.remove(ctx, musicaID, funcaoID)
}

// -- helpers

func (s *MusicaService) withLinks(ctx context.Context, m model.Musica) (model.MusicaPublic, error) {
	categorias, err := s.musicas.ListCategorias(ctx, m.ID)
	if err != nil {
		return model.MusicaPublic{}, err
	}
	funcoes, err := s.musicas.ListFuncoes(ctx, m.ID)
	if err != nil {
		return model.MusicaPublic{}, err
	}
	return model.ToMusicaPublic(m, categorias, funcoes), nil
}

func (s *MusicaService) requireMusica(ctx context.Context, id *string) error {
	*id = strings.TrimSpace(*id)
	if *id == "" {
		return apperr.BadRequest(msgMusicaIDObrigatorio)
	}
	m, err := s.musicas.FindByID(ctx, nil, *id)
	if err != nil {
		return err
	}
	if m == nil {
		return apperr.NotFound(msgMusicaNaoEncontrada)
	}
	return nil
}

// checkTonalidade validates an optional tonality reference, returning the
// normalized id or nil when absent.
func (s *MusicaService) checkTonalidade(ctx context.Context, id *string) (*string, error) {
	id = trimPtr(id)
	if id == nil {
		return nil, nil
	}
	t, err := s.tonalidades.FindByID(ctx, nil, *id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound(msgTonalidadeNaoEncontrada)
	}
	return id, nil
}

// checkBatch deduplicates the id list and verifies every id exists with a
// single count query.
func (s *MusicaService) checkBatch(
	ctx context.Context,
	count func(context.Context, *gorm.DB, []string) (int64, error),
	ids []string,
	msg string,
) ([]string, error) {
	deduped := dedupIDs(ids)
	if len(deduped) == 0 {
		return nil, nil
	}
	n, err := count(ctx, nil, deduped)
	if err != nil {
		return nil, err
	}
	if n != int64(len(deduped)) {
		return nil, apperr.NotFound(msg)
	}
	return deduped, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
