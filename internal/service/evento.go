package service

import (
	"context"
	"strings"
	"time"

	"louvor/internal/apperr"
	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/repo"
)

const (
	msgEventoIDObrigatorio     = "ID do evento não enviado"
	msgEventoNaoEncontrado     = "Evento não encontrado"
	msgDataObrigatoria         = "Data do evento é obrigatória"
	msgDataInvalida            = "Data inválida"
	msgTipoEventoObrigatorio   = "Tipo de evento é obrigatório"
	msgTipoEventoNaoEncontrado = "Tipo de evento não encontrado"
	msgDescricaoObrigatoria    = "Descrição do evento é obrigatória"
)

type EventoService struct {
	eventos      *repo.EventoRepo
	tiposEventos *repo.CatalogoRepo[model.TipoEvento]
	musicas      *repo.MusicaRepo
	integrantes  *repo.IntegranteRepo
	log          *logger.Logger

	vincMusica     vinculo
	vincIntegrante vinculo
}

func NewEventoService(
	eventos *repo.EventoRepo,
	tiposEventos *repo.CatalogoRepo[model.TipoEvento],
	musicas *repo.MusicaRepo,
	integrantes *repo.IntegranteRepo,
	log *logger.Logger,
) *EventoService {
	s := &EventoService{
		eventos:      eventos,
		tiposEventos: tiposEventos,
		musicas:      musicas,
		integrantes:  integrantes,
		log:          log.With("service", "eventos"),
	}

	eventoExists := func(ctx context.Context, id string) (bool, error) {
		e, err := eventos.FindByID(ctx, nil, id)
		return e != nil, err
	}

	s.vincMusica = vinculo{
		msgOwnerIDObrigatorio:   msgEventoIDObrigatorio,
		msgRelatedIDObrigatorio: msgMusicaIDObrigatorio,
		msgOwnerNaoEncontrado:   msgEventoNaoEncontrado,
		msgRelatedNaoEncontrado: msgMusicaNaoEncontrada,
		ownerExists:             eventoExists,
		relatedExists: func(ctx context.Context, id string) (bool, error) {
			m, err := musicas.FindByID(ctx, nil, id)
			return m != nil, err
		},
		findLinkID: func(ctx context.Context, ownerID, relatedID string) (string, bool, error) {
			link, err := eventos.FindMusicaLink(ctx, nil, ownerID, relatedID)
			if err != nil || link == nil {
				return "", false, err
			}
			return link.ID, true, nil
		},
		insertLink: func(ctx context.Context, ownerID, relatedID string) error {
			return eventos.AddMusicaLink(ctx, nil, ownerID, relatedID)
		},
		deleteLink: func(ctx context.Context, linkID string) error {
			return eventos.DeleteMusicaLink(ctx, nil, linkID)
		},
	}

	s.vincIntegrante = vinculo{
		msgOwnerIDObrigatorio:   msgEventoIDObrigatorio,
		msgRelatedIDObrigatorio: msgIntegranteIDObrigatorio,
		msgOwnerNaoEncontrado:   msgEventoNaoEncontrado,
		msgRelatedNaoEncontrado: msgIntegranteNaoEncontrado,
		ownerExists:             eventoExists,
		relatedExists: func(ctx context.Context, id string) (bool, error) {
			i, err := integrantes.FindByID(ctx, nil, id)
			return i != nil, err
		},
		findLinkID: func(ctx context.Context, ownerID, relatedID string) (string, bool, error) {
			link, err := eventos.FindIntegranteLink(ctx, nil, ownerID, relatedID)
			if err != nil || link == nil {
				return "", false, err
			}
			return link.ID, true, nil
		},
		insertLink: func(ctx context.Context, ownerID, relatedID string) error {
			return eventos.AddIntegranteLink(ctx, nil, ownerID, relatedID)
		},
		deleteLink: func(ctx context.Context, linkID string) error {
			return eventos.DeleteIntegranteLink(ctx, nil, linkID)
		},
	}

	return s
}

func (s *EventoService) List(ctx context.Context) ([]model.EventoPublic, error) {
	rows, err := s.eventos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.EventoPublic, 0, len(rows))
	for _, e := range rows {
		out = append(out, model.ToEventoPublic(e))
	}
	return out, nil
}

func (s *EventoService) GetByID(ctx context.Context, id string) (*model.EventoPublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgEventoIDObrigatorio)
	}
	e, err := s.eventos.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound(msgEventoNaoEncontrado)
	}
	pub := model.ToEventoPublic(*e)
	return &pub, nil
}

type EventoInput struct {
	Data         string
	TipoEventoID string
	Descricao    string
}

func (s *EventoService) Create(ctx context.Context, in EventoInput) (*model.EventoPublic, error) {
	data := strings.TrimSpace(in.Data)
	if data == "" {
		return nil, apperr.BadRequest(msgDataObrigatoria)
	}
	when, err := parseData(data)
	if err != nil {
		return nil, apperr.BadRequest(msgDataInvalida)
	}

	tipoID := strings.TrimSpace(in.TipoEventoID)
	if tipoID == "" {
		return nil, apperr.BadRequest(msgTipoEventoObrigatorio)
	}
	tipo, err := s.tiposEventos.FindByID(ctx, nil, tipoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, apperr.NotFound(msgTipoEventoNaoEncontrado)
	}

	descricao := strings.TrimSpace(in.Descricao)
	if descricao == "" {
		return nil, apperr.BadRequest(msgDescricaoObrigatoria)
	}

	e := model.Evento{Data: when, TipoEventoID: tipoID, Descricao: descricao}
	if err := s.eventos.Create(ctx, nil, &e); err != nil {
		return nil, err
	}
	s.log.Info("evento criado", "id", e.ID)
	return s.GetByID(ctx, e.ID)
}

type EventoUpdateInput struct {
	Data         *string
	TipoEventoID *string
	Descricao    *string
}

func (s *EventoService) Update(ctx context.Context, id string, in EventoUpdateInput) (*model.EventoPublic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.BadRequest(msgEventoIDObrigatorio)
	}
	e, err := s.eventos.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound(msgEventoNaoEncontrado)
	}

	fields := map[string]any{}
	if data := trimPtr(in.Data); data != nil {
		when, err := parseData(*data)
		if err != nil {
			return nil, apperr.BadRequest(msgDataInvalida)
		}
		fields["data"] = when
	}
	if tipoID := trimPtr(in.TipoEventoID); tipoID != nil {
		tipo, err := s.tiposEventos.FindByID(ctx, nil, *tipoID)
		if err != nil {
			return nil, err
		}
		if tipo == nil {
			return nil, apperr.NotFound(msgTipoEventoNaoEncontrado)
		}
		fields["tipo_evento_id"] = *tipoID
	}
	if descricao := trimPtr(in.Descricao); descricao != nil {
		fields["descricao"] = *descricao
	}

	if len(fields) == 0 {
		return nil, apperr.BadRequest(msgNenhumCampoParaAtualizar)
	}

	if err := s.eventos.Updates(ctx, nil, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *EventoService) Delete(ctx context.Context, id string) (*model.EventoPublic, error) {
	pub, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.eventos.Delete(ctx, nil, pub.ID); err != nil {
		return nil, err
	}
	s.log.Info("evento removido", "id", pub.ID)
	return pub, nil
}

// -- musica associations

func (s *EventoService) ListMusicas(ctx context.Context, eventoID string) ([]model.MusicaResumo, error) {
	if _, err := s.GetByID(ctx, eventoID); err != nil {
		return nil, err
	}
	rows, err := s.eventos.ListMusicas(ctx, strings.TrimSpace(eventoID))
	if err != nil {
		return nil, err
	}
	out := make([]model.MusicaResumo, 0, len(rows))
	for _, m := range rows {
		out = append(out, model.ToMusicaResumo(m))
	}
	return out, nil
}

func (s *EventoService) AddMusica(ctx context.Context, eventoID, musicaID string) error {
	return s.vincMusica.add(ctx, eventoID, musicaID)
}

func (s *EventoService) RemoveMusica(ctx context.Context, eventoID, musicaID string) error {
	return s.vincMusica.remove(ctx, eventoID, musicaID)
}

// -- integrante associations

func (s *EventoService) ListIntegrantes(ctx context.Context, eventoID string) ([]model.IntegrantePublic, error) {
	if _, err := s.GetByID(ctx, eventoID); err != nil {
		return nil, err
	}
	return s.eventos.ListIntegrantes(ctx, strings.TrimSpace(eventoID))
}

func (s *EventoService) AddIntegrante(ctx context.Context, eventoID, integranteID string) error {
	return s.vincIntegrante.add(ctx, eventoID, integranteID)
}

func (s *EventoService) RemoveIntegrante(ctx context.Context, eventoID, integranteID string) error {
	return s.vincIntegrante.remove(ctx, eventoID, integranteID)
}

// parseData accepts RFC3339 or a plain calendar date.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
