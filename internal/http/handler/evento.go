package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"louvor/internal/logger"
	"louvor/internal/service"
)

type EventoHandler struct {
	Svc *service.EventoService
	Log *logger.Logger
}

func NewEventoHandler(svc *service.EventoService, log *logger.Logger) *EventoHandler {
	return &EventoHandler{Svc: svc, Log: log}
}

func (h *EventoHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Get("/{id}/musicas", h.ListMusicas)
	r.Post("/{id}/musicas", h.AddMusica)
	r.Delete("/{id}/musicas/{musicaId}", h.RemoveMusica)

	r.Get("/{id}/integrantes", h.ListIntegrantes)
	r.Post("/{id}/integrantes", h.AddIntegrante)
	r.Delete("/{id}/integrantes/{integranteId}", h.RemoveIntegrante)

	return r
}

func (h *EventoHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar eventos")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *EventoHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao buscar evento")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

type eventoReq struct {
	Data         string `json:"data"`
	TipoEventoID string `json:"tipo_evento_id"`
	Descricao    string `json:"descricao"`
}

func (h *EventoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventoReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao criar evento")
		return
	}
	e, err := h.Svc.Create(r.Context(), service.EventoInput{
		Data:         req.Data,
		TipoEventoID: req.TipoEventoID,
		Descricao:    req.Descricao,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao criar evento")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Evento criado com sucesso", "evento": e})
}

type eventoUpdateReq struct {
	Data         *string `json:"data"`
	TipoEventoID *string `json:"tipo_evento_id"`
	Descricao    *string `json:"descricao"`
}

func (h *EventoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req eventoUpdateReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar evento")
		return
	}
	e, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), service.EventoUpdateInput{
		Data:         req.Data,
		TipoEventoID: req.TipoEventoID,
		Descricao:    req.Descricao,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar evento")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Evento atualizado com sucesso", "evento": e})
}

func (h *EventoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao remover evento")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Evento removido com sucesso", "evento": e})
}

// -- músicas

func (h *EventoHandler) ListMusicas(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListMusicas(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar músicas do evento")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type addMusicaReq struct {
	MusicaID string `json:"musica_id"`
}

func (h *EventoHandler) AddMusica(w http.ResponseWriter, r *http.Request) {
	var req addMusicaReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular música")
		return
	}
	if err := h.Svc.AddMusica(r.Context(), chi.URLParam(r, "id"), req.MusicaID); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular música")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Música vinculada com sucesso"})
}

func (h *EventoHandler) RemoveMusica(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.RemoveMusica(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "musicaId"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao desvincular música")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Música desvinculada com sucesso"})
}

// -- integrantes

func (h *EventoHandler) ListIntegrantes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListIntegrantes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar integrantes do evento")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type addIntegranteReq struct {
	IntegranteID string `json:"integrante_id"`
}

func (h *EventoHandler) AddIntegrante(w http.ResponseWriter, r *http.Request) {
	var req addIntegranteReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular integrante")
		return
	}
	if err := h.Svc.AddIntegrante(r.Context(), chi.URLParam(r, "id"), req.IntegranteID); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular integrante")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Integrante vinculado com sucesso"})
}

func (h *EventoHandler) RemoveIntegrante(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.RemoveIntegrante(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "integranteId"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao desvincular integrante")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Integrante desvinculado com sucesso"})
}
