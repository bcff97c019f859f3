package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/service"
)

// CatalogoHandler serves the uniform CRUD surface of the flat natural-key
// entities. The entity key and confirmation messages differ per family, the
// wiring does not.
type CatalogoHandler[T any, P any] struct {
	Svc *service.CatalogoService[T, P]
	Log *logger.Logger

	// JSON key for the entity in mutation responses ("artista", "categoria")
	Key string
	// label used in the generic failure message ("Erro ao criar <label>")
	Label string

	MsgCriado     string
	MsgAtualizado string
	MsgRemovido   string
}

func NewArtistaHandler(svc *service.CatalogoService[model.Artista, model.ArtistaPublic], log *logger.Logger) *CatalogoHandler[model.Artista, model.ArtistaPublic] {
	return &CatalogoHandler[model.Artista, model.ArtistaPublic]{
		Svc: svc, Log: log,
		Key: "artista", Label: "artista",
		MsgCriado:     "Artista criado com sucesso",
		MsgAtualizado: "Artista atualizado com sucesso",
		MsgRemovido:   "Artista removido com sucesso",
	}
}

func NewCategoriaHandler(svc *service.CatalogoService[model.Categoria, model.CategoriaPublic], log *logger.Logger) *CatalogoHandler[model.Categoria, model.CategoriaPublic] {
	return &CatalogoHandler[model.Categoria, model.CategoriaPublic]{
		Svc: svc, Log: log,
		Key: "categoria", Label: "categoria",
		MsgCriado:     "Categoria criada com sucesso",
		MsgAtualizado: "Categoria atualizada com sucesso",
		MsgRemovido:   "Categoria removida com sucesso",
	}
}

func NewFuncaoHandler(svc *service.CatalogoService[model.Funcao, model.FuncaoPublic], log *logger.Logger) *CatalogoHandler[model.Funcao, model.FuncaoPublic] {
	return &CatalogoHandler[model.Funcao, model.FuncaoPublic]{
		Svc: svc, Log: log,
		Key: "funcao", Label: "função",
		MsgCriado:     "Função criada com sucesso",
		MsgAtualizado: "Função atualizada com sucesso",
		MsgRemovido:   "Função removida com sucesso",
	}
}

func NewTonalidadeHandler(svc *service.CatalogoService[model.Tonalidade, model.TonalidadePublic], log *logger.Logger) *CatalogoHandler[model.Tonalidade, model.TonalidadePublic] {
	return &CatalogoHandler[model.Tonalidade, model.TonalidadePublic]{
		Svc: svc, Log: log,
		Key: "tonalidade", Label: "tonalidade",
		MsgCriado:     "Tonalidade criada com sucesso",
		MsgAtualizado: "Tonalidade atualizada com sucesso",
		MsgRemovido:   "Tonalidade removida com sucesso",
	}
}

func NewTipoEventoHandler(svc *service.CatalogoService[model.TipoEvento, model.TipoEventoPublic], log *logger.Logger) *CatalogoHandler[model.TipoEvento, model.TipoEventoPublic] {
	return &CatalogoHandler[model.TipoEvento, model.TipoEventoPublic]{
		Svc: svc, Log: log,
		Key: "tipo_evento", Label: "tipo de evento",
		MsgCriado:     "Tipo de evento criado com sucesso",
		MsgAtualizado: "Tipo de evento atualizado com sucesso",
		MsgRemovido:   "Tipo de evento removido com sucesso",
	}
}

func (h *CatalogoHandler[T, P]) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

type nomeReq struct {
	Nome string `json:"nome"`
}

func (h *CatalogoHandler[T, P]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar "+h.Label)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *CatalogoHandler[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.Svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao buscar "+h.Label)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (h *CatalogoHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	var req nomeReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao criar "+h.Label)
		return
	}
	row, err := h.Svc.Create(r.Context(), req.Nome)
	if err != nil {
		writeError(w, h.Log, err, "Erro ao criar "+h.Label)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": h.MsgCriado, h.Key: row})
}

func (h *CatalogoHandler[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	var req nomeReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar "+h.Label)
		return
	}
	row, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), req.Nome)
	if err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar "+h.Label)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": h.MsgAtualizado, h.Key: row})
}

func (h *CatalogoHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	row, err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao remover "+h.Label)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": h.MsgRemovido, h.Key: row})
}
