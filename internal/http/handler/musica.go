package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/service"
)

type MusicaHandler struct {
	Svc *service.MusicaService
	Log *logger.Logger
}

func NewMusicaHandler(svc *service.MusicaService, log *logger.Logger) *MusicaHandler {
	return &MusicaHandler{Svc: svc, Log: log}
}

func (h *MusicaHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/complete", h.CreateComplete)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/complete", h.UpdateComplete)
	r.Delete("/{id}", h.Delete)

	r.Get("/{id}/versoes", h.ListVersoes)
	r.Post("/{id}/versoes", h.AddVersao)
	r.Delete("/{id}/versoes/{versaoId}", h.RemoveVersao)

	r.Get("/{id}/categorias", h.ListCategorias)
	r.Post("/{id}/categorias", h.AddCategoria)
	r.Delete("/{id}/categorias/{categoriaId}", h.RemoveCategoria)

	r.Get("/{id}/funcoes", h.ListFuncoes)
	r.Post("/{id}/funcoes", h.AddFuncao)
	r.Delete("/{id}/funcoes/{funcaoId}", h.RemoveFuncao)

	return r
}

func (h *MusicaHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	out, err := h.Svc.List(r.Context(), page, limit)
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar músicas")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MusicaHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.Svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao buscar música")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type musicaReq struct {
	Nome         string  `json:"nome"`
	TonalidadeID *string `json:"tonalidade_id"`
}

func (h *MusicaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req musicaReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao criar música")
		return
	}
	m, err := h.Svc.Create(r.Context(), service.MusicaInput{
		Nome:         req.Nome,
		TonalidadeID: req.TonalidadeID,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao criar música")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Música criada com sucesso", "musica": m})
}

type musicaUpdateReq struct {
	Nome       string                 `json:"nome"`
	Tonalidade model.Optional[string] `json:"tonalidade_id"`
}

func (h *MusicaHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req musicaUpdateReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar música")
		return
	}
	m, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), service.MusicaUpdateInput{
		Nome:       req.Nome,
		Tonalidade: req.Tonalidade,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar música")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Música atualizada com sucesso", "musica": m})
}

func (h *MusicaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	m, err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao remover música")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Música removida com sucesso", "musica": m})
}

type musicaCompleteReq struct {
	Nome         string   `json:"nome"`
	TonalidadeID *string  `json:"tonalidade_id"`
	ArtistaID    *string  `json:"artista_id"`
	BPM          *int     `json:"bpm"`
	Cifras       *string  `json:"cifras"`
	Letra        *string  `json:"letra"`
	LinkVersao   *string  `json:"link_versao"`
	CategoriaIDs []string `json:"categoria_ids"`
	FuncaoIDs    []string `json:"funcao_ids"`
}

func (h *MusicaHandler) CreateComplete(w http.ResponseWriter, r *http.Request) {
	var req musicaCompleteReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao criar música")
		return
	}
	m, err := h.Svc.CreateComplete(r.Context(), service.MusicaCompleteInput{
		Nome:         req.Nome,
		TonalidadeID: req.TonalidadeID,
		ArtistaID:    req.ArtistaID,
		BPM:          req.BPM,
		Cifras:       req.Cifras,
		Letra:        req.Letra,
		LinkVersao:   req.LinkVersao,
		CategoriaIDs: req.CategoriaIDs,
		FuncaoIDs:    req.FuncaoIDs,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao criar música")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Música criada com sucesso", "musica": m})
}

type musicaCompleteUpdateReq struct {
	Nome         *string                `json:"nome"`
	Tonalidade   model.Optional[string] `json:"tonalidade_id"`
	VersaoID     *string                `json:"versao_id"`
	BPM          model.Optional[int]    `json:"bpm"`
	Cifras       model.Optional[string] `json:"cifras"`
	Letra        model.Optional[string] `json:"letra"`
	LinkVersao   model.Optional[string] `json:"link_versao"`
	CategoriaIDs *[]string              `json:"categoria_ids"`
	FuncaoIDs    *[]string              `json:"funcao_ids"`
}

func (h *MusicaHandler) UpdateComplete(w http.ResponseWriter, r *http.Request) {
	var req musicaCompleteUpdateReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar música")
		return
	}
	m, err := h.Svc.UpdateComplete(r.Context(), chi.URLParam(r, "id"), service.MusicaCompleteUpdateInput{
		Nome:         req.Nome,
		Tonalidade:   req.Tonalidade,
		VersaoID:     req.VersaoID,
		BPM:          req.BPM,
		Cifras:       req.Cifras,
		Letra:        req.Letra,
		LinkVersao:   req.LinkVersao,
		CategoriaIDs: req.CategoriaIDs,
		FuncaoIDs:    req.FuncaoIDs,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar música")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Música atualizada com sucesso", "musica": m})
}

// -- versões

func (h *MusicaHandler) ListVersoes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListVersoes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar versões")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type versaoReq struct {
	ArtistaID  string  `json:"artista_id"`
	BPM        *int    `json:"bpm"`
	Cifras     *string `json:"cifras"`
	Letra      *string `json:"letra"`
	LinkVersao *string `json:"link_versao"`
}

func (h *MusicaHandler) AddVersao(w http.ResponseWriter, r *http.Request) {
	var req versaoReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao criar versão")
		return
	}
	v, err := h.Svc.AddVersao(r.Context(), chi.URLParam(r, "id"), service.VersaoInput{
		ArtistaID:  req.ArtistaID,
		BPM:        req.BPM,
		Cifras:     req.Cifras,
		Letra:      req.Letra,
		LinkVersao: req.LinkVersao,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao criar versão")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Versão criada com sucesso", "versao": v})
}

func (h *MusicaHandler) RemoveVersao(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.RemoveVersao(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "versaoId"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao remover versão")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Versão removida com sucesso"})
}

// -- categorias

func (h *MusicaHandler) ListCategorias(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListCategorias(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar categorias")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type addCategoriaReq struct {
	CategoriaID string `json:"categoria_id"`
}

func (h *MusicaHandler) AddCategoria(w http.ResponseWriter, r *http.Request) {
	var req addCategoriaReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular categoria")
		return
	}
	if err := h.Svc.AddCategoria(r.Context(), chi.URLParam(r, "id"), req.CategoriaID); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular categoria")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Categoria vinculada com sucesso"})
}

func (h *MusicaHandler) RemoveCategoria(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.RemoveCategoria(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "categoriaId"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao desvincular categoria")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Categoria desvinculada com sucesso"})
}

// -- funções

func (h *MusicaHandler) ListFuncoes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListFuncoes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar funções")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type addFuncaoReq struct {
	FuncaoID string `json:"funcao_id"`
}

func (h *MusicaHandler) AddFuncao(w http.ResponseWriter, r *http.Request) {
	var req addFuncaoReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular função")
		return
	}
	if err := h.Svc.AddFuncao(r.Context(), chi.URLParam(r, "id"), req.FuncaoID); err != nil {
		writeError(w, h.Log, err, "Erro ao vincular função")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Função vinculada com sucesso"})
}

func (h *MusicaHandler) RemoveFuncao(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.RemoveFuncao(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "funcaoId"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao desvincular função")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Função desvinculada com sucesso"})
}
