package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/service"
)

type IntegranteHandler struct {
	Svc *service.IntegranteService
	Log *logger.Logger
}

func NewIntegranteHandler(svc *service.IntegranteService, log *logger.Logger) *IntegranteHandler {
	return &IntegranteHandler{Svc: svc, Log: log}
}

func (h *IntegranteHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	r.Get("/{id}/funcoes", h.ListFuncoes)
	r.Post("/{id}/funcoes", h.AddFuncao)
	r.Delete("/{id}/funcoes/{funcaoId}", h.RemoveFuncao)

	return r
}

func (h *IntegranteHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar integrantes")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *IntegranteHandler) Get(w http.ResponseWriter, r *http.Request) {
	i, err := h.Svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao buscar integrante")
		return
	}
	writeJSON(w, http.StatusOK, i)
}

type integranteReq struct {
	Nome      string  `json:"nome"`
	Documento string  `json:"documento"`
	Email     string  `json:"email"`
	Senha     string  `json:"senha"`
	Telefone  *string `json:"telefone"`
}

func (h *IntegranteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req integranteReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao criar integrante")
		return
	}
	i, err := h.Svc.Create(r.Context(), service.IntegranteInput{
		Nome:      req.Nome,
		Documento: req.Documento,
		Email:     req.Email,
		Senha:     req.Senha,
		Telefone:  req.Telefone,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao criar integrante")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Integrante criado com sucesso", "integrante": i})
}

type integranteUpdateReq struct {
	Nome      *string                `json:"nome"`
	Documento *string                `json:"documento"`
	Email     *string                `json:"email"`
	Senha     *string                `json:"senha"`
	Telefone  model.Optional[string] `json:"telefone"`
}

func (h *IntegranteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req integranteUpdateReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar integrante")
		return
	}
	i, err := h.Svc.Update(r.Context(), chi.URLParam(r, "id"), service.IntegranteUpdateInput{
		Nome:      req.Nome,
		Documento: req.Documento,
		Email:     req.Email,
		Senha:     req.Senha,
		Telefone:  req.Telefone,
	})
	if err != nil {
		writeError(w, h.Log, err, "Erro ao atualizar integrante")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Integrante atualizado com sucesso", "integrante": i})
}

func (h *IntegranteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	i, err := h.Svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao remover integrante")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Integrante removido com sucesso", "integrante": i})
}

// -- funções

func (h *IntegranteHandler) ListFuncoes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Svc.ListFuncoes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao listar funções")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *IntegranteHandler) AddFuncao(w http.ResponseWriter, r *http.Request) {
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

func (h *IntegranteHandler) RemoveFuncao(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.RemoveFuncao(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "funcaoId"))
	if err != nil {
		writeError(w, h.Log, err, "Erro ao desvincular função")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"msg": "Função desvinculada com sucesso"})
}
