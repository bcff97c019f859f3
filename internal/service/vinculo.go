package service

import (
	"context"
	"strings"

	"louvor/internal/apperr"
	"louvor/internal/repo"
)

const (
	msgRegistroDuplicado     = "Registro duplicado"
	msgRegistroNaoEncontrado = "Registro não encontrado"
)

// vinculo implements the uniform association contract shared by every
// many-to-many pair. The check order on add is fixed: related id present,
// owner exists, related exists, pair not yet linked. Tests assert on which
// error fires first, so the order is part of the contract.
type vinculo struct {
	msgOwnerIDObrigatorio   string
	msgRelatedIDObrigatorio string
	msgOwnerNaoEncontrado   string
	msgRelatedNaoEncontrado string

	ownerExists   func(ctx context.Context, id string) (bool, error)
	relatedExists func(ctx context.Context, id string) (bool, error)
	findLinkID    func(ctx context.Context, ownerID, relatedID string) (string, bool, error)
	insertLink    func(ctx context.Context, ownerID, relatedID string) error
	deleteLink    func(ctx context.Context, linkID string) error
}

func (v *vinculo) add(ctx context.Context, ownerID, relatedID string) error {
	ownerID = strings.TrimSpace(ownerID)
	relatedID = strings.TrimSpace(relatedID)
	if ownerID == "" {
		return apperr.BadRequest(v.msgOwnerIDObrigatorio)
	}
	if relatedID == "" {
		return apperr.BadRequest(v.msgRelatedIDObrigatorio)
	}

	ok, err := v.ownerExists(ctx, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(v.msgOwnerNaoEncontrado)
	}

	ok, err = v.relatedExists(ctx, relatedID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(v.msgRelatedNaoEncontrado)
	}

	if _, found, err := v.findLinkID(ctx, ownerID, relatedID); err != nil {
		return err
	} else if found {
		return apperr.Conflict(msgRegistroDuplicado)
	}

	if err := v.insertLink(ctx, ownerID, relatedID); err != nil {
		if repo.IsUniqueViolation(err) {
			return apperr.Conflict(msgRegistroDuplicado)
		}
		return err
	}
	return nil
}

// remove deletes the link row found by the natural pair key. 404 when the
// pair is not linked, regardless of whether the ids themselves exist.
func (v *vinculo) remove(ctx context.Context, ownerID, relatedID string) error {
	ownerID = strings.TrimSpace(ownerID)
	relatedID = strings.TrimSpace(relatedID)
	if ownerID == "" {
		return apperr.BadRequest(v.msgOwnerIDObrigatorio)
	}
	if relatedID == "" {
		return apperr.BadRequest(v.msgRelatedIDObrigatorio)
	}

	linkID, found, err := v.findLinkID(ctx, ownerID, relatedID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound(msgRegistroNaoEncontrado)
	}
	return v.deleteLink(ctx, linkID)
}
