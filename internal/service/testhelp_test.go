package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"louvor/internal/apperr"
	"louvor/internal/db"
	"louvor/internal/logger"
	"louvor/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return gdb
}

func newServices(t *testing.T) (*Services, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return New(gdb, logger.NewNop()), gdb
}

func seedArtista(t *testing.T, gdb *gorm.DB, nome string) model.Artista {
	t.Helper()
	a := model.Artista{Nome: nome}
	if err := gdb.Create(&a).Error; err != nil {
		t.Fatalf("seed artista: %v", err)
	}
	return a
}

func seedCategoria(t *testing.T, gdb *gorm.DB, nome string) model.Categoria {
	t.Helper()
	c := model.Categoria{Nome: nome}
	if err := gdb.Create(&c).Error; err != nil {
		t.Fatalf("seed categoria: %v", err)
	}
	return c
}

func seedFuncao(t *testing.T, gdb *gorm.DB, nome string) model.Funcao {
	t.Helper()
	f := model.Funcao{Nome: nome}
	if err := gdb.Create(&f).Error; err != nil {
		t.Fatalf("seed funcao: %v", err)
	}
	return f
}

func seedTonalidade(t *testing.T, gdb *gorm.DB, nome string) model.Tonalidade {
	t.Helper()
	tom := model.Tonalidade{Nome: nome}
	if err := gdb.Create(&tom).Error; err != nil {
		t.Fatalf("seed tonalidade: %v", err)
	}
	return tom
}

func seedTipoEvento(t *testing.T, gdb *gorm.DB, nome string) model.TipoEvento {
	t.Helper()
	te := model.TipoEvento{Nome: nome}
	if err := gdb.Create(&te).Error; err != nil {
		t.Fatalf("seed tipo evento: %v", err)
	}
	return te
}

func seedMusica(t *testing.T, gdb *gorm.DB, nome string) model.Musica {
	t.Helper()
	m := model.Musica{Nome: nome}
	if err := gdb.Create(&m).Error; err != nil {
		t.Fatalf("seed musica: %v", err)
	}
	return m
}

func mustCreateIntegrante(t *testing.T, svcs *Services, nome, documento string) model.IntegrantePublic {
	t.Helper()
	i, err := svcs.Integrantes.Create(context.Background(), IntegranteInput{
		Nome:      nome,
		Documento: documento,
		Email:     nome + "@example.com",
		Senha:     "segredo123",
	})
	if err != nil {
		t.Fatalf("create integrante: %v", err)
	}
	return *i
}

func asAppErr(err error) (*apperr.Error, bool) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func wantAppErr(t *testing.T, err error, status int, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %d %q, got nil", status, msg)
	}
	ae, ok := asAppErr(err)
	if !ok {
		t.Fatalf("expected apperr, got %T: %v", err, err)
	}
	if ae.Status != status {
		t.Fatalf("expected status %d, got %d (%v)", status, ae.Status, ae.Messages)
	}
	if msg != "" && (len(ae.Messages) == 0 || ae.Messages[0] != msg) {
		t.Fatalf("expected message %q, got %v", msg, ae.Messages)
	}
}
