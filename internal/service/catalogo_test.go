package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestCatalogoCreate(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	t.Run("nome obrigatório", func(t *testing.T) {
		_, err := svcs.Categorias.Create(ctx, "  ")
		wantAppErr(t, err, http.StatusBadRequest, "Nome da categoria é obrigatório")
	})

	t.Run("cria com nome normalizado", func(t *testing.T) {
		c, err := svcs.Categorias.Create(ctx, "  Adoração  ")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.Nome != "Adoração" {
			t.Fatalf("expected trimmed nome, got %q", c.Nome)
		}
		if c.ID == "" {
			t.Fatal("expected generated id")
		}
	})

	t.Run("nome duplicado", func(t *testing.T) {
		_, err := svcs.Categorias.Create(ctx, "Adoração")
		wantAppErr(t, err, http.StatusConflict, "Já existe uma categoria com esse nome")
	})
}

func TestCatalogoListOrdering(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	for _, nome := range []string{"Voz", "Bateria", "Teclado"} {
		if _, err := svcs.Funcoes.Create(ctx, nome); err != nil {
			t.Fatalf("create %s: %v", nome, err)
		}
	}

	rows, err := svcs.Funcoes.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Nome != "Bateria" || rows[2].Nome != "Voz" {
		t.Fatalf("expected alphabetical order, got %+v", rows)
	}
}

func TestCatalogoGetByID(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	a, err := svcs.Artistas.Create(ctx, "Hillsong")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("id vazio", func(t *testing.T) {
		_, err := svcs.Artistas.GetByID(ctx, "")
		wantAppErr(t, err, http.StatusBadRequest, "ID do artista não enviado")
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := svcs.Artistas.GetByID(ctx, uuid.NewString())
		wantAppErr(t, err, http.StatusNotFound, "Artista não encontrado")
	})

	t.Run("encontrado", func(t *testing.T) {
		got, err := svcs.Artistas.GetByID(ctx, a.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Nome != "Hillsong" {
			t.Fatalf("expected Hillsong, got %q", got.Nome)
		}
	})
}

func TestCatalogoUpdate(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	tom, err := svcs.Tonalidades.Create(ctx, "C")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other, err := svcs.Tonalidades.Create(ctx, "Dm")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("id precede nome", func(t *testing.T) {
		_, err := svcs.Tonalidades.Update(ctx, "", "")
		wantAppErr(t, err, http.StatusBadRequest, "ID da tonalidade não enviado")
	})

	t.Run("existência precede nome", func(t *testing.T) {
		_, err := svcs.Tonalidades.Update(ctx, uuid.NewString(), "")
		wantAppErr(t, err, http.StatusNotFound, "Tonalidade não encontrada")
	})

	t.Run("nome obrigatório", func(t *testing.T) {
		_, err := svcs.Tonalidades.Update(ctx, tom.ID, " ")
		wantAppErr(t, err, http.StatusBadRequest, "Nome da tonalidade é obrigatório")
	})

	t.Run("colisão com outro registro", func(t *testing.T) {
		_, err := svcs.Tonalidades.Update(ctx, tom.ID, other.Nome)
		wantAppErr(t, err, http.StatusConflict, "Já existe uma tonalidade com esse nome")
	})

	t.Run("renomear para o próprio nome", func(t *testing.T) {
		got, err := svcs.Tonalidades.Update(ctx, tom.ID, "C")
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Nome != "C" {
			t.Fatalf("expected C, got %q", got.Nome)
		}
	})

	t.Run("renomear", func(t *testing.T) {
		got, err := svcs.Tonalidades.Update(ctx, tom.ID, "Cm")
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.Nome != "Cm" {
			t.Fatalf("expected Cm, got %q", got.Nome)
		}
	})
}

func TestCatalogoDeleteReturnsRow(t *testing.T) {
	svcs, _ := newServices(t)
	ctx := context.Background()

	te, err := svcs.TiposEventos.Create(ctx, "Culto de Domingo")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := svcs.TiposEventos.Delete(ctx, te.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != te.ID || removed.Nome != "Culto de Domingo" {
		t.Fatalf("expected pre-delete row, got %+v", removed)
	}

	_, err = svcs.TiposEventos.Delete(ctx, te.ID)
	wantAppErr(t, err, http.StatusNotFound, "Tipo de evento não encontrado")
}
