package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"louvor/internal/model"
)

func TestMusicaCreateRequiresNome(t *testing.T) {
	svcs, _ := newServices(t)

	_, err := svcs.Musicas.Create(context.Background(), MusicaInput{Nome: "   "})
	wantAppErr(t, err, http.StatusBadRequest, "Nome da música é obrigatório")
}

func TestMusicaCreateWithTonalidade(t *testing.T) {
	svcs, gdb := newServices(t)
	tom := seedTonalidade(t, gdb, "D")

	pub, err := svcs.Musicas.Create(context.Background(), MusicaInput{
		Nome:         "Grande É o Senhor",
		TonalidadeID: &tom.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if pub.Tonalidade == nil || pub.Tonalidade.Nome != "D" {
		t.Fatalf("expected tonalidade D, got %+v", pub.Tonalidade)
	}
	if pub.Versoes == nil || len(pub.Versoes) != 0 {
		t.Fatalf("expected empty non-nil versoes, got %#v", pub.Versoes)
	}
}

func TestMusicaCreateUnknownTonalidade(t *testing.T) {
	svcs, _ := newServices(t)

	id := uuid.NewString()
	_, err := svcs.Musicas.Create(context.Background(), MusicaInput{
		Nome:         "Aleluia",
		TonalidadeID: &id,
	})
	wantAppErr(t, err, http.StatusNotFound, "Tonalidade não encontrada")
}

func TestMusicaGetByID(t *testing.T) {
	svcs, gdb := newServices(t)
	m := seedMusica(t, gdb, "Quão Grande É o Meu Deus")

	t.Run("encontrada", func(t *testing.T) {
		pub, err := svcs.Musicas.GetByID(context.Background(), m.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if pub.Nome != m.Nome {
			t.Fatalf("expected %q, got %q", m.Nome, pub.Nome)
		}
	})

	t.Run("id vazio", func(t *testing.T) {
		_, err := svcs.Musicas.GetByID(context.Background(), "  ")
		wantAppErr(t, err, http.StatusBadRequest, "ID da música não enviado")
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := svcs.Musicas.GetByID(context.Background(), uuid.NewString())
		wantAppErr(t, err, http.StatusNotFound, "Música não encontrada")
	})
}

func TestMusicaUpdateClearsTonalidade(t *testing.T) {
	svcs, gdb := newServices(t)
	tom := seedTonalidade(t, gdb, "G")

	pub, err := svcs.Musicas.Create(context.Background(), MusicaInput{
		Nome:         "Tua Graça Me Basta",
		TonalidadeID: &tom.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svcs.Musicas.Update(context.Background(), pub.ID, MusicaUpdateInput{
		Nome:       "Tua Graça Me Basta",
		Tonalidade: model.Null[string](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Tonalidade != nil {
		t.Fatalf("expected tonalidade cleared, got %+v", updated.Tonalidade)
	}
}

func TestMusicaUpdateAbsentTonalidadeUntouched(t *testing.T) {
	svcs, gdb := newServices(t)
	tom := seedTonalidade(t, gdb, "E")

	pub, err := svcs.Musicas.Create(context.Background(), MusicaInput{
		Nome:         "Oceanos",
		TonalidadeID: &tom.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svcs.Musicas.Update(context.Background(), pub.ID, MusicaUpdateInput{
		Nome: "Oceanos (Onde Meus Pés Podem Falhar)",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Nome != "Oceanos (Onde Meus Pés Podem Falhar)" {
		t.Fatalf("nome not updated: %q", updated.Nome)
	}
	if updated.Tonalidade == nil || updated.Tonalidade.ID != tom.ID {
		t.Fatalf("expected tonalidade untouched, got %+v", updated.Tonalidade)
	}
}

func TestMusicaDeleteReturnsAggregate(t *testing.T) {
	svcs, gdb := newServices(t)
	m := seedMusica(t, gdb, "Descansarei")
	a := seedArtista(t, gdb, "Lauren Daigle")

	if _, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{ArtistaID: a.ID}); err != nil {
		t.Fatalf("add versao: %v", err)
	}

	pub, err := svcs.Musicas.Delete(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if pub.ID != m.ID || len(pub.Versoes) != 1 {
		t.Fatalf("expected pre-delete aggregate with 1 versao, got %+v", pub)
	}

	if _, err := svcs.Musicas.GetByID(context.Background(), m.ID); err == nil {
		t.Fatal("expected 404 after delete")
	}
	var versoes int64
	if err := gdb.Model(&model.Versao{}).Where("musica_id = ?", m.ID).Count(&versoes).Error; err != nil {
		t.Fatalf("count versoes: %v", err)
	}
	if versoes != 0 {
		t.Fatalf("expected cascade to remove versoes, found %d", versoes)
	}
}

func TestMusicaListPagination(t *testing.T) {
	svcs, gdb := newServices(t)
	for i := 0; i < 25; i++ {
		seedMusica(t, gdb, fmt.Sprintf("Hino %02d", i))
	}

	page1, err := svcs.Musicas.List(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(page1.Items) != 20 {
		t.Fatalf("expected default page size 20, got %d", len(page1.Items))
	}
	if page1.Meta.Total != 25 || page1.Meta.TotalPages != 2 || page1.Meta.PerPage != 20 {
		t.Fatalf("unexpected meta: %+v", page1.Meta)
	}

	page2, err := svcs.Musicas.List(context.Background(), 2, 20)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2.Items) != 5 || page2.Meta.Page != 2 {
		t.Fatalf("expected 5 items on page 2, got %d (meta %+v)", len(page2.Items), page2.Meta)
	}

	clamped, err := svcs.Musicas.List(context.Background(), -3, 9999)
	if err != nil {
		t.Fatalf("list clamped: %v", err)
	}
	if clamped.Meta.Page != 1 || clamped.Meta.PerPage != 100 {
		t.Fatalf("expected page/limit clamped to 1/100, got %+v", clamped.Meta)
	}
}

func TestCreateCompleteArtistOnlyVersion(t *testing.T) {
	svcs, gdb := newServices(t)
	a := seedArtista(t, gdb, "Fernandinho")

	pub, err := svcs.Musicas.CreateComplete(context.Background(), MusicaCompleteInput{
		Nome:      "Uma Nova História",
		ArtistaID: &a.ID,
	})
	if err != nil {
		t.Fatalf("create complete: %v", err)
	}
	if len(pub.Versoes) != 1 {
		t.Fatalf("expected 1 versao, got %d", len(pub.Versoes))
	}
	v := pub.Versoes[0]
	if v.BPM != nil || v.Cifras != nil || v.Letra != nil || v.LinkVersao != nil {
		t.Fatalf("expected arrangement fields null, got %+v", v)
	}
	if v.Artista == nil || v.Artista.ID != a.ID {
		t.Fatalf("expected artista %s, got %+v", a.ID, v.Artista)
	}
}

func TestCreateCompleteVersionFieldsWithoutArtista(t *testing.T) {
	svcs, gdb := newServices(t)

	bpm := 72
	_, err := svcs.Musicas.CreateComplete(context.Background(), MusicaCompleteInput{
		Nome: "Raridade",
		BPM:  &bpm,
	})
	wantAppErr(t, err, http.StatusBadRequest, "Artista é obrigatório para criar uma versão")

	var n int64
	if err := gdb.Model(&model.Musica{}).Count(&n).Error; err != nil {
		t.Fatalf("count musicas: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no song persisted, found %d", n)
	}
}

func TestCreateCompleteWithLinks(t *testing.T) {
	svcs, gdb := newServices(t)
	a := seedArtista(t, gdb, "Gabriela Rocha")
	c1 := seedCategoria(t, gdb, "Adoração")
	c2 := seedCategoria(t, gdb, "Congregacional")
	f1 := seedFuncao(t, gdb, "Violão")

	letra := "Creio que Tu és a cura"
	pub, err := svcs.Musicas.CreateComplete(context.Background(), MusicaCompleteInput{
		Nome:      "Creio",
		ArtistaID: &a.ID,
		Letra:     &letra,
		// duplicated id must collapse to a single link
		CategoriaIDs: []string{c1.ID, c2.ID, c1.ID},
		FuncaoIDs:    []string{f1.ID},
	})
	if err != nil {
		t.Fatalf("create complete: %v", err)
	}
	if len(pub.Categorias) != 2 || len(pub.Funcoes) != 1 {
		t.Fatalf("expected 2 categorias and 1 funcao, got %d/%d", len(pub.Categorias), len(pub.Funcoes))
	}
	if pub.Versoes[0].Letra == nil || *pub.Versoes[0].Letra != letra {
		t.Fatalf("expected letra persisted, got %+v", pub.Versoes[0].Letra)
	}
}

func TestCreateCompleteUnknownCategoriaRollsBack(t *testing.T) {
	svcs, gdb := newServices(t)
	c := seedCategoria(t, gdb, "Celebração")

	_, err := svcs.Musicas.CreateComplete(context.Background(), MusicaCompleteInput{
		Nome:         "Teu Santo Nome",
		CategoriaIDs: []string{c.ID, uuid.NewString()},
	})
	wantAppErr(t, err, http.StatusNotFound, "Uma ou mais categorias não foram encontradas")

	var n int64
	if err := gdb.Model(&model.Musica{}).Count(&n).Error; err != nil {
		t.Fatalf("count musicas: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected nothing persisted, found %d", n)
	}
}

func TestUpdateCompleteRequiresNome(t *testing.T) {
	svcs, gdb := newServices(t)
	m := seedMusica(t, gdb, "Em Teus Braços")

	_, err := svcs.Musicas.UpdateComplete(context.Background(), m.ID, MusicaCompleteUpdateInput{})
	wantAppErr(t, err, http.StatusBadRequest, "Nome da música é obrigatório")
}

func TestUpdateCompleteReplacesLinks(t *testing.T) {
	svcs, gdb := newServices(t)
	c1 := seedCategoria(t, gdb, "Abertura")
	c2 := seedCategoria(t, gdb, "Ofertório")
	m := seedMusica(t, gdb, "Santo Espírito")

	if err := svcs.Musicas.AddCategoria(context.Background(), m.ID, c1.ID); err != nil {
		t.Fatalf("add categoria: %v", err)
	}

	nome := "Santo Espírito"
	pub, err := svcs.Musicas.UpdateComplete(context.Background(), m.ID, MusicaCompleteUpdateInput{
		Nome:         &nome,
		CategoriaIDs: &[]string{c2.ID},
	})
	if err != nil {
		t.Fatalf("update complete: %v", err)
	}
	if len(pub.Categorias) != 1 || pub.Categorias[0].ID != c2.ID {
		t.Fatalf("expected link set replaced by %s, got %+v", c2.ID, pub.Categorias)
	}
}

func TestUpdateCompleteEmptyListClearsLinks(t *testing.T) {
	svcs, gdb := newServices(t)
	c := seedCategoria(t, gdb, "Comunhão")
	m := seedMusica(t, gdb, "Vim Para Adorar-Te")

	if err := svcs.Musicas.AddCategoria(context.Background(), m.ID, c.ID); err != nil {
		t.Fatalf("add categoria: %v", err)
	}

	nome := "Vim Para Adorar-Te"
	pub, err := svcs.Musicas.UpdateComplete(context.Background(), m.ID, MusicaCompleteUpdateInput{
		Nome:         &nome,
		CategoriaIDs: &[]string{},
	})
	if err != nil {
		t.Fatalf("update complete: %v", err)
	}
	if len(pub.Categorias) != 0 {
		t.Fatalf("expected all links cleared, got %+v", pub.Categorias)
	}
}

func TestUpdateCompleteVersaoFields(t *testing.T) {
	svcs, gdb := newServices(t)
	a := seedArtista(t, gdb, "Aline Barros")
	m := seedMusica(t, gdb, "Ressuscita-me")

	bpm := 68
	v, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{ArtistaID: a.ID, BPM: &bpm})
	if err != nil {
		t.Fatalf("add versao: %v", err)
	}

	nome := "Ressuscita-me"
	cifras := "Am F C G"
	pub, err := svcs.Musicas.UpdateComplete(context.Background(), m.ID, MusicaCompleteUpdateInput{
		Nome:     &nome,
		VersaoID: &v.ID,
		BPM:      model.Null[int](),
		Cifras:   model.Some(cifras),
	})
	if err != nil {
		t.Fatalf("update complete: %v", err)
	}
	got := pub.Versoes[0]
	if got.BPM != nil {
		t.Fatalf("expected bpm cleared, got %v", *got.BPM)
	}
	if got.Cifras == nil || *got.Cifras != cifras {
		t.Fatalf("expected cifras %q, got %+v", cifras, got.Cifras)
	}
}

func TestUpdateCompleteVersaoOfOtherSong(t *testing.T) {
	svcs, gdb := newServices(t)
	a := seedArtista(t, gdb, "Morada")
	m1 := seedMusica(t, gdb, "É Tudo Sobre Você")
	m2 := seedMusica(t, gdb, "Só Tu És Santo")

	v, err := svcs.Musicas.AddVersao(context.Background(), m1.ID, VersaoInput{ArtistaID: a.ID})
	if err != nil {
		t.Fatalf("add versao: %v", err)
	}

	nome := "Só Tu És Santo"
	_, err = svcs.Musicas.UpdateComplete(context.Background(), m2.ID, MusicaCompleteUpdateInput{
		Nome:     &nome,
		VersaoID: &v.ID,
	})
	wantAppErr(t, err, http.StatusNotFound, "Versão não encontrada")
}

func TestAddVersaoRules(t *testing.T) {
	svcs, gdb := newServices(t)
	a := seedArtista(t, gdb, "Diante do Trono")
	m := seedMusica(t, gdb, "Águas Purificadoras")

	t.Run("artista obrigatório", func(t *testing.T) {
		_, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{})
		wantAppErr(t, err, http.StatusBadRequest, "Artista é obrigatório para criar uma versão")
	})

	t.Run("artista inexistente", func(t *testing.T) {
		_, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{ArtistaID: uuid.NewString()})
		wantAppErr(t, err, http.StatusNotFound, "Artista não encontrado")
	})

	t.Run("duplicada", func(t *testing.T) {
		if _, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{ArtistaID: a.ID}); err != nil {
			t.Fatalf("first add: %v", err)
		}
		_, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{ArtistaID: a.ID})
		wantAppErr(t, err, http.StatusConflict, "Registro duplicado")
	})
}

func TestRemoveVersao(t *testing.T) {
	svcs, gdb := newServices(t)
	a := seedArtista(t, gdb, "Isadora Pompeo")
	m := seedMusica(t, gdb, "Pra Te Adorar")

	v, err := svcs.Musicas.AddVersao(context.Background(), m.ID, VersaoInput{ArtistaID: a.ID})
	if err != nil {
		t.Fatalf("add versao: %v", err)
	}

	if err := svcs.Musicas.RemoveVersao(context.Background(), m.ID, uuid.NewString()); err == nil {
		t.Fatal("expected 404 for unknown versao")
	}
	if err := svcs.Musicas.RemoveVersao(context.Background(), m.ID, v.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	rows, err := svcs.Musicas.ListVersoes(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("list versoes: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no versoes left, got %d", len(rows))
	}
}

func TestMusicaCategoriaAssociation(t *testing.T) {
	svcs, gdb := newServices(t)
	c := seedCategoria(t, gdb, "Santa Ceia")
	m := seedMusica(t, gdb, "Eis-me Aqui")
	ctx := context.Background()

	t.Run("categoria obrigatória", func(t *testing.T) {
		err := svcs.Musicas.AddCategoria(ctx, m.ID, " ")
		wantAppErr(t, err, http.StatusBadRequest, "ID da categoria não enviado")
	})

	t.Run("música inexistente", func(t *testing.T) {
		err := svcs.Musicas.AddCategoria(ctx, uuid.NewString(), c.ID)
		wantAppErr(t, err, http.StatusNotFound, "Música não encontrada")
	})

	t.Run("categoria inexistente", func(t *testing.T) {
		err := svcs.Musicas.AddCategoria(ctx, m.ID, uuid.NewString())
		wantAppErr(t, err, http.StatusNotFound, "Categoria não encontrada")
	})

	t.Run("vincular e duplicar", func(t *testing.T) {
		if err := svcs.Musicas.AddCategoria(ctx, m.ID, c.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
		err := svcs.Musicas.AddCategoria(ctx, m.ID, c.ID)
		wantAppErr(t, err, http.StatusConflict, "Registro duplicado")
	})

	t.Run("remover", func(t *testing.T) {
		if err := svcs.Musicas.RemoveCategoria(ctx, m.ID, c.ID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		err := svcs.Musicas.RemoveCategoria(ctx, m.ID, c.ID)
		wantAppErr(t, err, http.StatusNotFound, "Registro não encontrado")
	})
}
