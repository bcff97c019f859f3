package model

import "time"

// Public projections: the shapes that cross the HTTP boundary. Each entity
// has exactly one mapping function from the stored row, so list/get/create
// paths all return the same shape. IntegrantePublic structurally cannot
// carry the password hash.

type ArtistaPublic struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func ToArtistaPublic(a Artista) ArtistaPublic {
	return ArtistaPublic{ID: a.ID, Nome: a.Nome}
}

type CategoriaPublic struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func ToCategoriaPublic(c Categoria) CategoriaPublic {
	return CategoriaPublic{ID: c.ID, Nome: c.Nome}
}

type FuncaoPublic struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func ToFuncaoPublic(f Funcao) FuncaoPublic {
	return FuncaoPublic{ID: f.ID, Nome: f.Nome}
}

type TonalidadePublic struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func ToTonalidadePublic(t Tonalidade) TonalidadePublic {
	return TonalidadePublic{ID: t.ID, Nome: t.Nome}
}

type TipoEventoPublic struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func ToTipoEventoPublic(t TipoEvento) TipoEventoPublic {
	return TipoEventoPublic{ID: t.ID, Nome: t.Nome}
}

type VersaoPublic struct {
	ID         string         `json:"id"`
	MusicaID   string         `json:"musica_id"`
	BPM        *int           `json:"bpm"`
	Cifras     *string        `json:"cifras"`
	Letra      *string        `json:"letra"`
	LinkVersao *string        `json:"link_versao"`
	Artista    *ArtistaPublic `json:"artista"`
}

func ToVersaoPublic(v Versao) VersaoPublic {
	out := VersaoPublic{
		ID:         v.ID,
		MusicaID:   v.MusicaID,
		BPM:        v.BPM,
		Cifras:     v.Cifras,
		Letra:      v.Letra,
		LinkVersao: v.LinkVersao,
	}
	if v.Artista != nil {
		a := ToArtistaPublic(*v.Artista)
		out.Artista = &a
	}
	return out
}

type MusicaPublic struct {
	ID         string            `json:"id"`
	Nome       string            `json:"nome"`
	Tonalidade *TonalidadePublic `json:"tonalidade"`
	Versoes    []VersaoPublic    `json:"versoes"`
	Categorias []CategoriaPublic `json:"categorias"`
	Funcoes    []FuncaoPublic    `json:"funcoes"`
}

// ToMusicaPublic maps the song row plus whatever associations were loaded.
// Link-set slices come in separately because they live in join tables, not
// gorm relations on the row itself.
func ToMusicaPublic(m Musica, categorias []Categoria, funcoes []Funcao) MusicaPublic {
	out := MusicaPublic{
		ID:         m.ID,
		Nome:       m.Nome,
		Versoes:    make([]VersaoPublic, 0, len(m.Versoes)),
		Categorias: make([]CategoriaPublic, 0, len(categorias)),
		Funcoes:    make([]FuncaoPublic, 0, len(funcoes)),
	}
	if m.Tonalidade != nil {
		t := ToTonalidadePublic(*m.Tonalidade)
		out.Tonalidade = &t
	}
	for _, v := range m.Versoes {
		out.Versoes = append(out.Versoes, ToVersaoPublic(v))
	}
	for _, c := range categorias {
		out.Categorias = append(out.Categorias, ToCategoriaPublic(c))
	}
	for _, f := range funcoes {
		out.Funcoes = append(out.Funcoes, ToFuncaoPublic(f))
	}
	return out
}

// MusicaResumo is the flat id+nome projection used when songs appear as
// the related side of an association listing.
type MusicaResumo struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func ToMusicaResumo(m Musica) MusicaResumo {
	return MusicaResumo{ID: m.ID, Nome: m.Nome}
}

type IntegrantePublic struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Documento string  `json:"documento"`
	Email     string  `json:"email"`
	Telefone  *string `json:"telefone"`
}

func ToIntegrantePublic(i Integrante) IntegrantePublic {
	return IntegrantePublic{
		ID:        i.ID,
		Nome:      i.Nome,
		Documento: i.Documento,
		Email:     i.Email,
		Telefone:  i.Telefone,
	}
}

type EventoPublic struct {
	ID         string            `json:"id"`
	Data       time.Time         `json:"data"`
	Descricao  string            `json:"descricao"`
	TipoEvento *TipoEventoPublic `json:"tipo_evento"`
}

func ToEventoPublic(e Evento) EventoPublic {
	out := EventoPublic{
		ID:        e.ID,
		Data:      e.Data,
		Descricao: e.Descricao,
	}
	if e.TipoEvento != nil {
		t := ToTipoEventoPublic(*e.TipoEvento)
		out.TipoEvento = &t
	}
	return out
}
