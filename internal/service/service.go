package service

import (
	"strings"

	"gorm.io/gorm"

	"louvor/internal/logger"
	"louvor/internal/model"
	"louvor/internal/repo"
)

// Services bundles the domain layer. Everything is constructed once at
// process start and injected; no package-level state.
type Services struct {
	Musicas      *MusicaService
	Artistas     *CatalogoService[model.Artista, model.ArtistaPublic]
	Categorias   *CatalogoService[model.Categoria, model.CategoriaPublic]
	Funcoes      *CatalogoService[model.Funcao, model.FuncaoPublic]
	Tonalidades  *CatalogoService[model.Tonalidade, model.TonalidadePublic]
	TiposEventos *CatalogoService[model.TipoEvento, model.TipoEventoPublic]
	Integrantes  *IntegranteService
	Eventos      *EventoService
}

func New(db *gorm.DB, log *logger.Logger) *Services {
	musicas := repo.NewMusicaRepo(db)
	versoes := repo.NewVersaoRepo(db)
	artistas := repo.NewArtistaRepo(db)
	categorias := repo.NewCategoriaRepo(db)
	funcoes := repo.NewFuncaoRepo(db)
	tonalidades := repo.NewTonalidadeRepo(db)
	tiposEventos := repo.NewTipoEventoRepo(db)
	integrantes := repo.NewIntegranteRepo(db)
	eventos := repo.NewEventoRepo(db)

	return &Services{
		Musicas:      NewMusicaService(db, log, musicas, versoes, artistas, categorias, funcoes, tonalidades),
		Artistas:     NewArtistaService(artistas, log),
		Categorias:   NewCategoriaService(categorias, log),
		Funcoes:      NewFuncaoService(funcoes, log),
		Tonalidades:  NewTonalidadeService(tonalidades, log),
		TiposEventos: NewTipoEventoService(tiposEventos, log),
		Integrantes:  NewIntegranteService(integrantes, funcoes, log),
		Eventos:      NewEventoService(eventos, tiposEventos, musicas, integrantes, log),
	}
}

// dedupIDs trims, drops empties and keeps first occurrence, preserving order.
func dedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
