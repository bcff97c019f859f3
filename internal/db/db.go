package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"louvor/internal/model"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates the schema. Pair-unique indexes come from the model tags;
// deleting a song cascades to its versions and link rows via the declared
// foreign keys, not application logic.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Tonalidade{},
		&model.Artista{},
		&model.Categoria{},
		&model.Funcao{},
		&model.TipoEvento{},
		&model.Musica{},
		&model.Versao{},
		&model.Integrante{},
		&model.Evento{},
		&model.MusicaCategoria{},
		&model.MusicaFuncao{},
		&model.IntegranteFuncao{},
		&model.EventoMusica{},
		&model.EventoIntegrante{},
	)
}
