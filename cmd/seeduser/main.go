// cmd/seeduser/main.go — Crea o actualiza un usuario admin.
// Uso: go run ./cmd/seeduser -email admin@resto.com -password 1234
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"restogestion/internal/config"
	"restogestion/internal/infra"
	"restogestion/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	nombre := flag.String("nombre", "Admin", "nombre del usuario")
	email := flag.String("email", "admin@restogestion.local", "email de acceso")
	password := flag.String("password", "", "password en texto plano (obligatorio)")
	rol := flag.String("rol", model.RolAdmin, "rol: admin | chef | encargado")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("-password es obligatorio")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt")
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	u := model.Usuario{Nombre: *nombre, Email: *email, PasswordHash: string(hash), Rol: *rol}
	err = db.WithContext(context.Background()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "password", "rol"}),
	}).Create(&u).Error
	if err != nil {
		log.Fatal().Err(err).Msg("insert")
	}
	log.Info().Str("email", *email).Str("rol", *rol).Msg("usuario creado/actualizado")
}
