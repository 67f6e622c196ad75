package postgres

import (
	"database/sql"

	"cycleclub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RegistrationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}
