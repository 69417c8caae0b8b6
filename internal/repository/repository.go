package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User       UserRepository
	Profile    ProfileRepository
	AdminGrant AdminGrantRepository
	Favorite   FavoriteRepository
	Session    SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Profile:    NewProfileRepository(db),
		AdminGrant: NewAdminGrantRepository(db),
		Favorite:   NewFavoriteRepository(db),
		Session:    NewSessionRepository(db),
	}
}
