package handler

import "lokalpro/internal/service"

type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Public   *PublicHandler
	Favorite *FavoriteHandler
	Admin    *AdminHandler
	Media    *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		User:     NewUserHandler(services.User),
		Public:   NewPublicHandler(services.Directory),
		Favorite: NewFavoriteHandler(services.Favorite),
		Admin:    NewAdminHandler(services.Moderation),
		Media:    NewMediaHandler(services.Media),
	}
}
