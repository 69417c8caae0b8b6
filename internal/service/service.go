package service

import (
	"github.com/redis/go-redis/v9"

	"lokalpro/internal/config"
	"lokalpro/internal/repository"
	"lokalpro/internal/service/auth"
	"lokalpro/internal/service/directory"
	"lokalpro/internal/service/email"
	"lokalpro/internal/service/favorite"
	"lokalpro/internal/service/media"
	"lokalpro/internal/service/moderation"
	"lokalpro/internal/service/user"
	"lokalpro/internal/storage"
)

type Services struct {
	Auth       auth.Service
	User       user.Service
	Directory  directory.Service
	Favorite   favorite.Service
	Media      media.Service
	Moderation moderation.Service
	Email      email.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, store storage.Storage, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	userService := user.NewService(repos.User)
	directoryService := directory.NewService(repos.Profile, redisClient)
	favoriteService := favorite.NewService(repos.Favorite, repos.Profile)
	mediaService := media.NewService(repos.Profile, store, redisClient)
	moderationService := moderation.NewService(repos.Profile, redisClient)

	return &Services{
		Auth:       authService,
		User:       userService,
		Directory:  directoryService,
		Favorite:   favoriteService,
		Media:      mediaService,
		Moderation: moderationService,
		Email:      emailService,
	}
}
