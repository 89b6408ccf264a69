package authService

import (
	"ShopMate/internal/api/auth"
	authRepository "ShopMate/internal/api/auth/repository"
	"ShopMate/internal/entity"
	"ShopMate/pkg/bcrypt"
	"ShopMate/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Register(c context.Context, req auth.RegisterUserRequest) error
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Profile(c context.Context, user entity.UserLoginData) (auth.ProfileResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils) AuthService {
	return &authService{
		log:            log,
		authRepository: repo,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
