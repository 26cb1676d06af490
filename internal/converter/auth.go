package converter

import (
	dto "roulette_backend/internal/api/dto/auth"
	"roulette_backend/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Login:    req.Login,
		Password: req.Password,
	}
}
