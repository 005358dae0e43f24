package service

import (
	"go-catalog-api/internal/apperror"
	"go-catalog-api/internal/model"
	"go-catalog-api/pkg/jwt"
)

type AuthService interface {
	Login(username, password string) (string, error)
}

type authService struct {
	users  []model.User
	secret string
}

// NewAuthService builds an AuthService over the users loaded at boot. The
// user set is read-only reference data; nothing here mutates it.
func NewAuthService(users []model.User, secret string) AuthService {
	return &authService{users: users, secret: secret}
}

// Login matches credentials against the loaded users and issues a session
// token. Unknown username and wrong password collapse into the same 401.
func (s *authService) Login(username, password string) (string, error) {
	for i := range s.users {
		u := &s.users[i]
		if u.Username == username && u.CheckPassword(password) {
			token, err := jwt.Generate(u.ID, u.Username, u.Role, s.secret)
			if err != nil {
				return "", apperror.Internal("failed to generate token")
			}
			return token, nil
		}
	}
	return "", apperror.Unauthorized("invalid credentials")
}
