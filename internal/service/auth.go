package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/blueprint-system/internal/model"
	"github.com/mmeshcher/blueprint-system/internal/repository"
)

// UserRepository описывает контракт доступа к данным пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, username string, passwordHash []byte) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SetUserLogin(ctx context.Context, username string, isLogin bool) error
}

// TokenCodec описывает контракт выпуска и проверки токенов сессии.
type TokenCodec interface {
	Issue(username string) (string, error)
	Decode(tokenString string) (string, error)
}

// AuthService реализует регистрацию, вход и выход пользователей.
type AuthService struct {
	users  UserRepository
	codec  TokenCodec
	logger *zap.Logger
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(users UserRepository, codec TokenCodec, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		codec:  codec,
		logger: logger,
	}
}

const msgInternal = "Internal server error."

// Register регистрирует нового пользователя. Пароль сохраняется только
// в виде bcrypt-хеша, хеш наружу не возвращается.
func (s *AuthService) Register(ctx context.Context, username, password string) Result {
	if username == "" || password == "" {
		return failResult(StatusBadRequest, "Username and password are required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	u, err := s.users.CreateUser(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return failResult(StatusConflict, fmt.Sprintf("User name '%s' already exists.", username))
		}
		s.logger.Error("register user error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	return okResult("User registered successfully.", newUserView(u))
}

// Login проверяет учётные данные, выпускает токен и выставляет флаг
// активной сессии. Отсутствие пользователя и неверный пароль дают
// одинаковый ответ, чтобы не раскрывать существующие имена.
func (s *AuthService) Login(ctx context.Context, username, password string) Result {
	if username == "" || password == "" {
		return failResult(StatusBadRequest, "Invalid credentials.")
	}

	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return failResult(StatusBadRequest, "Invalid credentials.")
		}
		s.logger.Error("login user error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return failResult(StatusBadRequest, "Invalid credentials.")
	}

	t, err := s.codec.Issue(u.Username)
	if err != nil {
		s.logger.Error("issue token error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	if err := s.users.SetUserLogin(ctx, u.Username, true); err != nil {
		s.logger.Error("set login flag error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	res := okResult("Login successfully.", nil)
	res.Token = t
	return res
}

// Logout снимает флаг активной сессии. Токен при этом остаётся структурно
// валидным до истечения срока, но авторизацию больше не проходит.
func (s *AuthService) Logout(ctx context.Context, tokenString string) Result {
	username := s.UsernameFromToken(tokenString)
	if username == "" {
		return failResult(StatusBadRequest, "Invalid token.")
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return failResult(StatusNotFound, "User not found or not logged in.")
		}
		s.logger.Error("logout user error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	if err := s.users.SetUserLogin(ctx, username, false); err != nil {
		s.logger.Error("reset login flag error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	return okResult("Logout successfully.", nil)
}

// UsernameFromToken извлекает имя пользователя из токена. На любом
// некорректном входе возвращает пустую строку, ошибок не поднимает.
func (s *AuthService) UsernameFromToken(tokenString string) string {
	username, err := s.codec.Decode(tokenString)
	if err != nil {
		s.logger.Debug("token decode failed", zap.Error(err))
		return ""
	}
	return username
}
