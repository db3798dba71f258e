package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comanda_api/internal/model"
	"comanda_api/internal/repository"
	"comanda_api/internal/utils"
)

var (
	ErrEmailJaRegistrado = errors.New("email já registrado")
	ErrUsuarioNotFound   = errors.New("usuário não encontrado")
	ErrSenhaIncorreta    = errors.New("senha incorreta")
)

// AuthResult is what both auth operations hand back to the API layer:
// a bearer token plus the display data the dashboard needs.
type AuthResult struct {
	Token string  `json:"token"`
	Nome  string  `json:"nome"`
	Foto  *string `json:"foto"` // data URI, or null when no photo was uploaded
}

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, nome, email, senha string, foto []byte, fotoTipo string) (*AuthResult, error)
	Login(ctx context.Context, email, senha string) (*AuthResult, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new restaurant account and issues a session token
func (s *authService) Register(ctx context.Context, nome, email, senha string, foto []byte, fotoTipo string) (*AuthResult, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailJaRegistrado
	}

	senhaHash, err := utils.HashPassword(senha)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Nome:      nome,
		Email:     email,
		SenhaHash: senhaHash,
		CreatedAt: time.Now(),
	}
	if len(foto) > 0 {
		user.Foto = foto
		user.FotoTipo = &fotoTipo
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Backstop for a concurrent registration racing past the pre-check;
		// the unique index on email is authoritative.
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrEmailJaRegistrado
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return &AuthResult{
		Token: token,
		Nome:  user.Nome,
		Foto:  utils.FotoDataURI(user.Foto, user.FotoTipo),
	}, nil
}

// Login verifies credentials and issues a session token
func (s *authService) Login(ctx context.Context, email, senha string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, ErrUsuarioNotFound
	}

	if !utils.CheckPasswordHash(senha, user.SenhaHash) {
		return nil, ErrSenhaIncorreta
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		Token: token,
		Nome:  user.Nome,
		Foto:  utils.FotoDataURI(user.Foto, user.FotoTipo),
	}, nil
}
