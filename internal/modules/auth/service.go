package auth

import (
	"context"
	"strings"

	"hotel/internal/domain"
	"hotel/internal/pkg/errs"
	"hotel/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthResult struct {
	User  *domain.User
	Token string
}

// Service contains registration, login and profile logic.
type Service struct {
	users      UserRepository
	tokens     TokenIssuer
	log        *zap.Logger
	bcryptCost int
}

func NewService(users UserRepository, tokens TokenIssuer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		users:      users,
		tokens:     tokens,
		log:        log,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errs.Wrap(err, "check email")
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.RoleGuest,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// lost a race against another registration with the same email
		if errs.Is(err, repository.ErrConflict) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, errs.Wrap(err, "create user")
	}

	s.log.Info("user registered", zap.Int64("user_id", user.ID))
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errs.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, errs.Wrap(err, "update profile")
	}
	return user, nil
}

func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hash), nil
}
