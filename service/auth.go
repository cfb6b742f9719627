package service

import (
	"context"

	apperrors "travel-webapp/errors"
	"travel-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Insert(ctx context.Context, user *model.User) error
}

// AuthService owns signup and credential verification.
type AuthService struct {
	users UserRepository
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account with a bcrypt hash of the password. The
// existence pre-check gives the friendly duplicate answer; the unique index
// behind the insert catches the two-signups-at-once race.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("username, email and password are required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Id:             primitive.NewObjectID(),
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyCredentials returns the account matching email and password. An
// unknown email and a wrong password produce the same error, so callers
// cannot probe which addresses have accounts.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}
