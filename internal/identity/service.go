package identity

import (
	"context"
	"errors"

	"cinecircle/internal/common"
	"cinecircle/internal/dbmysql"

	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID string) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID string, email, bio string, avatar *string) error
	Directory
}

type service struct {
	userRepo UserRepository
}

func NewService(userRepo UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", errors.New("username or email already exists")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Status:       "active",
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errors.New("email and password required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, email, bio string, avatar *string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if email != "" {
		if err := common.ValidateEmail(email); err != nil {
			return err
		}
		user.Email = email
	}
	if bio != "" {
		user.Bio = bio
	}
	if avatar != nil {
		user.Avatar = avatar
	}
	return s.userRepo.UpdateUser(ctx, user)
}

// Resolve implements Directory on top of the user table.
func (s *service) Resolve(ctx context.Context, userID string) (Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return Profile{ID: user.UserID, Username: user.Username, Avatar: user.Avatar}, nil
}
