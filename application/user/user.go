package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	userrepo "github.com/muhammadheryan/contact-book/repository/user"
	"github.com/muhammadheryan/contact-book/utils/errors"
	"github.com/muhammadheryan/contact-book/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error)
	Authenticate(ctx context.Context, token string) (*model.UserEntity, error)
	Get(ctx context.Context, user *model.UserEntity) *model.UserResponse
	Update(ctx context.Context, user *model.UserEntity, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(ctx context.Context, user *model.UserEntity) error
}

type UserAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewUserApp(userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		userRepo: userRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	// Duplicate check by count so the conflict surfaces here, not as a
	// constraint violation from the store
	total, err := s.userRepo.Count(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if total != 0 {
		return nil, errors.SetCustomError(constant.ErrUsernameExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		Username: userEntity.Username,
		Name:     userEntity.Name,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Unknown username and wrong password answer identically
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	// Fresh opaque token; overwriting the stored one invalidates any
	// previously issued token for this user
	token := uuid.NewString()
	if err := s.userRepo.UpdateToken(ctx, user.Username, &token); err != nil {
		logger.Error("[Login] err userRepo.UpdateToken", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
	}, nil
}

// Authenticate resolves a raw bearer token to its user record. It reports
// (nil, nil) when no user matches; deciding whether anonymous is allowed
// is the caller's job.
func (s *UserAppImpl) Authenticate(ctx context.Context, token string) (*model.UserEntity, error) {
	if token == "" {
		return nil, nil
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Token: token})
	if err != nil {
		logger.Error("[Authenticate] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return user, nil
}

func (s *UserAppImpl) Get(ctx context.Context, user *model.UserEntity) *model.UserResponse {
	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

// Update applies a partial profile update: only supplied fields change,
// a supplied password is re-hashed.
func (s *UserAppImpl) Update(ctx context.Context, user *model.UserEntity, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	name := user.Name
	if req.Name != nil {
		name = *req.Name
	}

	passwordHash := user.PasswordHash
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[Update] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		passwordHash = string(hashed)
	}

	if err := s.userRepo.UpdateProfile(ctx, user.Username, name, passwordHash); err != nil {
		logger.Error("[Update] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserResponse{
		Username: user.Username,
		Name:     name,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, user *model.UserEntity) error {
	if err := s.userRepo.UpdateToken(ctx, user.Username, nil); err != nil {
		logger.Error("[Logout] err userRepo.UpdateToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
