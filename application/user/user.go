package user

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/oleksandr-romashko/contacts-api/cmd/config"
	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/model"
	contactrepo "github.com/oleksandr-romashko/contacts-api/repository/contact"
	redisrepo "github.com/oleksandr-romashko/contacts-api/repository/redis"
	userrepo "github.com/oleksandr-romashko/contacts-api/repository/user"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
	"github.com/oleksandr-romashko/contacts-api/utils/logger"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	Profile(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type UserAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	contactRepo contactrepo.ContactRepository
	redisRepo   redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, contactRepo contactrepo.ContactRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:      config,
		userRepo:    userRepo,
		contactRepo: contactRepo,
		redisRepo:   redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Reserved usernames can never be registered
	for _, reserved := range s.config.ReservedUsernames {
		if strings.EqualFold(req.Username, reserved) {
			return nil, errors.SetCustomError(constant.ErrUsernameReserved)
		}
	}

	// Check if user exists by username or email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Create user entity
	userEntity := &model.UserEntity{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Avatar:       gravatarURL(req.Email),
		Role:         constant.RoleUser,
	}

	// Save to database
	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Contact total is part of the registration response shape
	contactsCount, err := s.contactRepo.CountByOwner(ctx, userEntity.ID)
	if err != nil {
		logger.Error("[Register] err contactRepo.CountByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("registered new user", zap.Uint64("user_id", userEntity.ID), zap.String("username", userEntity.Username))

	return &model.RegisterResponse{
		ID:            userEntity.ID,
		Username:      userEntity.Username,
		Email:         userEntity.Email,
		Avatar:        userEntity.Avatar,
		ContactsCount: contactsCount,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	// Generate JWT token
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Logout drops the Redis session so the token's jti stops resolving.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) Profile(ctx context.Context, userID uint64) (*model.ProfileResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Profile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	contactsCount, err := s.contactRepo.CountByOwner(ctx, userID)
	if err != nil {
		logger.Error("[Profile] err contactRepo.CountByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return buildProfile(user, contactsCount), nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	if req.Username == nil && req.Email == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		for _, reserved := range s.config.ReservedUsernames {
			if strings.EqualFold(*req.Username, reserved) {
				return nil, errors.SetCustomError(constant.ErrUsernameReserved)
			}
		}
		existing, err := s.userRepo.Get(ctx, &model.UserFilter{Username: *req.Username})
		if err != nil {
			logger.Error("[UpdateProfile] err userRepo.Get username", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil && existing.ID != userID {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: *req.Email})
		if err != nil {
			logger.Error("[UpdateProfile] err userRepo.Get email", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil && existing.ID != userID {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		fields["email"] = *req.Email
		fields["avatar"] = gravatarURL(*req.Email)
	}

	user, err := s.userRepo.Update(ctx, userID, fields)
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		// Account removed between token validation and the update
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	contactsCount, err := s.contactRepo.CountByOwner(ctx, userID)
	if err != nil {
		logger.Error("[UpdateProfile] err contactRepo.CountByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return buildProfile(user, contactsCount), nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	// Extract userID from Subject
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// buildProfile assembles the profile response, hiding role and timestamps
// from regular users.
func buildProfile(user *model.UserEntity, contactsCount int64) *model.ProfileResponse {
	profile := &model.ProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Avatar:        user.Avatar,
		ContactsCount: contactsCount,
	}
	if user.Role.IsPrivileged() {
		profile.Role = user.Role
		createdAt := user.CreatedAt
		profile.CreatedAt = &createdAt
		profile.UpdatedAt = user.UpdatedAt
	}
	return profile
}

// gravatarURL derives the avatar location from the user's email.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?d=identicon"
}
