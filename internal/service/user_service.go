package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"
	"fittrack/backend/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrInvalidAvatarType = errors.New("avatar content type must be an image")
	ErrUploadURLError    = errors.New("failed to generate upload URL")
	ErrDownloadURLError  = errors.New("failed to generate download URL")
)

// AvatarUploadResponse carries the presigned URL plus the object key the
// client reports back as its avatar value after uploading.
type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// UserService handles profile reads and updates.
type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	// UpdateProfile changes name, avatar, and/or password. Empty values
	// leave the current field untouched.
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, avatar, password string) (*domain.User, error)
	// RequestAvatarUploadURL returns a presigned PUT URL for a new
	// avatar image.
	RequestAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUploadResponse, error)
	// AvatarURL resolves the user's avatar to something fetchable: a
	// stored object key becomes a presigned GET URL, an absolute URL is
	// returned as-is.
	AvatarURL(ctx context.Context, userID primitive.ObjectID) (string, error)
}

type userService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, fileStorage storage.FileStorage) UserService {
	return &userService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, name, avatar, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) RequestAvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*AvatarUploadResponse, error) {
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, ErrInvalidAvatarType
	}

	fileExtension := ""
	if parts := strings.Split(contentType, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("avatars", userID.Hex(), fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &AvatarUploadResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

func (s *userService) AvatarURL(ctx context.Context, userID primitive.ObjectID) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if user.Avatar == "" {
		return domain.DefaultAvatarURL, nil
	}
	if strings.HasPrefix(user.Avatar, "http://") || strings.HasPrefix(user.Avatar, "https://") {
		return user.Avatar, nil
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, user.Avatar, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}
