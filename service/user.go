package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/guilhermerodrigues17/messages-backend/db"
	"github.com/guilhermerodrigues17/messages-backend/forms"
	"github.com/guilhermerodrigues17/messages-backend/hashing"
	"github.com/guilhermerodrigues17/messages-backend/models"
)

const (
	minPictureSize = 1024
	maxPictureSize = 10 * 1024 * 1024
)

type UserService struct {
	db        db.Database
	hasher    hashing.Hasher
	uploadDir string
}

func NewUserService(database db.Database, hasher hashing.Hasher, uploadDir string) *UserService {
	return &UserService{
		db:        database,
		hasher:    hasher,
		uploadDir: uploadDir,
	}
}

// Register creates a new user account with a hashed password.
func (s UserService) Register(ctx context.Context, form forms.RegisterForm) (user models.User, err error) {
	exists, err := s.db.EmailExists(ctx, form.Email)
	if err != nil {
		slog.Error("failed to check if email exists", "error", err)
		return user, errors.New("something went wrong, please try again later")
	}
	if exists {
		return user, models.ErrEmailTaken
	}

	hashedPassword, err := s.hasher.Hash(form.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return user, errors.New("something went wrong, please try again later")
	}

	user, err = s.db.CreateUser(ctx, db.CreateUser{
		Name:    form.Name,
		Email:   form.Email,
		PwdHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return user, err
		}
		return user, errors.New("something went wrong, please try again later")
	}

	return user, nil
}

// One ...
func (s UserService) One(ctx context.Context, userID models.UserID) (models.User, error) {
	return s.db.FindByID(ctx, userID)
}

// List ...
func (s UserService) List(ctx context.Context) ([]models.User, error) {
	return s.db.ListUsers(ctx)
}

// Update changes a user's name and/or password. Only the owner of the
// record may change it.
func (s UserService) Update(ctx context.Context, userID models.UserID, form forms.UpdateUserForm, requesterID models.UserID) (models.User, error) {
	user, err := s.db.FindByID(ctx, userID)
	if err != nil {
		return user, err
	}

	if !AuthorizeOwner(user.ID, requesterID) {
		return user, models.ErrForbidden
	}

	if form.Name != "" {
		user.Name = form.Name
	}

	if form.Password != "" {
		hashedPassword, err := s.hasher.Hash(form.Password)
		if err != nil {
			slog.Error("failed to hash password", "error", err, "user_id", userID.Hex())
			return user, errors.New("something went wrong, please try again later")
		}
		user.Password = hashedPassword
	}

	if err := s.db.UpdateUser(ctx, user); err != nil {
		return user, err
	}
	return user, nil
}

// Remove deletes a user record. Only the owner may delete it.
func (s UserService) Remove(ctx context.Context, userID models.UserID, requesterID models.UserID) error {
	user, err := s.db.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !AuthorizeOwner(user.ID, requesterID) {
		return models.ErrForbidden
	}

	return s.db.DeleteUser(ctx, userID)
}

// UploadPicture stores a profile picture for the requester and records the
// file name on the user record.
func (s UserService) UploadPicture(ctx context.Context, requesterID models.UserID, file *multipart.FileHeader) (user models.User, err error) {
	if file == nil {
		return user, fmt.Errorf("%w: it is necessary to send some file", models.ErrInvalidFile)
	}
	if file.Size < minPictureSize {
		return user, fmt.Errorf("%w: file is too small", models.ErrInvalidFile)
	}
	if file.Size > maxPictureSize {
		return user, fmt.Errorf("%w: file is too large", models.ErrInvalidFile)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	switch ext {
	case "jpg", "jpeg", "png":
	default:
		return user, fmt.Errorf("%w: only jpg, jpeg and png files are accepted", models.ErrInvalidFile)
	}

	user, err = s.db.FindByID(ctx, requesterID)
	if err != nil {
		return user, err
	}

	src, err := file.Open()
	if err != nil {
		return user, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return user, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return user, err
	}

	fileName := fmt.Sprintf("%s.%s", requesterID.Hex(), ext)
	if err := os.WriteFile(filepath.Join(s.uploadDir, fileName), data, 0o644); err != nil {
		slog.Error("failed to write picture file", "error", err, "user_id", requesterID.Hex())
		return user, err
	}

	user.Picture = fileName
	if err := s.db.UpdateUser(ctx, user); err != nil {
		return user, err
	}
	return user, nil
}
