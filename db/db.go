package db

import (
	"context"

	"github.com/guilhermerodrigues17/messages-backend/models"
)

// Database is the storage interface consumed by the services. Lookups that
// find nothing return models.ErrNotFound.
type Database interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id models.UserID) (models.User, error)
	CreateUser(ctx context.Context, user CreateUser) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id models.UserID) error

	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)
	GetMessage(ctx context.Context, id models.MessageID) (models.Message, error)
	ListMessages(ctx context.Context, limit, offset int64) ([]models.Message, error)
	UpdateMessage(ctx context.Context, msg models.Message) error
	DeleteMessage(ctx context.Context, id models.MessageID) error
}

type CreateUser struct {
	Name    string
	Email   string
	PwdHash string
}
