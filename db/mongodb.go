package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/guilhermerodrigues17/messages-backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// verify MongoDB implements database interface in compile time
var _ Database = (*MongoDB)(nil)

const (
	USER_COLL = "users"
	MSG_COLL  = "messages"
)

type MongoDB struct {
	client *mongo.Client
	db     string
}

func NewMongo(ctx context.Context, conn string, db string) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(conn))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoDB{client: client, db: db}, nil
}

func (m *MongoDB) users() *mongo.Collection {
	return m.client.Database(m.db).Collection(USER_COLL)
}

func (m *MongoDB) messages() *mongo.Collection {
	return m.client.Database(m.db).Collection(MSG_COLL)
}

func (m *MongoDB) CreateUser(ctx context.Context, user CreateUser) (models.User, error) {
	dbuser := models.User{
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
		Email:     normalizeEmail(user.Email),
		Password:  user.PwdHash,
		Name:      user.Name,
		Active:    true,
	}

	result, err := m.users().InsertOne(ctx, dbuser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, models.ErrEmailTaken
		}
		slog.Error("failed to insert user into database", "error", err)
		return models.User{}, err
	}

	dbuser.ID = result.InsertedID.(bson.ObjectID)
	return dbuser, nil
}

func (m *MongoDB) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	if err != nil && errors.Is(err, models.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (m *MongoDB) FindByEmail(ctx context.Context, email string) (user models.User, err error) {
	err = m.users().FindOne(ctx, bson.D{{Key: "email", Value: normalizeEmail(email)}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, models.ErrNotFound
	}
	return user, err
}

func (m *MongoDB) FindByID(ctx context.Context, id models.UserID) (user models.User, err error) {
	err = m.users().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user, models.ErrNotFound
	}
	return user, err
}

func (m *MongoDB) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.users().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoDB) UpdateUser(ctx context.Context, user models.User) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: user.Name},
		{Key: "password", Value: user.Password},
		{Key: "active", Value: user.Active},
		{Key: "picture", Value: user.Picture},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := m.users().UpdateByID(ctx, user.ID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (m *MongoDB) DeleteUser(ctx context.Context, id models.UserID) error {
	result, err := m.users().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (m *MongoDB) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.CreatedAt = time.Now().Unix()
	msg.UpdatedAt = time.Now().Unix()

	result, err := m.messages().InsertOne(ctx, msg)
	if err != nil {
		slog.Error("failed to insert message into database", "error", err)
		return models.Message{}, err
	}

	msg.ID = result.InsertedID.(bson.ObjectID)
	return msg, nil
}

func (m *MongoDB) GetMessage(ctx context.Context, id models.MessageID) (msg models.Message, err error) {
	err = m.messages().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return msg, models.ErrNotFound
	}
	return msg, err
}

// ListMessages returns messages newest first.
func (m *MongoDB) ListMessages(ctx context.Context, limit, offset int64) ([]models.Message, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := m.messages().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	msgs := []models.Message{}
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (m *MongoDB) UpdateMessage(ctx context.Context, msg models.Message) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: msg.Content},
		{Key: "read", Value: msg.Read},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := m.messages().UpdateByID(ctx, msg.ID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (m *MongoDB) DeleteMessage(ctx context.Context, id models.MessageID) error {
	result, err := m.messages().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.Trim(email, " "))
}
