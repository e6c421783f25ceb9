package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guilhermerodrigues17/messages-backend/db"
	"github.com/guilhermerodrigues17/messages-backend/models"
)

// fakeDB is an in-memory Database used by the service tests.
type fakeDB struct {
	users    map[models.UserID]models.User
	messages map[models.MessageID]models.Message

	lastLimit  int64
	lastOffset int64
}

var _ db.Database = (*fakeDB)(nil)

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:    map[models.UserID]models.User{},
		messages: map[models.MessageID]models.Message{},
	}
}

func (f *fakeDB) addUser(email, pwdHash string, active bool) models.User {
	user := models.User{
		ID:       models.NewUserID(),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: pwdHash,
		Name:     "Test User",
		Active:   active,
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeDB) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeDB) FindByEmail(_ context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeDB) FindByID(_ context.Context, id models.UserID) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return user, nil
}

func (f *fakeDB) CreateUser(_ context.Context, user db.CreateUser) (models.User, error) {
	dbuser := models.User{
		ID:       models.NewUserID(),
		Email:    strings.ToLower(strings.TrimSpace(user.Email)),
		Password: user.PwdHash,
		Name:     user.Name,
		Active:   true,
	}
	f.users[dbuser.ID] = dbuser
	return dbuser, nil
}

func (f *fakeDB) ListUsers(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeDB) UpdateUser(_ context.Context, user models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return models.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeDB) DeleteUser(_ context.Context, id models.UserID) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeDB) CreateMessage(_ context.Context, msg models.Message) (models.Message, error) {
	msg.ID = models.MessageID(models.NewUserID())
	msg.CreatedAt = time.Now().Unix()
	msg.UpdatedAt = time.Now().Unix()
	f.messages[msg.ID] = msg
	return msg, nil
}

func (f *fakeDB) GetMessage(_ context.Context, id models.MessageID) (models.Message, error) {
	msg, ok := f.messages[id]
	if !ok {
		return models.Message{}, models.ErrNotFound
	}
	return msg, nil
}

func (f *fakeDB) ListMessages(_ context.Context, limit, offset int64) ([]models.Message, error) {
	f.lastLimit = limit
	f.lastOffset = offset

	msgs := []models.Message{}
	for _, msg := range f.messages {
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (f *fakeDB) UpdateMessage(_ context.Context, msg models.Message) error {
	if _, ok := f.messages[msg.ID]; !ok {
		return models.ErrNotFound
	}
	f.messages[msg.ID] = msg
	return nil
}

func (f *fakeDB) DeleteMessage(_ context.Context, id models.MessageID) error {
	if _, ok := f.messages[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

// fakeHasher substitutes bcrypt with a reversible marker so tests stay fast.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(password, hash string) (bool, error) {
	return hash == fmt.Sprintf("hashed:%s", password), nil
}
