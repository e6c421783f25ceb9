package service

import (
	"context"
	"time"

	"github.com/guilhermerodrigues17/messages-backend/db"
	"github.com/guilhermerodrigues17/messages-backend/forms"
	"github.com/guilhermerodrigues17/messages-backend/models"
)

type MessageService struct {
	db db.Database
}

func NewMessageService(database db.Database) *MessageService {
	return &MessageService{db: database}
}

// List returns messages newest first within the given window.
func (s MessageService) List(ctx context.Context, limit, offset int64) ([]models.Message, error) {
	return s.db.ListMessages(ctx, limit, offset)
}

// One ...
func (s MessageService) One(ctx context.Context, msgID models.MessageID) (models.Message, error) {
	return s.db.GetMessage(ctx, msgID)
}

// Send stores a new direct message from the authenticated requester.
func (s MessageService) Send(ctx context.Context, form forms.CreateMessageForm, fromID models.UserID) (msg models.Message, err error) {
	toID, err := models.ParseUserID(form.ToID)
	if err != nil {
		return msg, models.ErrNotFound
	}

	if _, err := s.db.FindByID(ctx, toID); err != nil {
		return msg, err
	}

	msg = models.Message{
		Content: form.Content,
		FromID:  fromID,
		ToID:    toID,
		Read:    false,
		Date:    time.Now().UTC(),
	}

	return s.db.CreateMessage(ctx, msg)
}

// Update changes a message's content or read flag. Only the sender may
// change it.
func (s MessageService) Update(ctx context.Context, msgID models.MessageID, form forms.UpdateMessageForm, requesterID models.UserID) (models.Message, error) {
	msg, err := s.db.GetMessage(ctx, msgID)
	if err != nil {
		return msg, err
	}

	if !AuthorizeOwner(msg.FromID, requesterID) {
		return msg, models.ErrForbidden
	}

	if form.Content != "" {
		msg.Content = form.Content
	}
	if form.Read != nil {
		msg.Read = *form.Read
	}

	if err := s.db.UpdateMessage(ctx, msg); err != nil {
		return msg, err
	}
	return msg, nil
}

// Remove deletes a message. Only the sender may delete it.
func (s MessageService) Remove(ctx context.Context, msgID models.MessageID, requesterID models.UserID) error {
	msg, err := s.db.GetMessage(ctx, msgID)
	if err != nil {
		return err
	}

	if !AuthorizeOwner(msg.FromID, requesterID) {
		return models.ErrForbidden
	}

	return s.db.DeleteMessage(ctx, msgID)
}
