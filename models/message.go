package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MessageID is the stable unique identifier of a message record.
type MessageID = bson.ObjectID

type Message struct {
	ID        MessageID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64     `json:"-" bson:"created_at"`
	UpdatedAt int64     `json:"-" bson:"updated_at"`

	Content string    `json:"content" bson:"content"`
	FromID  UserID    `json:"from_id" bson:"from"`
	ToID    UserID    `json:"to_id" bson:"to"`
	Read    bool      `json:"read" bson:"read"`
	Date    time.Time `json:"date" bson:"date"`
}

func ParseMessageID(id string) (MessageID, error) {
	mid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return MessageID{}, err
	}

	return mid, nil
}
