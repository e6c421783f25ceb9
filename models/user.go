package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserID is the stable unique identifier of a user record.
type UserID = bson.ObjectID

type User struct {
	ID        UserID `json:"id" bson:"_id,omitempty"`
	CreatedAt int64  `json:"-" bson:"created_at"`
	UpdatedAt int64  `json:"-" bson:"updated_at"`

	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`
	Name     string `json:"name" bson:"name"`
	Active   bool   `json:"-" bson:"active"`
	Picture  string `json:"picture,omitempty" bson:"picture,omitempty"`
}

func ParseUserID(id string) (UserID, error) {
	uid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return UserID{}, err
	}

	return uid, nil
}

func NewUserID() UserID {
	return bson.NewObjectID()
}
