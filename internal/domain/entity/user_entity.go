package entity

import (
	"time"
)

// User is the aggregate root for the auth domain.
// Passwords are stored verbatim; comparison happens in the application layer.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"password" bson:"password"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (u User) RecordID() string { return u.ID }

// FieldValue reports the named queryable field, for backends that evaluate
// field filters in process.
func (u User) FieldValue(name string) (string, bool) {
	switch name {
	case "username":
		return u.Username, true
	case "user_id", "_id", "id":
		return u.ID, true
	default:
		return "", false
	}
}
