package models

import (
	"time"

	"talenthub-api/internal/utils"
)

// Profile holds the optional job-seeker profile fields embedded in a user.
type Profile struct {
	Bio    string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills []string `bson:"skills,omitempty" json:"skills,omitempty"`
}

// User represents an account in the system. The password field holds a
// bcrypt hash and is never serialized to JSON.
type User struct {
	ID          string  `bson:"_id" json:"id"`
	FullName    string  `bson:"fullname" json:"fullname"`
	Email       string  `bson:"email" json:"email"`
	PhoneNumber string  `bson:"phoneNumber" json:"phoneNumber"`
	Password    string  `bson:"password" json:"-"`
	Role        string  `bson:"role" json:"role"`
	Profile     Profile `bson:"profile,omitempty" json:"profile"`
	CreatedAt   int64   `bson:"createdAt" json:"-"`
	ModifiedAt  int64   `bson:"modifiedAt" json:"-"`
}

// CollectionName is the mongo collection users live in.
func (User) CollectionName() string {
	return "users"
}

// PrepareForCreate assigns an ID and timestamps before the first insert.
func (u *User) PrepareForCreate() {
	now := time.Now().Unix()
	if u.ID == "" {
		u.ID = utils.GenerateUserID()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = now
	}
	if u.ModifiedAt == 0 {
		u.ModifiedAt = now
	}
}

// Touch updates the modification timestamp before a save.
func (u *User) Touch() {
	u.ModifiedAt = time.Now().Unix()
}
