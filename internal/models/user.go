package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username     string `gorm:"column:username;type:text;uniqueIndex" json:"username"`
	Name         string `gorm:"column:name;type:text" json:"name"`
	Email        string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`
	PhotoURL     string `gorm:"column:photo_url;type:text" json:"photo_url"`

	Interests pq.StringArray `gorm:"column:interests;type:text[]" json:"interests"`

	// JSONB (raw JSON, structure fleksibel)
	Preferences datatypes.JSON `gorm:"column:preferences;type:jsonb" json:"preferences"`

	IsTakenQuiz bool `gorm:"column:is_taken_quiz;not null;default:false" json:"is_taken_quiz"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (User) TableName() string { return "users" }
