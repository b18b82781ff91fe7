package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is a career joined with the majors that lead into it.
type Recommendation struct {
	Career        `bson:",inline"`
	RelatedMajors []Major `bson:"related_majors" json:"related_majors"`
}

type QuizResult struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	QuizID string             `bson:"quiz_id" json:"quiz_id"` // uuid v4
	UserID string             `bson:"user_id" json:"user_id"`

	SubmittedAt     time.Time        `bson:"submitted_at" json:"submitted_at"`
	Recommendations []Recommendation `bson:"recommendations" json:"recommendations"`
}
