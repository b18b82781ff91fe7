package mongo

import (
	"context"
	"time"

	"github.com/sikarir/sikarir-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizResultRepository interface {
	Insert(ctx context.Context, qr *models.QuizResult) error
	ListByUserID(ctx context.Context, userID string) ([]models.QuizResult, error)
}

type quizResultRepo struct {
	col *mongo.Collection
}

func NewQuizResultRepo(db *mongo.Database) QuizResultRepository {
	return &quizResultRepo{col: db.Collection("quiz_results")}
}

func (r *quizResultRepo) Insert(ctx context.Context, qr *models.QuizResult) error {
	if qr.SubmittedAt.IsZero() {
		qr.SubmittedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, qr)
	return err
}

func (r *quizResultRepo) ListByUserID(ctx context.Context, userID string) ([]models.QuizResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.QuizResult
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
