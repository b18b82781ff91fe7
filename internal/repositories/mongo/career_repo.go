package mongo

import (
	"context"
	"errors"

	"github.com/sikarir/sikarir-backend/internal/models"
	"github.com/sikarir/sikarir-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CareerRepository reads the careers reference collection. The catalog
// join needs the complete collection, so List never paginates.
type CareerRepository interface {
	List(ctx context.Context) ([]models.Career, error)
	SearchByName(ctx context.Context, q string) ([]models.Career, error)
	GetByID(ctx context.Context, id string) (*models.Career, error)
}

type careerRepo struct {
	col *mongo.Collection
}

func NewCareerRepo(db *mongo.Database) CareerRepository {
	return &careerRepo{col: db.Collection("careers")}
}

func (r *careerRepo) List(ctx context.Context) ([]models.Career, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Career
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *careerRepo) SearchByName(ctx context.Context, q string) ([]models.Career, error) {
	cur, err := r.col.Find(ctx, nameSearchFilter(q))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Career
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *careerRepo) GetByID(ctx context.Context, id string) (*models.Career, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var c models.Career
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}
