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

type MajorRepository interface {
	List(ctx context.Context) ([]models.Major, error)
	SearchByName(ctx context.Context, q string) ([]models.Major, error)
	GetByID(ctx context.Context, id string) (*models.Major, error)
}

type majorRepo struct {
	col *mongo.Collection
}

func NewMajorRepo(db *mongo.Database) MajorRepository {
	return &majorRepo{col: db.Collection("majors")}
}

func (r *majorRepo) List(ctx context.Context) ([]models.Major, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Major
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *majorRepo) SearchByName(ctx context.Context, q string) ([]models.Major, error) {
	cur, err := r.col.Find(ctx, nameSearchFilter(q))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Major
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *majorRepo) GetByID(ctx context.Context, id string) (*models.Major, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var m models.Major
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}
