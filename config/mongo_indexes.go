package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := db.Collection("quiz_results")
	_, err := results.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "quiz_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_quiz_id").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("by_user_submitted"),
		},
	})
	if err != nil {
		return err
	}

	// name lookups back the search endpoints
	careers := db.Collection("careers")
	_, err = careers.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("by_name"),
		},
	})
	if err != nil {
		return err
	}

	majors := db.Collection("majors")
	_, err = majors.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("by_name"),
		},
	})
	return err
}
