package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Career is reference-catalog data, read-only for this service.
type Career struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	PhotoURL    string             `bson:"photo_url" json:"photo_url"`
	Keywords    []string           `bson:"keywords" json:"keywords"`
}

type Major struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	PhotoURL     string             `bson:"photo_url" json:"photo_url"`
	Universities []string           `bson:"universities" json:"universities"`
}
