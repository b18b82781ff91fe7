package model

import "context"

// Scorer is the external career classifier. Score blocks until the model
// answers, fails, or the client-side timeout fires; it is never retried
// here.
type Scorer interface {
	Score(ctx context.Context, features []float64) ([]float64, error)
}
