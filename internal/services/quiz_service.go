package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sikarir/sikarir-backend/internal/catalog"
	"github.com/sikarir/sikarir-backend/internal/models"
	"github.com/sikarir/sikarir-backend/internal/providers/model"
	mongorepo "github.com/sikarir/sikarir-backend/internal/repositories/mongo"
	"github.com/sikarir/sikarir-backend/internal/scoring"
	"github.com/sikarir/sikarir-backend/internal/utils"
	"golang.org/x/sync/errgroup"
)

// catalogReader is the slice of CatalogService the quiz pipeline needs:
// both collections, complete, no pagination.
type catalogReader interface {
	ListCareers(ctx context.Context) ([]models.Career, error)
	ListMajors(ctx context.Context) ([]models.Major, error)
}

type quizTakenMarker interface {
	SetQuizTaken(ctx context.Context, userID string, taken bool) error
}

type QuizService interface {
	Submit(ctx context.Context, userID string, answers map[string]string) (*models.QuizResult, error)
	History(ctx context.Context, userID string) ([]models.QuizResult, error)
}

type quizService struct {
	users   quizTakenMarker
	catalog catalogReader
	results mongorepo.QuizResultRepository
	scorer  model.Scorer
}

func NewQuizService(users quizTakenMarker, cat catalogReader, results mongorepo.QuizResultRepository, scorer model.Scorer) QuizService {
	return &quizService{users: users, catalog: cat, results: results, scorer: scorer}
}

// Submit runs one quiz submission end to end: order and validate the
// answer sheet, extract the feature vector, score it against the model
// while both catalog collections load in parallel, rank the top careers,
// join in related majors, then persist. The user's quiz-taken flag is
// only touched after the result is saved; if the flag update itself
// fails the saved result stands and the error surfaces.
func (s *quizService) Submit(ctx context.Context, userID string, answers map[string]string) (*models.QuizResult, error) {
	const op = "QuizService.Submit"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	ordered, err := scoring.OrderAnswers(answers)
	if err != nil {
		return nil, err
	}
	features, err := scoring.Extract(ordered)
	if err != nil {
		return nil, err
	}

	// the model call and the two catalog reads are independent
	var (
		scores  []float64
		careers []models.Career
		majors  []models.Major
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.scorer.Score(gctx, features.ModelInput())
		if err != nil {
			return utils.E(utils.CodeUnavailable, op, "model scoring failed", err)
		}
		scores = out
		return nil
	})
	g.Go(func() error {
		out, err := s.catalog.ListCareers(gctx)
		if err != nil {
			return utils.E(utils.CodeInternal, op, "failed to load careers", err)
		}
		careers = out
		return nil
	})
	g.Go(func() error {
		out, err := s.catalog.ListMajors(gctx)
		if err != nil {
			return utils.E(utils.CodeInternal, op, "failed to load majors", err)
		}
		majors = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	top, err := scoring.TopCareers(scores, scoring.TopK)
	if err != nil {
		return nil, err
	}

	joined := catalog.BuildRecommendations(careers, majors)
	recs := catalog.FilterByNames(joined, top)

	qr := &models.QuizResult{
		QuizID:          uuid.NewString(),
		UserID:          userID,
		SubmittedAt:     time.Now().UTC(),
		Recommendations: recs,
	}
	if err := s.results.Insert(ctx, qr); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save quiz result", err)
	}

	if err := s.users.SetQuizTaken(ctx, userID, true); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to mark quiz taken", err)
	}
	return qr, nil
}

func (s *quizService) History(ctx context.Context, userID string) ([]models.QuizResult, error) {
	const op = "QuizService.History"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	out, err := s.results.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list quiz results", err)
	}
	return out, nil
}
