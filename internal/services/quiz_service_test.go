package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/sikarir/sikarir-backend/internal/models"
	"github.com/sikarir/sikarir-backend/internal/scoring"
	"github.com/sikarir/sikarir-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test fakes
// ==========================

type fakeFlagStore struct {
	setCalls int
	taken    map[string]bool
	fail     bool
}

func (f *fakeFlagStore) SetQuizTaken(_ context.Context, userID string, taken bool) error {
	f.setCalls++
	if f.fail {
		return errors.New("pg down")
	}
	if f.taken == nil {
		f.taken = map[string]bool{}
	}
	f.taken[userID] = taken
	return nil
}

type fakeCatalog struct {
	careers     []models.Career
	majors      []models.Major
	careerCalls int
	majorCalls  int
	err         error
}

func (f *fakeCatalog) ListCareers(context.Context) ([]models.Career, error) {
	f.careerCalls++
	return f.careers, f.err
}

func (f *fakeCatalog) ListMajors(context.Context) ([]models.Major, error) {
	f.majorCalls++
	return f.majors, f.err
}

type fakeResults struct {
	saved       []models.QuizResult
	insertCalls int
	fail        bool
}

func (f *fakeResults) Insert(_ context.Context, qr *models.QuizResult) error {
	f.insertCalls++
	if f.fail {
		return errors.New("mongo down")
	}
	f.saved = append(f.saved, *qr)
	return nil
}

func (f *fakeResults) ListByUserID(_ context.Context, userID string) ([]models.QuizResult, error) {
	var out []models.QuizResult
	for _, qr := range f.saved {
		if qr.UserID == userID {
			out = append(out, qr)
		}
	}
	return out, nil
}

type fakeScorer struct {
	scores []float64
	err    error
	calls  int
	input  []float64
}

func (f *fakeScorer) Score(_ context.Context, features []float64) ([]float64, error) {
	f.calls++
	f.input = features
	return f.scores, f.err
}

// ==========================
// Helpers
// ==========================

func validAnswers() map[string]string {
	raw := make(map[string]string, scoring.AnswerCount)
	for i := 0; i < 50; i++ {
		raw[strconv.Itoa(i)] = "3"
	}
	for i := 50; i < 100; i++ {
		raw[strconv.Itoa(i)] = "A"
	}
	return raw
}

func topHeavyScores() []float64 {
	scores := make([]float64, scoring.LabelCount)
	scores[0] = 100
	return scores
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		careers: []models.Career{
			{Name: scoring.CareerLabel(0), Keywords: []string{"account"}},
			{Name: "Zookeeper", Keywords: []string{"zoo"}},
		},
		majors: []models.Major{
			{Name: "Accounting"},
			{Name: "Zoology"},
		},
	}
}

func newTestQuizService(flags *fakeFlagStore, cat *fakeCatalog, results *fakeResults, scorer *fakeScorer) QuizService {
	return NewQuizService(flags, cat, results, scorer)
}

// ==========================
// Tests
// ==========================

func TestSubmit_TopScoredCareerIncluded(t *testing.T) {
	flags := &fakeFlagStore{}
	cat := testCatalog()
	results := &fakeResults{}
	scorer := &fakeScorer{scores: topHeavyScores()}
	svc := newTestQuizService(flags, cat, results, scorer)

	qr, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.NoError(t, err)

	// label 0 dominates, and its career exists in the catalog
	require.Len(t, qr.Recommendations, 1)
	assert.Equal(t, scoring.CareerLabel(0), qr.Recommendations[0].Name)
	require.Len(t, qr.Recommendations[0].RelatedMajors, 1)
	assert.Equal(t, "Accounting", qr.Recommendations[0].RelatedMajors[0].Name)

	assert.NotEmpty(t, qr.QuizID)
	assert.Equal(t, "user-1", qr.UserID)
	assert.False(t, qr.SubmittedAt.IsZero())

	assert.Equal(t, 1, results.insertCalls)
	assert.True(t, flags.taken["user-1"])
}

func TestSubmit_ModelInputVector(t *testing.T) {
	flags := &fakeFlagStore{}
	cat := testCatalog()
	scorer := &fakeScorer{scores: topHeavyScores()}
	svc := newTestQuizService(flags, cat, &fakeResults{}, scorer)

	_, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.NoError(t, err)

	// all-3 Likert answers put every trait at 7.5; answering "A"
	// everywhere hits the key exactly twice per block
	assert.Equal(t, []float64{7.5, 7.5, 7.5, 7.5, 7.5, 2, 2, 2, 2, 2}, scorer.input)
}

func TestSubmit_RejectsIncompleteSheet(t *testing.T) {
	for _, n := range []int{99, 101} {
		flags := &fakeFlagStore{}
		cat := testCatalog()
		results := &fakeResults{}
		scorer := &fakeScorer{scores: topHeavyScores()}
		svc := newTestQuizService(flags, cat, results, scorer)

		raw := validAnswers()
		if n == 99 {
			delete(raw, "42")
		} else {
			raw["100"] = "A"
		}

		_, err := svc.Submit(context.Background(), "user-1", raw)
		require.Error(t, err, "%d answers", n)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

		// no collaborator is touched on a rejected sheet
		assert.Zero(t, scorer.calls)
		assert.Zero(t, cat.careerCalls)
		assert.Zero(t, cat.majorCalls)
		assert.Zero(t, results.insertCalls)
		assert.Zero(t, flags.setCalls)
	}
}

func TestSubmit_ModelFailureNoPersist(t *testing.T) {
	flags := &fakeFlagStore{}
	results := &fakeResults{}
	scorer := &fakeScorer{err: errors.New("connection refused")}
	svc := newTestQuizService(flags, testCatalog(), results, scorer)

	_, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
	assert.Zero(t, results.insertCalls)
	assert.Zero(t, flags.setCalls)
}

func TestSubmit_ScoreVectorMismatchIsInternal(t *testing.T) {
	flags := &fakeFlagStore{}
	results := &fakeResults{}
	scorer := &fakeScorer{scores: []float64{1, 2, 3}}
	svc := newTestQuizService(flags, testCatalog(), results, scorer)

	_, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
	assert.Zero(t, results.insertCalls)
	assert.Zero(t, flags.setCalls)
}

func TestSubmit_PersistFailureLeavesFlagUnset(t *testing.T) {
	flags := &fakeFlagStore{}
	results := &fakeResults{fail: true}
	scorer := &fakeScorer{scores: topHeavyScores()}
	svc := newTestQuizService(flags, testCatalog(), results, scorer)

	_, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
	assert.Zero(t, flags.setCalls)
}

func TestSubmit_FlagFailureSurfacesButResultIsSaved(t *testing.T) {
	flags := &fakeFlagStore{fail: true}
	results := &fakeResults{}
	scorer := &fakeScorer{scores: topHeavyScores()}
	svc := newTestQuizService(flags, testCatalog(), results, scorer)

	_, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
	// best-effort: the saved result stands even though the flag failed
	assert.Equal(t, 1, results.insertCalls)
	assert.Len(t, results.saved, 1)
}

func TestSubmit_RequiresUserID(t *testing.T) {
	svc := newTestQuizService(&fakeFlagStore{}, testCatalog(), &fakeResults{}, &fakeScorer{})

	_, err := svc.Submit(context.Background(), "", validAnswers())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestHistory_ReturnsOwnResultsOnly(t *testing.T) {
	flags := &fakeFlagStore{}
	results := &fakeResults{}
	scorer := &fakeScorer{scores: topHeavyScores()}
	svc := newTestQuizService(flags, testCatalog(), results, scorer)

	_, err := svc.Submit(context.Background(), "user-1", validAnswers())
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "user-2", validAnswers())
	require.NoError(t, err)

	out, err := svc.History(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "user-1", out[0].UserID)
}
