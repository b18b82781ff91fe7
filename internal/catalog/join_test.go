package catalog

import (
	"fmt"
	"testing"

	"github.com/sikarir/sikarir-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func career(name string, keywords ...string) models.Career {
	return models.Career{Name: name, Keywords: keywords, PhotoURL: "https://example.com/" + name + ".png"}
}

func major(name string) models.Major {
	return models.Major{Name: name}
}

func TestBuildRecommendations_KeywordMatchIsCaseInsensitiveSubstring(t *testing.T) {
	careers := []models.Career{career("Software Engineer", " Software ", "Informatika")}
	majors := []models.Major{
		major("SOFTWARE Engineering"),
		major("Teknik Informatika"),
		major("Culinary Arts"),
	}

	recs := BuildRecommendations(careers, majors)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].RelatedMajors, 2)
	assert.Equal(t, "SOFTWARE Engineering", recs[0].RelatedMajors[0].Name)
	assert.Equal(t, "Teknik Informatika", recs[0].RelatedMajors[1].Name)
}

func TestBuildRecommendations_NoOverlapNeverIncluded(t *testing.T) {
	careers := []models.Career{career("Chef", "culinary", "food")}
	majors := []models.Major{major("Mathematics"), major("Physics")}

	recs := BuildRecommendations(careers, majors)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].RelatedMajors)
}

func TestBuildRecommendations_CapsRelatedMajorsAtSix(t *testing.T) {
	careers := []models.Career{career("Nurse", "nursing")}
	majors := make([]models.Major, 0, 9)
	for i := 0; i < 9; i++ {
		majors = append(majors, major(fmt.Sprintf("Nursing Track %d", i)))
	}

	recs := BuildRecommendations(careers, majors)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].RelatedMajors, MaxRelatedMajors)
	// source order, no ranking
	for i, m := range recs[0].RelatedMajors {
		assert.Equal(t, fmt.Sprintf("Nursing Track %d", i), m.Name)
	}
}

func TestBuildRecommendations_EmptyPhotoFallsBack(t *testing.T) {
	c := career("Writer", "writing")
	c.PhotoURL = ""
	recs := BuildRecommendations([]models.Career{c, career("Chef", "culinary")}, nil)

	require.Len(t, recs, 2)
	assert.Equal(t, PlaceholderPhotoURL, recs[0].PhotoURL)
	assert.Equal(t, "https://example.com/Chef.png", recs[1].PhotoURL)
}

func TestBuildRecommendations_BlankKeywordsIgnored(t *testing.T) {
	careers := []models.Career{career("Pilot", "", "  ")}
	majors := []models.Major{major("Aviation")}

	recs := BuildRecommendations(careers, majors)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].RelatedMajors)
}

func TestFilterByNames_PreservesRelativeOrder(t *testing.T) {
	recs := []models.Recommendation{
		{Career: career("Accountant")},
		{Career: career("Chef")},
		{Career: career("Nurse")},
		{Career: career("Pilot")},
	}

	out := FilterByNames(recs, []string{"Pilot", "Chef"})
	require.Len(t, out, 2)
	assert.Equal(t, "Chef", out[0].Name)
	assert.Equal(t, "Pilot", out[1].Name)
}

func TestFilterByNames_MissingNamesDropSilently(t *testing.T) {
	recs := []models.Recommendation{{Career: career("Accountant")}}

	out := FilterByNames(recs, []string{"Astronaut"})
	assert.Empty(t, out)
}
