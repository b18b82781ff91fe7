package catalog

import (
	"strings"

	"github.com/sikarir/sikarir-backend/internal/models"
)

const (
	// MaxRelatedMajors caps the majors attached to one career.
	MaxRelatedMajors = 6

	// PlaceholderPhotoURL is used when a career has no photo of its own.
	PlaceholderPhotoURL = "https://storage.googleapis.com/sikarir-assets/placeholder.png"
)

// BuildRecommendations joins every career with the majors related to it.
// A major is related when its name contains one of the career's keywords
// as a case-insensitive substring. Majors keep catalog order and are
// truncated after MaxRelatedMajors; no ranking is applied among them.
//
// The join is O(careers x majors x keywords), which is fine at
// reference-catalog scale. Keep it behind this package so an index can
// replace it without touching callers.
func BuildRecommendations(careers []models.Career, majors []models.Major) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(careers))
	for _, c := range careers {
		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}

		var related []models.Major
		for _, m := range majors {
			if len(related) == MaxRelatedMajors {
				break
			}
			name := strings.ToLower(m.Name)
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					related = append(related, m)
					break
				}
			}
		}

		if c.PhotoURL == "" {
			c.PhotoURL = PlaceholderPhotoURL
		}
		recs = append(recs, models.Recommendation{Career: c, RelatedMajors: related})
	}
	return recs
}

// FilterByNames keeps only the recommendations whose career name is in
// names, preserving their original relative order.
func FilterByNames(recs []models.Recommendation, names []string) []models.Recommendation {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}

	out := make([]models.Recommendation, 0, len(names))
	for _, r := range recs {
		if _, ok := want[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}
