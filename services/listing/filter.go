package listing

import (
	"strings"

	"freelanceai/models"
)

// Filter reduces the catalog to records satisfying every active constraint
// in params. Constraints are independent AND predicates; a constraint left
// at its default value is a no-op. A contradictory price range (min > max)
// yields an empty result rather than an error.
//
// Numeric predicates run before the string-matching ones; the composition
// order does not change the outcome.
func Filter(catalog []models.Freelancer, params models.QueryParams) []models.Freelancer {
	out := filterByPrice(catalog, params.PriceRange)
	out = filterByRating(out, params.MinRating)
	out = filterByText(out, params.SearchText)
	out = filterByCategory(out, params.Category)
	out = filterBySkills(out, params.RequiredSkills)
	return out
}

// filterByPrice keeps records whose hourly price lies inside the closed
// interval. Always active: the default range covers the platform bound.
func filterByPrice(records []models.Freelancer, pr models.PriceRange) []models.Freelancer {
	out := make([]models.Freelancer, 0, len(records))
	for _, f := range records {
		if f.Price >= pr.Min && f.Price <= pr.Max {
			out = append(out, f)
		}
	}
	return out
}

func filterByRating(records []models.Freelancer, minRating float64) []models.Freelancer {
	if minRating <= 0 {
		return records
	}
	out := make([]models.Freelancer, 0, len(records))
	for _, f := range records {
		if f.Rating >= minRating {
			out = append(out, f)
		}
	}
	return out
}

// filterByText keeps records whose name, title or any skill contains the
// search text, case-insensitively.
func filterByText(records []models.Freelancer, searchText string) []models.Freelancer {
	query := strings.ToLower(strings.TrimSpace(searchText))
	if query == "" {
		return records
	}
	out := make([]models.Freelancer, 0, len(records))
	for _, f := range records {
		if strings.Contains(strings.ToLower(f.Name), query) ||
			strings.Contains(strings.ToLower(f.Title), query) ||
			anySkillContains(f.Skills, query) {
			out = append(out, f)
		}
	}
	return out
}

// filterByCategory keeps records where some skill contains the category
// token as a substring. Categories have no dedicated field on the record;
// they are a loose association over the skill tags, and the substring
// semantics are kept case-sensitive on purpose.
func filterByCategory(records []models.Freelancer, category string) []models.Freelancer {
	if category == "" {
		return records
	}
	out := make([]models.Freelancer, 0, len(records))
	for _, f := range records {
		for _, skill := range f.Skills {
			if strings.Contains(skill, category) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// filterBySkills keeps records that carry every required skill (exact
// match). A record must have all of them, not any.
func filterBySkills(records []models.Freelancer, required []string) []models.Freelancer {
	if len(required) == 0 {
		return records
	}
	out := make([]models.Freelancer, 0, len(records))
	for _, f := range records {
		if hasAllSkills(f.Skills, required) {
			out = append(out, f)
		}
	}
	return out
}

func anySkillContains(skills []string, loweredQuery string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), loweredQuery) {
			return true
		}
	}
	return false
}

func hasAllSkills(skills, required []string) bool {
	for _, want := range required {
		found := false
		for _, s := range skills {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
