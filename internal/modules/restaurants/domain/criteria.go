package domain

import (
	"strconv"
	"strings"

	"eatzaSearch/internal/shared/pagination"
)

// CriteriaKind discriminates the closed set of supported filter combinations.
type CriteriaKind string

const (
	CriteriaAll             CriteriaKind = "all"
	CriteriaName            CriteriaKind = "name"
	CriteriaLocationCuisine CriteriaKind = "location-cuisine"
	CriteriaLocationName    CriteriaKind = "location-name"
	CriteriaBudget          CriteriaKind = "budget"
	CriteriaRating          CriteriaKind = "rating"
)

// SearchCriteria is a tagged union over the filter dimensions. Only the
// fields relevant to Kind are meaningful; constructors below are the only
// intended way to build one.
type SearchCriteria struct {
	Kind     CriteriaKind
	Name     string
	Location string
	Cuisine  string
	Budget   int
	Rating   float64
}

// AllRestaurants matches every row.
func AllRestaurants() SearchCriteria {
	return SearchCriteria{Kind: CriteriaAll}
}

// ByName matches restaurants whose name contains the given substring
// (case-sensitive containment).
func ByName(name string) SearchCriteria {
	return SearchCriteria{Kind: CriteriaName, Name: name}
}

// ByLocationAndCuisine matches both substrings, AND-combined.
func ByLocationAndCuisine(location, cuisine string) SearchCriteria {
	return SearchCriteria{Kind: CriteriaLocationCuisine, Location: location, Cuisine: cuisine}
}

// ByLocationAndName matches both substrings, AND-combined.
func ByLocationAndName(location, name string) SearchCriteria {
	return SearchCriteria{Kind: CriteriaLocationName, Location: location, Name: name}
}

// ByBudget matches restaurants whose budget is at most the given amount.
// Cheaper-is-better: the comparison is less-than-or-equal, the mirror image
// of the rating filter.
func ByBudget(budget int) SearchCriteria {
	return SearchCriteria{Kind: CriteriaBudget, Budget: budget}
}

// ByRating matches restaurants rated at least the given value.
func ByRating(rating float64) SearchCriteria {
	return SearchCriteria{Kind: CriteriaRating, Rating: rating}
}

// CanonicalKey builds a stable cache key for the criteria/page combination.
func (c SearchCriteria) CanonicalKey(page pagination.PageRequest) string {
	var builder strings.Builder
	builder.WriteString("kind=")
	builder.WriteString(string(c.Kind))
	builder.WriteString("&page=")
	builder.WriteString(strconv.Itoa(page.Number))
	builder.WriteString("&size=")
	builder.WriteString(strconv.Itoa(page.Size))

	switch c.Kind {
	case CriteriaName:
		builder.WriteString("&name=")
		builder.WriteString(c.Name)
	case CriteriaLocationCuisine:
		builder.WriteString("&location=")
		builder.WriteString(c.Location)
		builder.WriteString("&cuisine=")
		builder.WriteString(c.Cuisine)
	case CriteriaLocationName:
		builder.WriteString("&location=")
		builder.WriteString(c.Location)
		builder.WriteString("&name=")
		builder.WriteString(c.Name)
	case CriteriaBudget:
		builder.WriteString("&budget=")
		builder.WriteString(strconv.Itoa(c.Budget))
	case CriteriaRating:
		builder.WriteString("&rating=")
		builder.WriteString(strconv.FormatFloat(c.Rating, 'f', -1, 64))
	}

	return builder.String()
}
