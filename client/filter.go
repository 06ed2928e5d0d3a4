package client

import (
	"strings"

	"inventoryapi/models"
)

const maxSuggestions = 8

// Filter narrows products to those whose name or category contains
// the query as a case-insensitive substring. An empty query returns
// the input unchanged.
func Filter(products []models.Product, query string) []models.Product {
	if strings.TrimSpace(query) == "" {
		return products
	}

	q := strings.ToLower(query)
	var filtered []models.Product
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.ProductName), q) ||
			strings.Contains(strings.ToLower(product.Category), q) {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

// Suggestions returns the distinct matching product names and
// categories in first-encountered order, capped at maxSuggestions.
func Suggestions(products []models.Product, query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	q := strings.ToLower(query)
	seen := map[string]bool{}
	var suggestions []string

	add := func(value string) {
		if len(suggestions) >= maxSuggestions || seen[value] {
			return
		}
		seen[value] = true
		suggestions = append(suggestions, value)
	}

	for _, product := range products {
		if strings.Contains(strings.ToLower(product.ProductName), q) {
			add(product.ProductName)
		}
		if strings.Contains(strings.ToLower(product.Category), q) {
			add(product.Category)
		}
	}

	return suggestions
}

// Search holds the query box state: the query itself plus the
// autocomplete list, which is only visible while the input has focus.
type Search struct {
	Query           string
	Suggestions     []string
	ShowSuggestions bool
}

// SetQuery updates the query as the user types and recomputes the
// autocomplete list against the full product set.
func (s *Search) SetQuery(products []models.Product, query string) {
	s.Query = query

	if strings.TrimSpace(query) == "" {
		s.Suggestions = nil
		s.ShowSuggestions = false
		return
	}

	s.Suggestions = Suggestions(products, query)
	s.ShowSuggestions = len(s.Suggestions) > 0
}

// SelectSuggestion adopts the suggestion text verbatim as the query
// and hides the list.
func (s *Search) SelectSuggestion(suggestion string) {
	s.Query = suggestion
	s.Suggestions = nil
	s.ShowSuggestions = false
}

// Clear resets to the unfiltered view.
func (s *Search) Clear() {
	s.Query = ""
	s.Suggestions = nil
	s.ShowSuggestions = false
}
