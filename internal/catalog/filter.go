package catalog

import (
	"sort"
	"strconv"
	"strings"

	"karthika_back_end/internal/models"
)

// Filter is the parsed form of the list query parameters. Scylla partitions
// are scanned per kind and filtered in memory, so Match is a plain predicate.
type Filter struct {
	Brand    string
	Category string
	Channels int
	Cameras  int
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Search   string
	Sort     string
}

// ParseFilter builds a Filter from raw query parameters for one kind.
// Absent price bounds are omitted, not defaulted. inStock accepts the
// literals "true" and "false"; any other value leaves the filter unset.
func ParseFilter(def *Definition, query func(string) string) Filter {
	f := Filter{
		Brand:    strings.TrimSpace(query("brand")),
		Category: strings.TrimSpace(query("category")),
		Search:   strings.TrimSpace(query("search")),
		Sort:     strings.TrimSpace(query("sort")),
	}

	if v := query("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := query("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	switch query("inStock") {
	case "true":
		t := true
		f.InStock = &t
	case "false":
		t := false
		f.InStock = &t
	}
	if def.FilterChannels {
		if n, err := strconv.Atoi(query("channels")); err == nil && n > 0 {
			f.Channels = n
		}
	}
	if def.FilterCameras {
		if n, err := strconv.Atoi(query("cameras")); err == nil && n > 0 {
			f.Cameras = n
		}
	}
	return f
}

// Match reports whether a product passes every configured filter.
func (f Filter) Match(def *Definition, p *models.Product) bool {
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Channels > 0 && p.Channels != f.Channels {
		return false
	}
	if f.Cameras > 0 && p.Cameras != f.Cameras {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Search != "" && !matchSearch(def, p, f.Search) {
		return false
	}
	return true
}

func matchSearch(def *Definition, p *models.Product, term string) bool {
	term = strings.ToLower(term)
	for _, field := range def.SearchFields {
		var value string
		switch field {
		case "name":
			value = p.Name
		case "description":
			value = p.Description
		case "brand":
			value = p.Brand
		case "model":
			value = p.Model
		case "targetAudience":
			value = p.TargetAudience
		}
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}

// Apply filters and sorts a kind's rows. The default and fallback order is
// newest-first; recognized sort keys are price, -price and name.
func (f Filter) Apply(def *Definition, products []models.Product) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for i := range products {
		if f.Match(def, &products[i]) {
			matched = append(matched, products[i])
		}
	}

	less := func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) }
	switch f.Sort {
	case "price":
		less = func(i, j int) bool { return matched[i].Price < matched[j].Price }
	case "-price", "price-desc":
		less = func(i, j int) bool { return matched[i].Price > matched[j].Price }
	case "name":
		less = func(i, j int) bool { return matched[i].Name < matched[j].Name }
	}
	sort.SliceStable(matched, less)
	return matched
}
