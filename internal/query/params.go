package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Params are the optional list parameters accepted by the catalog endpoints.
// Parsing is lenient: a malformed value leaves its field nil and the
// matching filter clause is skipped.
type Params struct {
	Search      []string
	MinRating   *float64
	Limit       *int
	Ordering    []string
	Active      *bool
	City        *string
	ServiceName string
}

// Parse reads Params from a query string.
func Parse(values url.Values) Params {
	var p Params

	p.Search = splitTerms(values.Get("search"))

	if raw := strings.TrimSpace(values.Get("minRating")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			p.MinRating = &v
		}
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			p.Limit = &v
		}
	}

	if raw := values.Get("ordering"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				p.Ordering = append(p.Ordering, key)
			}
		}
	}

	if raw := strings.TrimSpace(values.Get("actif")); raw != "" {
		switch strings.ToLower(raw) {
		case "true", "1":
			v := true
			p.Active = &v
		case "false", "0":
			v := false
			p.Active = &v
		}
	}

	if city := values.Get("ville"); city != "" {
		p.City = &city
	}

	p.ServiceName = strings.TrimSpace(values.Get("service"))

	return p
}

// splitTerms splits a search string on whitespace and commas.
func splitTerms(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
