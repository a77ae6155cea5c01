// Package classify assigns category, source and place ids to transactions by
// scanning the description against ordered keyword tables. Matching is a
// single Aho-Corasick pass per table; when several keywords hit, the entry
// closest to the top of the table wins, so list order is the priority rule.
// Classification is best-effort and never blocks an import: unmatched
// descriptions fall back to the defined defaults.
package classify

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Entry maps a lowercase keyword to a backend id.
type Entry struct {
	Keyword string
	ID      int
}

// Defaults for unmatched descriptions: category 0 is "uncategorized",
// source 0 is "unspecified", place stays unset.
const (
	CategoryUncategorized = 0
	SourceUnspecified     = 0
)

// Assignment is the outcome of classifying one description.
type Assignment struct {
	CategoryID int
	SourceID   int
	PlaceID    *int
}

// Classifier holds the three compiled keyword tables. It is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	categories *lookup
	sources    *lookup
	places     *lookup
}

// New builds a classifier from the default keyword tables.
func New() *Classifier {
	return NewWithTables(CategoryKeywords, SourceKeywords, PlaceKeywords)
}

// NewWithTables builds a classifier from caller-supplied tables. Order within
// each table is significant: earlier entries take priority.
func NewWithTables(categories, sources, places []Entry) *Classifier {
	return &Classifier{
		categories: newLookup(categories),
		sources:    newLookup(sources),
		places:     newLookup(places),
	}
}

// Classify lowercases the description and resolves each table independently.
func (c *Classifier) Classify(description string) Assignment {
	text := []byte(strings.ToLower(description))

	out := Assignment{
		CategoryID: CategoryUncategorized,
		SourceID:   SourceUnspecified,
	}
	if id, ok := c.categories.first(text); ok {
		out.CategoryID = id
	}
	if id, ok := c.sources.first(text); ok {
		out.SourceID = id
	}
	if id, ok := c.places.first(text); ok {
		place := id
		out.PlaceID = &place
	}
	return out
}

// lookup is one ordered keyword table compiled into a multi-pattern matcher.
type lookup struct {
	matcher *ahocorasick.Matcher
	ids     []int
}

func newLookup(entries []Entry) *lookup {
	// Dedupe while preserving order; with duplicate keywords only the first
	// occurrence can ever win, so later ones are dropped at build time.
	seen := make(map[string]struct{}, len(entries))
	patterns := make([][]byte, 0, len(entries))
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		kw := strings.ToLower(e.Keyword)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		patterns = append(patterns, []byte(kw))
		ids = append(ids, e.ID)
	}

	l := &lookup{ids: ids}
	if len(patterns) > 0 {
		l.matcher = ahocorasick.NewMatcher(patterns)
	}
	return l
}

// first returns the id of the matched keyword with the lowest table index.
func (l *lookup) first(text []byte) (int, bool) {
	if l.matcher == nil {
		return 0, false
	}
	hits := l.matcher.Match(text)
	if len(hits) == 0 {
		return 0, false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h < best {
			best = h
		}
	}
	return l.ids[best], true
}
