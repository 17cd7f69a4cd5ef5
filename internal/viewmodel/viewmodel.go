// Package viewmodel implements the gallery page logic: the
// filter/sort/paginate pipeline the public site runs over the item list
// it fetched once, plus per-client like state, new-content detection
// and input debouncing. Everything here is pure state transformation so
// it can be exercised without a browser.
package viewmodel

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// PageSize is the fixed number of items per gallery page.
const PageSize = 9

// CategoryAll disables category filtering.
const CategoryAll = "all"

type SortKey string

const (
	SortDate  SortKey = "date"
	SortName  SortKey = "name"
	SortLikes SortKey = "likes"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// defaultDirection is what a sort key starts with when first selected.
func defaultDirection(key SortKey) Direction {
	if key == SortName {
		return Ascending
	}
	return Descending
}

// State is the full UI state the pipeline reacts to. Each sort key
// remembers its own direction independently.
type State struct {
	SearchTerm string
	Category   string
	SortKey    SortKey
	Directions map[SortKey]Direction
	Page       int
}

func NewState() State {
	return State{
		Category: CategoryAll,
		SortKey:  SortDate,
		Directions: map[SortKey]Direction{
			SortDate:  defaultDirection(SortDate),
			SortName:  defaultDirection(SortName),
			SortLikes: defaultDirection(SortLikes),
		},
		Page: 1,
	}
}

// SelectSort handles a click on a sort control: selecting the active
// key again flips its direction, switching keys resets the new key to
// its default direction.
func (s *State) SelectSort(key SortKey) {
	if s.Directions == nil {
		s.Directions = map[SortKey]Direction{}
	}
	if s.SortKey == key {
		if s.direction(key) == Ascending {
			s.Directions[key] = Descending
		} else {
			s.Directions[key] = Ascending
		}
		return
	}
	s.SortKey = key
	s.Directions[key] = defaultDirection(key)
}

func (s *State) direction(key SortKey) Direction {
	if d, ok := s.Directions[key]; ok {
		return d
	}
	return defaultDirection(key)
}

// View is the computed page the UI renders.
type View struct {
	Items      []domain.GalleryItem `json:"items"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
	TotalItems int                  `json:"totalItems"`
	NoResults  bool                 `json:"noResults"`
}

// Apply runs the pipeline: search filter, category filter, stable
// featured-first sort, pagination. Stage order matters; sorting after
// filtering keeps page numbers meaningful for the filtered set.
func Apply(items []domain.GalleryItem, s State) View {
	filtered := filterSearch(items, s.SearchTerm)
	filtered = filterCategory(filtered, s.Category)
	sortItems(filtered, s.SortKey, s.direction(s.SortKey))
	return paginate(filtered, s.Page)
}

func filterSearch(items []domain.GalleryItem, term string) []domain.GalleryItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]domain.GalleryItem(nil), items...)
	}
	var out []domain.GalleryItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) {
			out = append(out, it)
		}
	}
	return out
}

func filterCategory(items []domain.GalleryItem, category string) []domain.GalleryItem {
	if category == "" || category == CategoryAll {
		return items
	}
	var out []domain.GalleryItem
	for _, it := range items {
		c := it.Category
		if c == "" {
			c = domain.DefaultCategory
		}
		if c == category {
			out = append(out, it)
		}
	}
	return out
}

// sortItems sorts in place. Featured items always come first; the
// active sort key only orders within the featured and non-featured
// groups.
func sortItems(items []domain.GalleryItem, key SortKey, dir Direction) {
	coll := collate.New(language.Und, collate.Loose)

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}

		var less, equal bool
		switch key {
		case SortName:
			cmp := coll.CompareString(a.Name, b.Name)
			less, equal = cmp < 0, cmp == 0
		case SortLikes:
			less, equal = a.Likes < b.Likes, a.Likes == b.Likes
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			return false
		}
		if dir == Descending {
			return !less
		}
		return less
	})
}

func paginate(items []domain.GalleryItem, page int) View {
	total := len(items)
	totalPages := (total + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	if total == 0 {
		return View{Items: nil, Page: 1, TotalPages: 0, TotalItems: 0, NoResults: true}
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	return View{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
