// Package filters deriva la lista visible de una pantalla a partir de los
// registros ya descargados y de los filtros activos. No modifica la entrada.
package filters

import (
	"sort"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
)

// SortKey clave de ordenamiento
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// ParseSortKey acepta las claves conocidas; cualquier otra no ordena
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return k
	default:
		return SortNone
	}
}

// Spec describe los filtros activos de una lista
type Spec struct {
	Search       string            `json:"search,omitempty"`
	SearchFields []string          `json:"searchFields,omitempty"`
	Equals       map[string]string `json:"equals,omitempty"`
	MinPrice     *float64          `json:"minPrice,omitempty"`
	MaxPrice     *float64          `json:"maxPrice,omitempty"`
	Sort         SortKey           `json:"sort,omitempty"`
}

// Fields describe cómo leer los campos de un tipo de registro
type Fields[T any] struct {
	Text      map[string]func(T) string
	Price     func(T) float64
	CreatedAt func(T) time.Time
	Rating    func(T) float64
}

// Active indica si el spec impone alguna restricción u orden
func (s Spec) Active() bool {
	if strings.TrimSpace(s.Search) != "" || s.Sort != SortNone {
		return true
	}
	for _, v := range s.Equals {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return bound(s.MinPrice) || bound(s.MaxPrice)
}

// Apply filtra y ordena records según spec y devuelve un slice nuevo
func Apply[T any](records []T, spec Spec, fields Fields[T]) []T {
	if !spec.Active() {
		return append(make([]T, 0, len(records)), records...)
	}
	out := make([]T, 0, len(records))

	term := Normalize(spec.Search)
	searchFields := spec.SearchFields
	if len(searchFields) == 0 {
		searchFields = make([]string, 0, len(fields.Text))
		for name := range fields.Text {
			searchFields = append(searchFields, name)
		}
	}

	for _, r := range records {
		if term != "" && !matchesSearch(r, term, searchFields, fields) {
			continue
		}
		if !matchesEquals(r, spec.Equals, fields) {
			continue
		}
		if !matchesPrice(r, spec.MinPrice, spec.MaxPrice, fields) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, spec.Sort, fields)
	return out
}

// Normalize pasa a minúsculas y quita acentos para comparar textos
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToLower(unidecode.Unidecode(s))
}

func matchesSearch[T any](r T, term string, names []string, fields Fields[T]) bool {
	for _, name := range names {
		get, ok := fields.Text[name]
		if !ok {
			continue
		}
		if strings.Contains(Normalize(get(r)), term) {
			return true
		}
	}
	return false
}

func matchesEquals[T any](r T, equals map[string]string, fields Fields[T]) bool {
	for name, want := range equals {
		want = Normalize(want)
		if want == "" {
			continue
		}
		get, ok := fields.Text[name]
		if !ok {
			continue
		}
		if Normalize(get(r)) != want {
			return false
		}
	}
	return true
}

// un límite en 0 o negativo no restringe nada
func bound(v *float64) bool {
	return v != nil && *v > 0
}

func matchesPrice[T any](r T, min, max *float64, fields Fields[T]) bool {
	if fields.Price == nil || (!bound(min) && !bound(max)) {
		return true
	}
	price := fields.Price(r)
	if bound(min) && price < *min {
		return false
	}
	if bound(max) && price > *max {
		return false
	}
	return true
}

func sortRecords[T any](out []T, key SortKey, fields Fields[T]) {
	switch key {
	case SortPriceAsc:
		if fields.Price != nil {
			sort.SliceStable(out, func(i, j int) bool {
				return fields.Price(out[i]) < fields.Price(out[j])
			})
		}
	case SortPriceDesc:
		if fields.Price != nil {
			sort.SliceStable(out, func(i, j int) bool {
				return fields.Price(out[i]) > fields.Price(out[j])
			})
		}
	case SortNewest:
		if fields.CreatedAt != nil {
			sort.SliceStable(out, func(i, j int) bool {
				return fields.CreatedAt(out[i]).After(fields.CreatedAt(out[j]))
			})
		}
	case SortRating:
		if fields.Rating != nil {
			sort.SliceStable(out, func(i, j int) bool {
				return fields.Rating(out[i]) > fields.Rating(out[j])
			})
		}
	}
}
