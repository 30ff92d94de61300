package filters

import (
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// MinSimilarity es la similitud mínima para ofrecer una sugerencia
const MinSimilarity = 0.5

// Suggest devuelve el candidato más parecido a term ("¿quisiste decir?")
// o "" si ninguno es suficientemente parecido. Devuelve el valor original
// del candidato, no su forma normalizada.
func Suggest(term string, candidates []string) string {
	norm := Normalize(term)
	if norm == "" || len(candidates) == 0 {
		return ""
	}

	byNorm := make(map[string]string, len(candidates))
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		n := Normalize(c)
		if n == "" {
			continue
		}
		if _, seen := byNorm[n]; seen {
			continue
		}
		byNorm[n] = c
		keys = append(keys, n)
	}
	if len(keys) == 0 {
		return ""
	}

	cm := closestmatch.New(keys, []int{2, 3})
	best := cm.Closest(norm)
	if best == "" || Similarity(norm, best) < MinSimilarity {
		return ""
	}
	return byNorm[best]
}

// Similarity devuelve 1 - distancia/longitud máxima, en [0,1]
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	// con DefaultOptions la sustitución cuesta 2, la distancia puede superar maxLen
	sim := 1.0 - float64(distance)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// Distinct devuelve los valores distintos (sin repetir) de un campo
func Distinct[T any](records []T, get func(T) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range records {
		v := get(r)
		n := Normalize(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, v)
	}
	return out
}
