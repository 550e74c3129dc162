package titles

import (
	"math"
	"sort"
	"strings"
)

// Suggestion is a stored title ranked by similarity to a query.
type Suggestion struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// termVector is a weighted bag of normalized title words.
type termVector struct {
	terms map[string]float64
	norm  float64
}

func newTermVector(title string) termVector {
	terms := make(map[string]float64)
	for _, word := range strings.Fields(Normalize(title)) {
		terms[word]++
	}
	return termVector{terms: terms}.withNorm()
}

func (v termVector) withNorm() termVector {
	var sum float64
	for _, w := range v.terms {
		sum += w * w
	}
	v.norm = math.Sqrt(sum)
	return v
}

// weighted scales each term by its inverse document frequency, so words
// shared by many titles ("the", "of") count least.
func (v termVector) weighted(idf map[string]float64) termVector {
	out := termVector{terms: make(map[string]float64, len(v.terms))}
	for term, count := range v.terms {
		w, ok := idf[term]
		if !ok {
			w = 1
		}
		if count*w > 0 {
			out.terms[term] = count * w
		}
	}
	return out.withNorm()
}

func cosine(a, b termVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for term, w := range a.terms {
		dot += w * b.terms[term]
	}
	return dot / (a.norm * b.norm)
}

// Suggest ranks candidates by TF-IDF cosine similarity to name and returns
// at most limit of them with a positive score, best first. Ties keep the
// candidates' order.
func Suggest(candidates []string, name string, limit int) []Suggestion {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	vectors := make([]termVector, len(candidates))
	docFreq := make(map[string]int)
	for i, candidate := range candidates {
		vectors[i] = newTermVector(candidate)
		for term := range vectors[i].terms {
			docFreq[term]++
		}
	}
	n := float64(len(candidates))
	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		idf[term] = 1 + math.Log((n+1)/(1+float64(df)))
	}

	query := newTermVector(name).weighted(idf)
	var out []Suggestion
	for i, candidate := range candidates {
		score := cosine(query, vectors[i].weighted(idf))
		if score > 0 {
			out = append(out, Suggestion{Title: candidate, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
