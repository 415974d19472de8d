package rag

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vectorizer is a fitted TF-IDF term-weighting model over a stopworded
// vocabulary. Fitting the same document set always produces the same
// vocabulary and weights: the vocabulary is sorted, and nothing depends
// on map iteration order.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// FitVectorizer builds a TF-IDF model from the given document contents.
// Inverse document frequency uses the smoothed form ln((1+n)/(1+df))+1,
// so terms present in every document still carry a small positive weight.
func FitVectorizer(documents []string) *Vectorizer {
	n := len(documents)
	docFreq := make(map[string]int)

	for _, doc := range documents {
		seen := make(map[string]bool)
		for _, term := range tokenize(doc) {
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}

	return &Vectorizer{
		vocabulary: vocabulary,
		idf:        idf,
	}
}

// Transform projects text into the fitted vector space. Terms outside the
// training vocabulary contribute nothing. The result is L2-normalized so
// cosine similarity reduces to a dot product; an all-zero vector stays zero.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range tokenize(text) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// VocabularySize reports the number of distinct indexed terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// tokenize lowercases the text and splits it into runs of letters and
// digits, keeping tokens of two or more characters that are not stop words.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() < 2 {
			current.Reset()
			return
		}
		token := current.String()
		current.Reset()
		if !stopWords[token] {
			tokens = append(tokens, token)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

var stopWords = map[string]bool{
	"the": true, "be": true, "to": true, "of": true, "and": true,
	"in": true, "that": true, "have": true, "it": true, "for": true,
	"not": true, "on": true, "with": true, "he": true, "as": true,
	"you": true, "do": true, "at": true, "this": true, "but": true,
	"his": true, "by": true, "from": true, "they": true, "we": true,
	"say": true, "her": true, "she": true, "or": true, "an": true,
	"will": true, "my": true, "one": true, "all": true, "would": true,
	"there": true, "their": true, "what": true, "so": true, "up": true,
	"out": true, "if": true, "about": true, "who": true, "get": true,
	"which": true, "go": true, "me": true, "when": true, "make": true,
	"can": true, "like": true, "no": true, "just": true, "him": true,
	"know": true, "take": true, "into": true, "your": true, "some": true,
	"could": true, "them": true, "see": true, "other": true, "than": true,
	"then": true, "now": true, "only": true, "its": true, "over": true,
	"also": true, "after": true, "use": true, "two": true, "how": true,
	"our": true, "well": true, "way": true, "even": true, "because": true,
	"any": true, "these": true, "most": true, "us": true, "is": true,
	"was": true, "are": true, "been": true, "has": true, "had": true,
	"were": true, "said": true, "did": true, "having": true, "may": true,
	"am": true, "should": true, "too": true, "very": true, "more": true,
	"such": true, "each": true, "own": true, "while": true, "where": true,
	"before": true, "between": true, "both": true, "during": true,
	"through": true, "again": true, "off": true, "here": true,
}
