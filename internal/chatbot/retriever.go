package chatbot

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

type Passage struct {
	Content string
	Score   float64
}

// Retriever devolve as k passagens mais relevantes para uma consulta.
// A implementação padrão pontua por frequência de termos; um índice
// vetorial pode substituí-la sem mudar o serviço.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Passage, error)
}

type keywordRetriever struct {
	chunks []string
	freqs  []map[string]int
}

func NewKeywordRetriever(chunks []string) Retriever {
	freqs := make([]map[string]int, len(chunks))
	for i, chunk := range chunks {
		freq := make(map[string]int)
		for _, term := range tokenize(chunk) {
			freq[term]++
		}
		freqs[i] = freq
	}

	return &keywordRetriever{chunks: chunks, freqs: freqs}
}

func (r *keywordRetriever) Retrieve(_ context.Context, query string, k int) ([]Passage, error) {
	terms := tokenize(query)
	if len(terms) == 0 || k <= 0 {
		return nil, nil
	}

	scored := make([]Passage, 0, len(r.chunks))
	for i, chunk := range r.chunks {
		score := 0.0
		for _, term := range terms {
			score += float64(r.freqs[i][term])
		}
		if score > 0 {
			scored = append(scored, Passage{Content: chunk, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
