package rag

import (
	"sort"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

// Retriever ranks knowledge documents by TF-IDF cosine similarity to a
// free-text query. The vector space is fitted once in the constructor and
// never mutated afterwards, so one Retriever can serve concurrent requests.
type Retriever struct {
	store      *Store
	vectorizer *Vectorizer
	docVectors [][]float64
	logger     *zap.Logger
}

func NewRetriever(store *Store, logger *zap.Logger) *Retriever {
	docs := store.Documents()
	contents := make([]string, len(docs))
	for i, doc := range docs {
		contents[i] = doc.Content
	}

	vectorizer := FitVectorizer(contents)
	docVectors := make([][]float64, len(contents))
	for i, content := range contents {
		docVectors[i] = vectorizer.Transform(content)
	}

	logger.Info("Knowledge retriever fitted",
		zap.Int("documents", len(docs)),
		zap.Int("vocabulary", vectorizer.VocabularySize()),
	)

	return &Retriever{
		store:      store,
		vectorizer: vectorizer,
		docVectors: docVectors,
		logger:     logger,
	}
}

// Retrieve returns up to topK documents ranked by descending similarity to
// the query. Equal scores keep corpus order, and documents with similarity
// <= 0 are dropped, so a query sharing no vocabulary with the corpus yields
// an empty result rather than an error. An empty corpus behaves the same.
func (r *Retriever) Retrieve(query string, topK int) []models.KnowledgeDocument {
	docs := r.store.Documents()
	if len(docs) == 0 || topK <= 0 {
		return nil
	}

	queryVector := r.vectorizer.Transform(query)

	type scored struct {
		index      int
		similarity float64
	}
	ranked := make([]scored, len(docs))
	for i, docVector := range r.docVectors {
		ranked[i] = scored{index: i, similarity: cosineSimilarity(queryVector, docVector)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].similarity > ranked[j].similarity
	})

	if topK < len(ranked) {
		ranked = ranked[:topK]
	}

	var results []models.KnowledgeDocument
	for _, entry := range ranked {
		if entry.similarity > 0 {
			results = append(results, docs[entry.index])
		}
	}

	r.logger.Debug("Knowledge retrieval completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	return results
}
