package models

// KnowledgeDocument is one category-tagged advice passage from the
// fixed financial knowledge base. Immutable after construction.
type KnowledgeDocument struct {
	Category string
	Content  string
}
