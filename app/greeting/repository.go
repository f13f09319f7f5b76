package greeting

import (
	"maps"
	"slices"
)

// Repository looks up greetings by language code.
type Repository interface {
	Find(lang string) (string, bool)
	Languages() []string
}

// MemoryRepository is a fixed, in-memory Repository.
type MemoryRepository struct {
	greetings map[string]string
}

// NewMemoryRepository returns a repository seeded with a few languages.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{greetings: map[string]string{
		"de": "Hallo",
		"en": "Hello",
		"es": "Hola",
		"fr": "Bonjour",
		"ko": "안녕하세요",
	}}
}

func (r *MemoryRepository) Find(lang string) (string, bool) {
	g, ok := r.greetings[lang]
	return g, ok
}

// Languages returns the known language codes, sorted.
func (r *MemoryRepository) Languages() []string {
	return slices.Sorted(maps.Keys(r.greetings))
}
