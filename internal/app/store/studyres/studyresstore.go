// internal/app/store/studyres/studyresstore.go
package studyresstore

import (
	"strings"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

// Store holds the compiled-in study resources and cited references. Data is
// fixed at startup, so reads need no locking.
type Store struct {
	resources  []models.StudyResource
	references []models.Reference
	bySlug     map[string]int
}

// New builds the store and indexes resources by slug for detail lookups.
func New(resources []models.StudyResource, references []models.Reference) *Store {
	s := &Store{
		resources:  make([]models.StudyResource, len(resources)),
		references: make([]models.Reference, len(references)),
		bySlug:     make(map[string]int, len(resources)),
	}
	copy(s.resources, resources)
	copy(s.references, references)
	for i, r := range s.resources {
		s.bySlug[Slug(r.Name)] = i
	}
	return s
}

// Slug derives the URL path segment for a resource name: lowercased with
// runs of spaces collapsed to single hyphens.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Resources returns every study resource in display order.
func (s *Store) Resources() []models.StudyResource {
	out := make([]models.StudyResource, len(s.resources))
	copy(out, s.resources)
	return out
}

// BySlug returns the resource whose name slugifies to slug.
func (s *Store) BySlug(slug string) (models.StudyResource, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return models.StudyResource{}, false
	}
	return s.resources[i], true
}

// References returns the cited sources in citation order.
func (s *Store) References() []models.Reference {
	out := make([]models.Reference, len(s.references))
	copy(out, s.references)
	return out
}
