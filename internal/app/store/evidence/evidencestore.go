// internal/app/store/evidence/evidencestore.go
package evidencestore

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/google/uuid"
)

// Store is the in-memory evidence catalog.
//
// It owns the seed records (compiled in, immutable, shared by everyone) and
// the per-visitor records created through the upload form. Visitor records
// and their upload blobs are session-scoped: they are dropped wholesale when
// the visitor goes idle past the configured TTL. Append is the only mutator;
// there is no update or delete of individual records.
//
// The store is safe for concurrent use by HTTP handlers.
type Store struct {
	mu       sync.RWMutex
	seed     []models.EvidenceRecord
	visitors map[string]*visitorState
	ttl      time.Duration

	// now is a test hook; production code always uses time.Now.
	now func() time.Time
}

type visitorState struct {
	records  []models.EvidenceRecord
	blobs    map[string]Blob
	lastSeen time.Time
}

// Blob holds the bytes of an uploaded file for the lifetime of the visitor's
// session. There is no durable storage behind it.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

var (
	ErrEmptyTitle     = errors.New("title is required")
	ErrInvalidSection = errors.New("section is not a recognized value")
	ErrInvalidType    = errors.New("type is not a recognized value")
	ErrWeekOutOfRange = fmt.Errorf("week must be between %d and %d", models.MinWeek, models.MaxWeek)
	ErrDuplicateID    = errors.New("a record with this id already exists")
)

// New builds a Store around the given seed records. The seed is validated
// once here so that no later operation can observe an invalid record: ids
// must be unique and non-empty, sections and types must be members of their
// closed sets, and weeks must be in program range.
//
// Visitor state idles out after ttl; ttl <= 0 falls back to one hour.
func New(seed []models.EvidenceRecord, ttl time.Duration) (*Store, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	seen := make(map[string]struct{}, len(seed))
	for i, rec := range seed {
		if err := validate(rec); err != nil {
			return nil, fmt.Errorf("seed record %d (%q): %w", i, rec.Title, err)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("seed record %d (%q): id is required", i, rec.Title)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("seed record %d (%q): %w", i, rec.Title, ErrDuplicateID)
		}
		seen[rec.ID] = struct{}{}
	}

	s := &Store{
		seed:     make([]models.EvidenceRecord, len(seed)),
		visitors: make(map[string]*visitorState),
		ttl:      ttl,
		now:      time.Now,
	}
	copy(s.seed, seed)
	return s, nil
}

// validate enforces the record invariants the catalog guarantees: a title,
// closed-set section and type, and a week inside program bounds.
func validate(rec models.EvidenceRecord) error {
	if strings.TrimSpace(rec.Title) == "" {
		return ErrEmptyTitle
	}
	if !models.IsValidSection(rec.Section) {
		return ErrInvalidSection
	}
	if !models.IsValidEvidenceType(rec.Type) {
		return ErrInvalidType
	}
	if rec.Week < models.MinWeek || rec.Week > models.MaxWeek {
		return ErrWeekOutOfRange
	}
	return nil
}

// Records returns the full ordered sequence visible to the given visitor:
// seed records first, then that visitor's own submissions in insertion order.
// The returned slice is a copy; callers may not mutate catalog state through
// it.
func (s *Store) Records(visitorID string) []models.EvidenceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vs := s.visitors[visitorID]
	n := len(s.seed)
	if vs != nil {
		n += len(vs.records)
	}
	out := make([]models.EvidenceRecord, 0, n)
	out = append(out, s.seed...)
	if vs != nil {
		out = append(out, vs.records...)
	}
	return out
}

// Get returns the record with the given id as seen by the visitor.
func (s *Store) Get(visitorID, id string) (models.EvidenceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.seed {
		if rec.ID == id {
			return rec, true
		}
	}
	if vs := s.visitors[visitorID]; vs != nil {
		for _, rec := range vs.records {
			if rec.ID == id {
				return rec, true
			}
		}
	}
	return models.EvidenceRecord{}, false
}

// Append validates rec and adds it to the visitor's session records.
//
// A fresh unique id is generated when the caller supplies none. Existing
// records are never reordered or removed. The populated record is returned.
func (s *Store) Append(visitorID string, rec models.EvidenceRecord) (models.EvidenceRecord, error) {
	if err := validate(rec); err != nil {
		return models.EvidenceRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vs := s.touchLocked(visitorID)

	if rec.ID == "" {
		rec.ID = "u-" + uuid.NewString()
	}
	if s.idExistsLocked(vs, rec.ID) {
		return models.EvidenceRecord{}, ErrDuplicateID
	}

	vs.records = append(vs.records, rec)
	return rec, nil
}

// PutBlob stores the bytes behind an ephemeral upload source under the
// record's id. The blob shares the visitor's session lifetime.
func (s *Store) PutBlob(visitorID, id string, b Blob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vs := s.touchLocked(visitorID)
	vs.blobs[id] = b
}

// Blob returns the uploaded bytes for the given record id, if the visitor's
// session still holds them.
func (s *Store) Blob(visitorID, id string) (Blob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vs := s.visitors[visitorID]
	if vs == nil {
		return Blob{}, false
	}
	vs.lastSeen = s.now()
	b, ok := vs.blobs[id]
	return b, ok
}

// Touch refreshes the visitor's idle clock without changing any records.
// Handlers call it on read-only page views so an active visitor's uploads
// do not expire under them.
func (s *Store) Touch(visitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vs := s.visitors[visitorID]; vs != nil {
		vs.lastSeen = s.now()
	}
}

// SeedCount returns the number of immutable seed records.
func (s *Store) SeedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seed)
}

// VisitorCount returns the number of visitors currently holding session
// records.
func (s *Store) VisitorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.visitors)
}

// Sweep drops all visitor state idle past the TTL and reports how many
// visitors were removed. Seed records are never touched.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, vs := range s.visitors {
		if vs.lastSeen.Before(cutoff) {
			delete(s.visitors, id)
			removed++
		}
	}
	return removed
}

// touchLocked returns the visitor's state, creating it on first use.
// Caller must hold s.mu.
func (s *Store) touchLocked(visitorID string) *visitorState {
	vs := s.visitors[visitorID]
	if vs == nil {
		vs = &visitorState{blobs: make(map[string]Blob)}
		s.visitors[visitorID] = vs
	}
	vs.lastSeen = s.now()
	return vs
}

// idExistsLocked reports whether id is taken in the seed or in the visitor's
// own records. Caller must hold s.mu.
func (s *Store) idExistsLocked(vs *visitorState, id string) bool {
	for _, rec := range s.seed {
		if rec.ID == id {
			return true
		}
	}
	for _, rec := range vs.records {
		if rec.ID == id {
			return true
		}
	}
	return false
}
