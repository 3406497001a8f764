// internal/domain/models/evidence.go
package models

// EvidenceRecord is one artifact (image, video, document, link) submitted as
// proof of a learning activity in the Guided-Learning program.
//
// Records come from two places:
//  1. Seed records compiled into the binary, present from startup and immutable.
//  2. Visitor-submitted records created by the upload form, which live only for
//     the visitor's session and are never persisted.
//
// The catalog is append-only: records are never updated or removed one by one.
type EvidenceRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Section     string   `json:"section"` // see sectiontypes.go
	Type        string   `json:"type"`    // see evidencetypes.go
	Week        int      `json:"week"`    // 1..17 program week
	Tags        []string `json:"tags,omitempty"`
	Source      Source   `json:"source"`
}

// Source locates a record's content.
//
// Ephemeral sources point at session-scoped upload blobs with no durable
// backing store; they disappear when the visitor's session expires. That is
// expected behavior, not data loss.
type Source struct {
	URL       string `json:"url,omitempty"`
	Embedded  bool   `json:"embedded,omitempty"`  // hosted-platform embed (needs an embed frame)
	Ephemeral bool   `json:"ephemeral,omitempty"` // session-scoped upload, not durable
}

// HasURL returns true if the record has any content locator at all.
func (r *EvidenceRecord) HasURL() bool {
	return r.Source.URL != ""
}

// IsEmbed returns true for hosted-platform video embeds (e.g. YouTube).
func (r *EvidenceRecord) IsEmbed() bool {
	return r.Type == EvidenceTypeVideo && r.Source.Embedded
}

// HasTag reports whether the record carries the given tag exactly.
func (r *EvidenceRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
