// internal/domain/models/evidencetypes.go
package models

// Canonical evidence type identifiers.
//
// These values are stored in the EvidenceRecord.Type field and are used
// throughout the application as stable, language-agnostic keys. The type
// determines the rendering strategy (thumbnail, player, download link,
// external open) and which Source values are meaningful.
const (
	EvidenceTypeImage = "image"
	EvidenceTypeVideo = "video"
	EvidenceTypeDoc   = "doc"
	EvidenceTypeLink  = "link"
)

// EvidenceTypes is the full set of allowed evidence type identifiers.
//
// This slice should be treated as the single source of truth for validation.
// Any new type must be added here to be considered valid.
var EvidenceTypes = []string{
	EvidenceTypeImage,
	EvidenceTypeVideo,
	EvidenceTypeDoc,
	EvidenceTypeLink,
}

// DefaultEvidenceType is used when no specific type is provided.
const DefaultEvidenceType = EvidenceTypeImage

// IsValidEvidenceType reports whether t is a member of the closed type set.
func IsValidEvidenceType(t string) bool {
	for _, v := range EvidenceTypes {
		if t == v {
			return true
		}
	}
	return false
}
