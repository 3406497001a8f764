// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxEvidenceFormSize is the in-memory budget handed to ParseMultipartForm
	// for evidence upload submissions.
	MaxEvidenceFormSize = 32 << 20 // 32 MB

	// DefaultMaxUploadBytes caps a single uploaded file. Configurable at
	// startup; this is the fallback.
	DefaultMaxUploadBytes = 10 << 20 // 10 MB
)
