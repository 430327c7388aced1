package model

import "time"

// SessionRecord is the identity carried by the signed session cookie.
// It is created at login, read on every authenticated request, and
// destroyed at logout.
type SessionRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Roles a session can carry. The role selects which dashboard the UI
// renders; the API itself does not enforce it.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// SopFile is a stored SOP document entry as returned by the list endpoint.
type SopFile struct {
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SopDocument is a stored SOP document with its full text content.
// Identity is the file name; a later upload with the same name overwrites.
type SopDocument struct {
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SopMetadata holds whatever document metadata the model could extract
// from the SOP text. All fields are best-effort and may be empty.
type SopMetadata struct {
	Title         string `json:"title,omitempty"`
	Version       string `json:"version,omitempty"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
	Author        string `json:"author,omitempty"`
	Other         string `json:"other,omitempty"`
}

// ClassificationResult is the model's determination of whether a feature
// qualifies for the Slow Release process, grounded in the current SOP.
// Produced fresh per request and never persisted.
type ClassificationResult struct {
	IsSlowRelease      bool        `json:"isSlowRelease"`
	Justification      string      `json:"justification"`
	ReferencedSections []string    `json:"referencedSections"`
	Metadata           SopMetadata `json:"metadata"`
}
