package model

import "time"

// Document represents an uploaded file's metadata. This is a pure domain
// model with no database-specific dependencies or tags; the file bytes
// themselves live in object storage under StoragePath.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	OwnerID      string    `json:"owner_id"`
	StoragePath  string    `json:"storage_path"`
	FileType     string    `json:"file_type"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	IsPublic     bool      `json:"is_public"`
	UploadedAt   time.Time `json:"uploaded_at"`
	LastModified time.Time `json:"last_modified"`
}

// IsOwnedBy reports whether userID owns the document. Ownership is
// immutable after creation.
func (d *Document) IsOwnedBy(userID string) bool {
	return d.OwnerID == userID
}
