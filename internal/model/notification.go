package model

import "time"

// Notification is an append-only record of a sharing event targeted at a
// user. Only the IsRead flag ever changes after creation.
type Notification struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Content           string    `json:"content"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
	RelatedDocumentID *string   `json:"related_document_id,omitempty"`
	RelatedUserID     *string   `json:"related_user_id,omitempty"`
}
