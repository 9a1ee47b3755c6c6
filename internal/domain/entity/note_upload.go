package entity

import (
	"time"
)

// Upload lifecycle. New uploads start pending; moderation moves them to
// approved or rejected. The gateway only ever reads this field.
const (
	UploadStatusPending  = "pending"
	UploadStatusApproved = "approved"
	UploadStatusRejected = "rejected"
)

// Roles mirror the platform's app_role enum.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

type NoteUpload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	College         string    `json:"college"`
	Branch          string    `json:"branch"`
	Semester        string    `json:"semester"`
	Subject         string    `json:"subject"`
	Type            string    `json:"type"`
	FileURL         string    `json:"file_url"`
	Status          string    `json:"status"`
	UploaderID      string    `json:"uploader_id"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	Downloads       int64     `json:"downloads"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
