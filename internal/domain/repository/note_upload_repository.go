package repository

import (
	"context"

	"campusnotes/internal/domain/entity"
)

// NoteUploadRepository reads upload records from the platform's
// metadata store. Uploads and moderation are owned by the main
// application; the gateway never writes here.
type NoteUploadRepository interface {
	// GetByStoragePath resolves the single upload record referencing the
	// given object path. Implementations must error when the match is
	// not exactly one record.
	GetByStoragePath(ctx context.Context, storagePath string) (*entity.NoteUpload, error)
}
