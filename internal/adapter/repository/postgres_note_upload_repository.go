package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"campusnotes/internal/domain/entity"
	"campusnotes/internal/domain/repository"
	"campusnotes/pkg/errors"
)

type postgresNoteUploadRepository struct {
	pool         *pgxpool.Pool
	publicPrefix string
}

func NewPostgresNoteUploadRepository(pool *pgxpool.Pool, publicPrefix string) repository.NoteUploadRepository {
	return &postgresNoteUploadRepository{
		pool:         pool,
		publicPrefix: publicPrefix,
	}
}

func (r *postgresNoteUploadRepository) GetByStoragePath(ctx context.Context, storagePath string) (*entity.NoteUpload, error) {
	// Older rows store the full public URL, newer rows the bare object
	// path. Match both forms exactly; a path that is merely a substring
	// of another stored path must not resolve. The path goes into a
	// LIKE pattern, so its metacharacters must match literally -- an
	// underscore in a filename is a character, not a wildcard.
	pattern := "%" + escapeLikePattern(r.publicPrefix+storagePath)
	rows, err := r.pool.Query(ctx, `
		SELECT id, status, uploader_id
		FROM notes_uploads
		WHERE file_url = $1 OR file_url LIKE $2 ESCAPE '\'
		LIMIT 2
	`, storagePath, pattern)
	if err != nil {
		return nil, errors.Internal("Failed to query upload record", err)
	}
	defer rows.Close()

	var uploads []*entity.NoteUpload
	for rows.Next() {
		upload := &entity.NoteUpload{}
		if err := rows.Scan(&upload.ID, &upload.Status, &upload.UploaderID); err != nil {
			return nil, errors.Internal("Failed to scan upload record", err)
		}
		uploads = append(uploads, upload)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to read upload records", err)
	}

	if len(uploads) == 0 {
		return nil, errors.NotFound("Upload record", nil)
	}
	if len(uploads) > 1 {
		// Refuse to guess which record governs access.
		return nil, errors.Internal("Ambiguous upload record match", nil)
	}

	return uploads[0], nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern makes a storage path safe to embed in a LIKE
// pattern so that % and _ in filenames match themselves.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
