package usecase

import (
	"context"
	"strings"
	"time"

	"campusnotes/internal/domain/entity"
	"campusnotes/internal/domain/repository"
	"campusnotes/pkg/errors"
	"campusnotes/pkg/logger"
)

// Credential is the caller's presented credential, if any. Downloads of
// approved uploads are legitimate without one, so the absent case is
// first-class rather than an empty token string.
type Credential struct {
	token   string
	present bool
}

func NoCredential() Credential {
	return Credential{}
}

func BearerCredential(token string) Credential {
	return Credential{token: token, present: true}
}

type DownloadUseCase struct {
	uploadRepo   repository.NoteUploadRepository
	roleRepo     repository.RoleRepository
	auth         TokenVerifier
	signer       URLSigner
	publicPrefix string
	urlTTL       time.Duration
}

func NewDownloadUseCase(
	uploadRepo repository.NoteUploadRepository,
	roleRepo repository.RoleRepository,
	auth TokenVerifier,
	signer URLSigner,
	publicPrefix string,
	urlTTL time.Duration,
) *DownloadUseCase {
	return &DownloadUseCase{
		uploadRepo:   uploadRepo,
		roleRepo:     roleRepo,
		auth:         auth,
		signer:       signer,
		publicPrefix: publicPrefix,
		urlTTL:       urlTTL,
	}
}

// IssueDownloadURL decides whether the caller may download the
// referenced file and, if so, returns a time-boxed signed URL.
// Approved uploads are world-readable; pending and rejected uploads
// are visible only to their uploader and admins.
func (uc *DownloadUseCase) IssueDownloadURL(ctx context.Context, fileRef string, cred Credential) (string, error) {
	if fileRef == "" {
		return "", errors.BadRequest("filePath is required", nil)
	}

	storagePath := uc.normalizeStoragePath(fileRef)

	upload, err := uc.uploadRepo.GetByStoragePath(ctx, storagePath)
	if err != nil {
		// A broken lookup and a missing record must be indistinguishable
		// to the caller.
		logger.Debug("Upload lookup failed for %q: %v", storagePath, err)
		return "", errors.NotFound("File", err)
	}

	if upload.Status != entity.UploadStatusApproved {
		if err := uc.authorizeNonApproved(ctx, upload, cred); err != nil {
			return "", err
		}
	}

	signedURL, err := uc.signer.SignedDownloadURL(ctx, storagePath, uc.urlTTL)
	if err != nil {
		logger.Error("Signed URL issuance failed for %q: %v", storagePath, err)
		return "", errors.SigningFailed("Failed to generate URL", err)
	}

	return signedURL, nil
}

// authorizeNonApproved grants access to a pending or rejected upload
// only to its uploader or an admin.
func (uc *DownloadUseCase) authorizeNonApproved(ctx context.Context, upload *entity.NoteUpload, cred Credential) error {
	if !cred.present {
		return errors.Unauthorized("Unauthorized", nil)
	}

	uid, err := uc.auth.VerifyToken(ctx, cred.token)
	if err != nil {
		return errors.Unauthorized("Unauthorized", err)
	}

	if uid == upload.UploaderID {
		return nil
	}

	isAdmin, err := uc.roleRepo.HasRole(ctx, uid, entity.RoleAdmin)
	if err != nil {
		// An unreachable role store denies, it never grants.
		logger.Warn("Role check failed for user %s: %v", uid, err)
		isAdmin = false
	}
	if !isAdmin {
		return errors.Forbidden("Forbidden", nil)
	}

	return nil
}

// normalizeStoragePath accepts both bare object paths and full public
// URLs recorded historically, reducing either to the object path.
func (uc *DownloadUseCase) normalizeStoragePath(fileRef string) string {
	if idx := strings.Index(fileRef, uc.publicPrefix); idx != -1 {
		return fileRef[idx+len(uc.publicPrefix):]
	}
	return fileRef
}
