package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusnotes/internal/domain/entity"
	apperrors "campusnotes/pkg/errors"
)

const testPublicPrefix = "/storage/v1/object/public/notes-files/"

type fakeUploadRepo struct {
	upload   *entity.NoteUpload
	err      error
	calls    int
	lastPath string
}

func (f *fakeUploadRepo) GetByStoragePath(ctx context.Context, storagePath string) (*entity.NoteUpload, error) {
	f.calls++
	f.lastPath = storagePath
	if f.err != nil {
		return nil, f.err
	}
	return f.upload, nil
}

type fakeRoleRepo struct {
	isAdmin  bool
	err      error
	calls    int
	lastUID  string
	lastRole string
}

func (f *fakeRoleRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	f.calls++
	f.lastUID = userID
	f.lastRole = role
	return f.isAdmin, f.err
}

func (f *fakeRoleRepo) FirstUserIDWithRole(ctx context.Context, role string) (string, error) {
	return "", errors.New("not implemented")
}

type fakeVerifier struct {
	uid   string
	err   error
	calls int
}

func (f *fakeVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.uid, nil
}

type fakeSigner struct {
	url      string
	err      error
	calls    int
	lastPath string
	lastTTL  time.Duration
}

func (f *fakeSigner) SignedDownloadURL(ctx context.Context, objectName string, ttl time.Duration) (string, error) {
	f.calls++
	f.lastPath = objectName
	f.lastTTL = ttl
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newTestUseCase(uploadRepo *fakeUploadRepo, roleRepo *fakeRoleRepo, verifier *fakeVerifier, signer *fakeSigner) *DownloadUseCase {
	return NewDownloadUseCase(uploadRepo, roleRepo, verifier, signer, testPublicPrefix, 3600*time.Second)
}

func noteUpload(status string) *entity.NoteUpload {
	return &entity.NoteUpload{ID: "n1", Status: status, UploaderID: "u1"}
}

func assertAppError(t *testing.T, err error, code string, status int) {
	t.Helper()
	var appErr *apperrors.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, code, appErr.Code)
		assert.Equal(t, status, appErr.Status)
	}
}

func TestApprovedUploadRequiresNoCredential(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusApproved)}
	roleRepo := &fakeRoleRepo{}
	verifier := &fakeVerifier{}
	signer := &fakeSigner{url: "https://signed.example/u1/123-notes.pdf"}
	uc := newTestUseCase(uploadRepo, roleRepo, verifier, signer)

	url, err := uc.IssueDownloadURL(context.Background(),
		"https://host/storage/v1/object/public/notes-files/u1/123-notes.pdf",
		NoCredential())

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example/u1/123-notes.pdf", url)
	assert.Equal(t, "u1/123-notes.pdf", signer.lastPath)
	assert.Equal(t, 3600*time.Second, signer.lastTTL)
	assert.Zero(t, verifier.calls)
	assert.Zero(t, roleRepo.calls)
}

func TestBarePathAndPublicURLResolveAlike(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusApproved)}
	signer := &fakeSigner{url: "https://signed.example/x"}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, &fakeVerifier{}, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", NoCredential())
	assert.NoError(t, err)
	barePath := signer.lastPath

	_, err = uc.IssueDownloadURL(context.Background(),
		"https://host/storage/v1/object/public/notes-files/u1/123-notes.pdf", NoCredential())
	assert.NoError(t, err)

	assert.Equal(t, barePath, signer.lastPath)
	assert.Equal(t, barePath, uploadRepo.lastPath)
}

func TestEmptyFilePathFailsBeforeAnyLookup(t *testing.T) {
	uploadRepo := &fakeUploadRepo{}
	verifier := &fakeVerifier{}
	signer := &fakeSigner{}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, verifier, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "", NoCredential())

	assertAppError(t, err, "BAD_REQUEST", http.StatusBadRequest)
	assert.Zero(t, uploadRepo.calls)
	assert.Zero(t, verifier.calls)
	assert.Zero(t, signer.calls)
}

func TestMissingRecordAndLookupFailureAreIndistinguishable(t *testing.T) {
	missing := &fakeUploadRepo{err: apperrors.NotFound("Upload record", nil)}
	broken := &fakeUploadRepo{err: errors.New("connection refused")}

	for _, uploadRepo := range []*fakeUploadRepo{missing, broken} {
		signer := &fakeSigner{}
		uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, &fakeVerifier{}, signer)

		_, err := uc.IssueDownloadURL(context.Background(), "u1/ghost.pdf", NoCredential())

		assertAppError(t, err, "NOT_FOUND", http.StatusNotFound)
		assert.Zero(t, signer.calls)
	}
}

func TestPendingUploadWithoutCredentialIsUnauthorized(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusPending)}
	signer := &fakeSigner{}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, &fakeVerifier{}, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", NoCredential())

	assertAppError(t, err, "UNAUTHORIZED", http.StatusUnauthorized)
	assert.Zero(t, signer.calls)
}

func TestRejectedUploadWithoutCredentialIsUnauthorized(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusRejected)}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, &fakeVerifier{}, &fakeSigner{})

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", NoCredential())

	assertAppError(t, err, "UNAUTHORIZED", http.StatusUnauthorized)
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusPending)}
	verifier := &fakeVerifier{err: errors.New("token expired")}
	signer := &fakeSigner{}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, verifier, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", BearerCredential("bad-token"))

	assertAppError(t, err, "UNAUTHORIZED", http.StatusUnauthorized)
	assert.Zero(t, signer.calls)
}

func TestUploaderMayDownloadOwnPendingUpload(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusPending)}
	roleRepo := &fakeRoleRepo{}
	verifier := &fakeVerifier{uid: "u1"}
	signer := &fakeSigner{url: "https://signed.example/x"}
	uc := newTestUseCase(uploadRepo, roleRepo, verifier, signer)

	url, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", BearerCredential("token"))

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example/x", url)
	// Ownership grants access without consulting the role store.
	assert.Zero(t, roleRepo.calls)
}

func TestAdminMayDownloadAnyNonApprovedUpload(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusRejected)}
	roleRepo := &fakeRoleRepo{isAdmin: true}
	verifier := &fakeVerifier{uid: "mod-7"}
	signer := &fakeSigner{url: "https://signed.example/x"}
	uc := newTestUseCase(uploadRepo, roleRepo, verifier, signer)

	url, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", BearerCredential("token"))

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example/x", url)
	assert.Equal(t, "mod-7", roleRepo.lastUID)
	assert.Equal(t, entity.RoleAdmin, roleRepo.lastRole)
}

func TestStrangerIsForbidden(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusRejected)}
	roleRepo := &fakeRoleRepo{isAdmin: false}
	verifier := &fakeVerifier{uid: "u2"}
	signer := &fakeSigner{}
	uc := newTestUseCase(uploadRepo, roleRepo, verifier, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", BearerCredential("token"))

	assertAppError(t, err, "FORBIDDEN", http.StatusForbidden)
	assert.Zero(t, signer.calls)
}

func TestRoleStoreFailureDenies(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusPending)}
	roleRepo := &fakeRoleRepo{err: errors.New("role store down")}
	verifier := &fakeVerifier{uid: "u2"}
	uc := newTestUseCase(uploadRepo, roleRepo, verifier, &fakeSigner{})

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", BearerCredential("token"))

	assertAppError(t, err, "FORBIDDEN", http.StatusForbidden)
}

func TestSigningFailureIsInternal(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusApproved)}
	signer := &fakeSigner{err: errors.New("object missing")}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, &fakeVerifier{}, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "u1/123-notes.pdf", NoCredential())

	assertAppError(t, err, "SIGNING_FAILED", http.StatusInternalServerError)
}

func TestVerbatimPathWithoutPublicPrefix(t *testing.T) {
	uploadRepo := &fakeUploadRepo{upload: noteUpload(entity.UploadStatusApproved)}
	signer := &fakeSigner{url: "https://signed.example/x"}
	uc := newTestUseCase(uploadRepo, &fakeRoleRepo{}, &fakeVerifier{}, signer)

	_, err := uc.IssueDownloadURL(context.Background(), "archive/old-syllabus.pdf", NoCredential())

	assert.NoError(t, err)
	assert.Equal(t, "archive/old-syllabus.pdf", signer.lastPath)
}
