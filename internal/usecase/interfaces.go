package usecase

import (
	"context"
	"time"
)

// TokenVerifier resolves a bearer credential to a user identity.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// URLSigner issues time-boxed download links for object-store paths.
type URLSigner interface {
	SignedDownloadURL(ctx context.Context, objectName string, ttl time.Duration) (string, error)
}
