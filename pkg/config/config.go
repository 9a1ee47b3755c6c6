package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSignedURLTTL is the validity window, in seconds, of issued
// download URLs. One hour keeps links shareable within a study session
// while bounding how long a leaked link stays usable.
const DefaultSignedURLTTL = 3600

// DefaultPublicBucketPrefix is the structural prefix of public object
// URLs recorded in older upload rows. File references carrying it are
// reduced to the bare object path before lookup and signing.
const DefaultPublicBucketPrefix = "/storage/v1/object/public/notes-files/"

type Config struct {
	ServerPort         string
	Environment        string
	FirebaseProject    string
	StorageBucket      string
	DatabaseURL        string
	PublicBucketPrefix string
	SignedURLTTL       int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", "notes-files"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		PublicBucketPrefix: getEnv("PUBLIC_BUCKET_PREFIX", DefaultPublicBucketPrefix),
		SignedURLTTL:       getEnvAsInt64("SIGNED_URL_TTL", DefaultSignedURLTTL),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
