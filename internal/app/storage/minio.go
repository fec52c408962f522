package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore mirrors uploads into MinIO object storage, keyed per user.
// A local staging copy is kept so the transcriber can read the file.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	staging *LocalStore
}

// NewMinioStoreFromEnv creates a MinIO-backed store configured from
// MINIO_* environment variables.
func NewMinioStoreFromEnv(staging *LocalStore) (*MinioStore, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minioadmin"
	}

	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "minioadmin"
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "voicebrief-uploads"
	}

	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MinioStore{
		client:  client,
		bucket:  bucket,
		staging: staging,
	}

	if err := store.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Save stages the upload locally, then copies it into the bucket under
// username/storedName.
func (s *MinioStore) Save(ctx context.Context, r io.Reader, filename string, username string) (*SavedFile, error) {
	saved, err := s.staging.Save(ctx, r, filename, username)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s", username, saved.StoredName)
	_, err = s.client.FPutObject(ctx, s.bucket, key, saved.Path, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store object: %w", err)
	}

	return saved, nil
}
