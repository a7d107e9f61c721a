package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/igniteworks/cert-ignite-api/common"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func InitMinIO() error {
	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: true,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	common.MinIOClient = client
	return nil
}

// CertificateStorage is the blob-store surface the certificate handlers use.
type CertificateStorage interface {
	UploadPDF(ctx context.Context, objectName string, data []byte) (string, error)
	DownloadByURL(ctx context.Context, fileURL string) ([]byte, error)
}

// MinioStorage stores rendered certificates in a publicly readable bucket.
type MinioStorage struct {
	client   *minio.Client
	endpoint string
	bucket   string
}

var _ CertificateStorage = (*MinioStorage)(nil)

func NewMinioStorage(client *minio.Client, endpoint string, bucket string) *MinioStorage {
	return &MinioStorage{
		client:   client,
		endpoint: endpoint,
		bucket:   bucket,
	}
}

// UploadPDF uploads a rendered certificate and returns its public URL.
// The object at objectName is overwritten if it already exists.
func (s *MinioStorage) UploadPDF(ctx context.Context, objectName string, data []byte) (string, error) {
	if err := s.ensureBucketPublic(ctx); err != nil {
		slog.Warn("Failed to ensure bucket is public", "error", err, "bucket", s.bucket)
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload certificate: %w", err)
	}

	return s.ObjectURL(objectName), nil
}

// DownloadByURL fetches an object previously stored in the certificate bucket
// given its full public URL.
func (s *MinioStorage) DownloadByURL(ctx context.Context, fileURL string) ([]byte, error) {
	objectName, err := ExtractObjectNameFromURL(fileURL, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to extract object name from URL: %w", err)
	}

	object, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download certificate: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate object: %w", err)
	}

	return data, nil
}

// ObjectURL builds the direct public URL for an object in the certificate bucket.
func (s *MinioStorage) ObjectURL(objectName string) string {
	return fmt.Sprintf("https://%s/%s/%s", s.endpoint, s.bucket, objectName)
}

// ensureBucketPublic creates the bucket if missing and sets a public read policy
func (s *MinioStorage) ensureBucketPublic(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// ExtractObjectNameFromURL extracts the object name from a MinIO URL
// Example: https://endpoint/bucket/path/to/file.pdf -> path/to/file.pdf
func ExtractObjectNameFromURL(url string, bucketName string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("URL is empty")
	}

	bucketPrefix := fmt.Sprintf("/%s/", bucketName)
	idx := strings.Index(url, bucketPrefix)
	if idx == -1 {
		return "", fmt.Errorf("bucket name not found in URL")
	}

	objectName := url[idx+len(bucketPrefix):]
	if objectName == "" {
		return "", fmt.Errorf("object name is empty")
	}

	return objectName, nil
}
