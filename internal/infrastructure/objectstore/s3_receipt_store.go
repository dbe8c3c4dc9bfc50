package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"ckforest/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrReceiptStoreNotConfigured = errors.New("receipt store not configured")

// S3ReceiptStore uploads deposit receipts to an S3 bucket and returns a
// public object URL. Uploads are never deduplicated: a retried submission
// uploads again and an orphaned object from a failed attempt is acceptable.
type S3ReceiptStore struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	mockMode bool
}

var _ interfaces.IReceiptStore = (*S3ReceiptStore)(nil)

func NewS3ReceiptStore(cfg aws.Config) (*S3ReceiptStore, error) {
	bucket := getenvDefault("RECEIPTS_BUCKET", "ckforest-receipts")

	if isReceiptStoreMockEnabled() {
		log.Printf("[receipt][store] mock mode enabled bucket=%s", bucket)
		return &S3ReceiptStore{bucket: bucket, mockMode: true}, nil
	}

	store := &S3ReceiptStore{
		client:   s3.NewFromConfig(cfg, func(o *s3.Options) { o.UsePathStyle = os.Getenv("S3_ENDPOINT") != "" }),
		bucket:   bucket,
		region:   cfg.Region,
		endpoint: os.Getenv("S3_ENDPOINT"),
	}
	log.Printf("[receipt][store] S3 client initialized bucket=%s region=%s", bucket, cfg.Region)
	return store, nil
}

// Upload stores the receipt under a fresh uploads/ key. The file name only
// survives as a suffix; the uuid prefix keeps concurrent customers from
// colliding.
func (s *S3ReceiptStore) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%s-%s", uuid.NewString(), sanitizeFileName(name))

	if s != nil && s.mockMode {
		log.Printf("[receipt][store] mock upload key=%s size=%d", key, len(data))
		return fmt.Sprintf("https://%s.s3.mock.local/%s", s.bucket, key), nil
	}

	if s == nil || s.client == nil {
		return "", ErrReceiptStoreNotConfigured
	}
	log.Printf("[receipt][store] upload start key=%s size=%d content_type=%s", key, len(data), contentType)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Printf("[receipt][store] upload failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[receipt][store] upload success key=%s", key)

	return s.objectURL(key), nil
}

func (s *S3ReceiptStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// sanitizeFileName strips any client-supplied directory parts and spaces so
// the key stays flat under uploads/.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		return "receipt"
	}
	return name
}

func isReceiptStoreMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("RECEIPT_STORE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
