package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go-blog/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

// ImageStore keeps post images addressed by slash-separated keys.
type ImageStore interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// NewImageStore builds the store selected by storage.provider.
func NewImageStore(cfg config.StorageConfig) (ImageStore, error) {
	switch cfg.Provider {
	case "", "local":
		return NewLocalImageStore(cfg.Path, cfg.URLPrefix)
	case "s3":
		return NewS3ImageStore(cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage provider %q", cfg.Provider)
	}
}

// LocalImageStore writes images below a directory that is served at URLPrefix.
type LocalImageStore struct {
	basePath  string
	urlPrefix string
}

func NewLocalImageStore(basePath, urlPrefix string) (*LocalImageStore, error) {
	if basePath == "" {
		basePath = "media"
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalImageStore{basePath: basePath, urlPrefix: urlPrefix}, nil
}

func (s *LocalImageStore) BasePath() string {
	return s.basePath
}

func (s *LocalImageStore) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid image key %q", key)
	}
	return filepath.Join(s.basePath, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (s *LocalImageStore) Save(_ context.Context, key, _ string, r io.Reader) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	dst, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (s *LocalImageStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalImageStore) URL(key string) string {
	if key == "" {
		return ""
	}
	return path.Join("/", s.urlPrefix, key)
}

// S3ImageStore uploads images to an S3 (or S3-compatible) bucket.
type S3ImageStore struct {
	bucket   string
	baseURL  string
	uploader s3manageriface.UploaderAPI
	client   s3iface.S3API
}

func NewS3ImageStore(cfg config.S3Config) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage.s3.bucket is required")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return NewS3ImageStoreWithClients(cfg, s3manager.NewUploader(sess), s3.New(sess)), nil
}

// NewS3ImageStoreWithClients wires explicit clients.
func NewS3ImageStoreWithClients(cfg config.S3Config, uploader s3manageriface.UploaderAPI, client s3iface.S3API) *S3ImageStore {
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	if cfg.Endpoint != "" {
		baseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return &S3ImageStore{bucket: cfg.Bucket, baseURL: baseURL, uploader: uploader, client: client}
}

func (s *S3ImageStore) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload image to s3: %w", err)
	}
	return nil
}

func (s *S3ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3ImageStore) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + "/" + key
}
