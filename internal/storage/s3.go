// Package storage keeps guest photo objects in an S3-compatible bucket
// (AWS S3, MinIO). Guests PUT image bytes to a presigned URL; the server only
// records the resulting url/public_id pair and removes objects on delete.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/memorybox/backend/internal/config"
)

// PresignedUpload describes where a client should PUT an object.
type PresignedUpload struct {
	UploadURL string
	Key       string
	PublicURL string
	ExpiresAt time.Time
}

type objectAPI interface {
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error)
}

// PresignedRequest is the subset of the signer output we use.
type PresignedRequest struct {
	URL string
}

type s3Presigner struct {
	pc *s3.PresignClient
}

func (p s3Presigner) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	req, err := p.pc.PresignPutObject(ctx, in, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: req.URL}, nil
}

type S3Store struct {
	objects       objectAPI
	presigner     presignAPI
	bucket        string
	folder        string
	publicBaseURL string
	presignTTL    time.Duration
	now           func() time.Time
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = cfg.UsePathStyle
	})

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		publicBase = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return newS3Store(client, s3Presigner{pc: s3.NewPresignClient(client)}, cfg.Bucket, cfg.Folder, publicBase, cfg.PresignTTL), nil
}

func newS3Store(objects objectAPI, presigner presignAPI, bucket, folder, publicBaseURL string, ttl time.Duration) *S3Store {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Store{
		objects:       objects,
		presigner:     presigner,
		bucket:        bucket,
		folder:        strings.Trim(folder, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		presignTTL:    ttl,
		now:           time.Now,
	}
}

// PresignUpload reserves a fresh object key under the configured folder.
func (s *S3Store) PresignUpload(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	key := s.newKey(filename)

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, in, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		Key:       key,
		PublicURL: s.publicBaseURL + "/" + key,
		ExpiresAt: s.now().Add(s.presignTTL),
	}, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) newKey(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) > 8 {
		ext = ""
	}
	d := s.now().UTC()
	key := fmt.Sprintf("%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.NewString(), ext)
	if s.folder != "" {
		key = s.folder + "/" + key
	}
	return key
}
