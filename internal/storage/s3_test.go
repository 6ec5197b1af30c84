package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	deleted []string
	err     error
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	lastKey string
	err     error
}

func (f *fakePresigner) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*PresignedRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastKey = aws.ToString(in.Key)
	return &PresignedRequest{URL: "http://minio:9000/bucket/" + f.lastKey + "?X-Amz-Signature=abc"}, nil
}

func newTestStore(objects *fakeObjects, presigner *fakePresigner) *S3Store {
	s := newS3Store(objects, presigner, "bucket", "/wedding-photos/", "http://cdn.example/bucket/", 10*time.Minute)
	s.now = func() time.Time { return time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestPresignUpload(t *testing.T) {
	presigner := &fakePresigner{}
	s := newTestStore(&fakeObjects{}, presigner)

	up, err := s.PresignUpload(context.Background(), "IMG_0001.JPG", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.Key, "wedding-photos/2026/06/20/"), up.Key)
	assert.True(t, strings.HasSuffix(up.Key, ".jpg"), up.Key)
	assert.Equal(t, presigner.lastKey, up.Key)
	assert.Equal(t, "http://cdn.example/bucket/"+up.Key, up.PublicURL)
	assert.Contains(t, up.UploadURL, "X-Amz-Signature")
	assert.Equal(t, time.Date(2026, 6, 20, 12, 10, 0, 0, time.UTC), up.ExpiresAt)
}

func TestPresignUploadUniqueKeys(t *testing.T) {
	s := newTestStore(&fakeObjects{}, &fakePresigner{})

	a, err := s.PresignUpload(context.Background(), "a.png", "")
	require.NoError(t, err)
	b, err := s.PresignUpload(context.Background(), "a.png", "")
	require.NoError(t, err)
	assert.NotEqual(t, a.Key, b.Key)
}

func TestPresignUploadError(t *testing.T) {
	s := newTestStore(&fakeObjects{}, &fakePresigner{err: errors.New("no creds")})
	_, err := s.PresignUpload(context.Background(), "a.png", "")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	objects := &fakeObjects{}
	s := newTestStore(objects, &fakePresigner{})

	require.NoError(t, s.Delete(context.Background(), "wedding-photos/x.jpg"))
	assert.Equal(t, []string{"bucket/wedding-photos/x.jpg"}, objects.deleted)

	objects.err = errors.New("boom")
	assert.Error(t, s.Delete(context.Background(), "wedding-photos/y.jpg"))
}
