package storage

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/pkg/config"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// MinIOStore persists assets in a remote object store bucket. Objects
// are keyed <category>/<filename> and exposed through public URLs.
type MinIOStore struct {
	client  *minio.Client
	bucket  string
	maxSize int64
	baseURL string
}

// NewMinIOStore connects to the object store and ensures the bucket
// exists.
func NewMinIOStore(cfg config.MinIOConfig, maxSize int64) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &MinIOStore{
		client:  client,
		bucket:  cfg.Bucket,
		maxSize: maxSize,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
	}, nil
}

// Store uploads the payload under a timestamped name derived from the hint.
func (s *MinIOStore) Store(ctx context.Context, category models.ImageCategory, filenameHint string, data []byte) (*Object, error) {
	if err := ValidateUpload(filenameHint, int64(len(data)), s.maxSize); err != nil {
		return nil, err
	}
	return s.put(ctx, category, TimestampedFilename(category, filenameHint, time.Now()), data)
}

// StoreAs uploads the payload under an exact filename; a same-name
// object is overwritten in place.
func (s *MinIOStore) StoreAs(ctx context.Context, category models.ImageCategory, filename string, data []byte) (*Object, error) {
	if err := ValidateUpload(filename, int64(len(data)), s.maxSize); err != nil {
		return nil, err
	}
	return s.put(ctx, category, SanitizeFilename(filename), data)
}

// Replace uploads under a fresh timestamped name, then removes the old
// object best-effort: a failed remote delete leaves an orphan rather
// than failing the replacement.
func (s *MinIOStore) Replace(ctx context.Context, category models.ImageCategory, oldFilename, filenameHint string, data []byte) (*Object, error) {
	obj, err := s.Store(ctx, category, filenameHint, data)
	if err != nil {
		return nil, err
	}
	_, _ = s.Delete(ctx, category, oldFilename)
	return obj, nil
}

// Delete removes an object. Remote failures report StorageUnavailable;
// callers treat remote deletes as best-effort.
func (s *MinIOStore) Delete(ctx context.Context, category models.ImageCategory, filename string) (bool, error) {
	key := s.key(category, filename)
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "delete remote object")
	}
	return true, nil
}

// List enumerates the category prefix, newest first.
func (s *MinIOStore) List(ctx context.Context, category models.ImageCategory) ([]ObjectInfo, error) {
	infos := []ObjectInfo{}
	prefix := string(category) + "/"
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, appErrors.Wrap(object.Err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "list remote objects")
		}
		filename := strings.TrimPrefix(object.Key, prefix)
		if !AllowedFilename(filename) {
			continue
		}
		infos = append(infos, ObjectInfo{
			Filename: filename,
			URL:      s.url(object.Key),
			Size:     object.Size,
			Modified: object.LastModified,
		})
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Modified.After(infos[j].Modified)
	})
	return infos, nil
}

func (s *MinIOStore) put(ctx context.Context, category models.ImageCategory, filename string, data []byte) (*Object, error) {
	key := s.key(category, filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: ContentTypeByExt(filename),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageUnavailable.Code, appErrors.ErrStorageUnavailable.Status, "upload to object store")
	}
	return &Object{
		Filename: filename,
		URL:      s.url(key),
		Size:     int64(len(data)),
	}, nil
}

func (s *MinIOStore) key(category models.ImageCategory, filename string) string {
	return fmt.Sprintf("%s/%s", category, SanitizeFilename(filename))
}

func (s *MinIOStore) url(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}
