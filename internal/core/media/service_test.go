// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/storage"
)

// # Fakes

type memoryRepository struct {
	nextID     int64
	mediafiles map[int64]*Mediafile
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{mediafiles: make(map[int64]*Mediafile)}
}

func (repository *memoryRepository) Create(_ context.Context, m *Mediafile) error {
	repository.nextID++
	m.ID = repository.nextID
	stored := *m
	repository.mediafiles[m.ID] = &stored
	return nil
}

func (repository *memoryRepository) SetStorageKey(_ context.Context, accountID, id int64, key string) error {
	m, ok := repository.mediafiles[id]
	if !ok || m.AccountID != accountID {
		return apperr.NotFound("Mediafile")
	}
	m.StorageKey = key
	return nil
}

func (repository *memoryRepository) Get(_ context.Context, accountID, id int64) (*Mediafile, error) {
	m, ok := repository.mediafiles[id]
	if !ok || m.AccountID != accountID {
		return nil, apperr.NotFound("Mediafile")
	}
	copied := *m
	return &copied, nil
}

func (repository *memoryRepository) List(_ context.Context, accountID int64, filter Filter, _, _ int) ([]*Mediafile, int, error) {
	result := make([]*Mediafile, 0)
	for _, m := range repository.mediafiles {
		if m.AccountID == accountID && (filter.Kind == "" || filter.Kind == m.Kind) {
			result = append(result, m)
		}
	}
	return result, len(result), nil
}

func (repository *memoryRepository) Delete(ctx context.Context, accountID, id int64) (*Mediafile, error) {
	m, err := repository.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	delete(repository.mediafiles, id)
	return m, nil
}

type memoryBlobs struct {
	objects map[string][]byte
	failOn  string
	deleted []string
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{objects: make(map[string][]byte)}
}

func (blobs *memoryBlobs) Put(_ context.Context, key string, body []byte, _ string) error {
	if blobs.failOn != "" && bytes.Contains([]byte(key), []byte(blobs.failOn)) {
		return errors.New("bucket unavailable")
	}
	blobs.objects[key] = body
	return nil
}

func (blobs *memoryBlobs) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	body, ok := blobs.objects[key]
	if !ok {
		return nil, "", storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(body)), "image/png", nil
}

func (blobs *memoryBlobs) Delete(_ context.Context, key string) error {
	blobs.deleted = append(blobs.deleted, key)
	delete(blobs.objects, key)
	return nil
}

func (blobs *memoryBlobs) keys() []string {
	keys := make([]string, 0, len(blobs.objects))
	for key := range blobs.objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// # Fixtures

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(blobs BlobStore) (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, blobs, nil, logger), repo
}

// # Tests

/*
TestUpload_Image verifies dimension probing and that every style lands under
the partitioned key layout.
*/
func TestUpload_Image(t *testing.T) {
	blobs := newMemoryBlobs()
	service, repo := newTestService(blobs)

	m, err := service.Upload(context.Background(), 7, UploadInput{
		Title:    "Front page",
		FileName: "cover.png",
		Body:     pngBytes(t, 64, 32),
		Settings: Settings{Thumb: "50x50>"},
	})
	require.NoError(t, err)

	assert.Equal(t, KindImage, m.Kind)
	assert.Equal(t, "image/png", m.ContentType)
	require.NotNil(t, m.Width)
	assert.Equal(t, 64, *m.Width)
	assert.Equal(t, 32, *m.Height)
	assert.Equal(t, "7/images/000/000/001/cover_original.png", m.StorageKey)
	assert.Equal(t, m.StorageKey, repo.mediafiles[m.ID].StorageKey)

	assert.Equal(t, []string{
		"7/images/000/000/001/cover_original.png",
		"7/images/000/000/001/cover_system_default.jpg",
		"7/images/000/000/001/cover_system_icon.jpg",
		"7/images/000/000/001/cover_system_thumb.jpg",
		"7/images/000/000/001/cover_thumb.png",
	}, blobs.keys())

	icon, _, err := image.DecodeConfig(bytes.NewReader(blobs.objects["7/images/000/000/001/cover_system_icon.jpg"]))
	require.NoError(t, err)
	assert.Equal(t, 40, icon.Width)
	assert.Equal(t, 20, icon.Height)
}

func TestUpload_PlainFileHasNoStyles(t *testing.T) {
	blobs := newMemoryBlobs()
	service, _ := newTestService(blobs)

	m, err := service.Upload(context.Background(), 7, UploadInput{
		FileName:    "minutes.txt",
		ContentType: "text/plain",
		Body:        []byte("board meeting minutes"),
		Settings:    Settings{Thumb: "50x50"},
	})
	require.NoError(t, err)

	assert.Equal(t, KindFile, m.Kind)
	assert.Nil(t, m.Width)
	assert.Equal(t, []string{"7/mediafiles/000/000/001/minutes_original.txt"}, blobs.keys())
}

func TestUpload_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input UploadInput
	}{
		{"empty body", UploadInput{FileName: "a.txt"}},
		{"missing name", UploadInput{Body: []byte("x")}},
		{"bad kind", UploadInput{FileName: "a.txt", Body: []byte("x"), Kind: "video"}},
		{"bad geometry", UploadInput{FileName: "a.png", Body: []byte("x"), Settings: Settings{Small: "huge"}}},
		{"image that is not one", UploadInput{FileName: "a.png", Body: []byte("not png"), Kind: KindImage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blobs := newMemoryBlobs()
			service, repo := newTestService(blobs)

			_, err := service.Upload(context.Background(), 7, tt.input)
			assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"), "got %v", err)
			assert.Empty(t, repo.mediafiles)
			assert.Empty(t, blobs.objects)
		})
	}
}

func TestUpload_StorageDisabled(t *testing.T) {
	service, repo := newTestService(nil)

	_, err := service.Upload(context.Background(), 7, UploadInput{FileName: "a.txt", Body: []byte("x")})
	assert.True(t, apperr.IsCode(err, "SERVICE_UNAVAILABLE"))
	assert.Empty(t, repo.mediafiles)
}

/*
TestUpload_RollsBackOnStoreFailure verifies a failed rendition leaves neither
objects nor a row behind.
*/
func TestUpload_RollsBackOnStoreFailure(t *testing.T) {
	blobs := newMemoryBlobs()
	blobs.failOn = "system_default"
	service, repo := newTestService(blobs)

	_, err := service.Upload(context.Background(), 7, UploadInput{FileName: "cover.png", Body: pngBytes(t, 10, 10)})
	assert.True(t, apperr.IsCode(err, "INTERNAL_ERROR"))
	assert.Empty(t, repo.mediafiles)
	assert.Empty(t, blobs.objects)
}

func TestOpen(t *testing.T) {
	blobs := newMemoryBlobs()
	service, _ := newTestService(blobs)
	ctx := context.Background()

	m, err := service.Upload(ctx, 7, UploadInput{FileName: "cover.png", Body: pngBytes(t, 10, 10)})
	require.NoError(t, err)

	body, _, err := service.Open(ctx, 7, m.ID, "system_thumb")
	require.NoError(t, err)
	_ = body.Close()

	_, _, err = service.Open(ctx, 7, m.ID, "large")
	assert.True(t, apperr.IsNotFound(err), "large was never configured")

	_, _, err = service.Open(ctx, 7, m.ID, "poster")
	assert.True(t, apperr.IsNotFound(err))

	_, _, err = service.Open(ctx, 8, m.ID, "")
	assert.True(t, apperr.IsNotFound(err), "another account")
}

func TestDelete_RemovesEveryObject(t *testing.T) {
	blobs := newMemoryBlobs()
	service, repo := newTestService(blobs)
	ctx := context.Background()

	m, err := service.Upload(ctx, 7, UploadInput{FileName: "cover.png", Body: pngBytes(t, 10, 10), Settings: Settings{Large: "800>"}})
	require.NoError(t, err)

	assert.True(t, apperr.IsNotFound(service.Delete(ctx, 8, m.ID)))
	assert.Len(t, repo.mediafiles, 1)

	require.NoError(t, service.Delete(ctx, 7, m.ID))
	assert.Empty(t, repo.mediafiles)
	assert.Empty(t, blobs.objects)
	assert.Contains(t, blobs.deleted, "7/images/000/000/001/cover_large.png")
}
