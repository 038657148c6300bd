// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/storage"
	"github.com/hotink/hotink/internal/platform/validate"
)

const (
	// MaxUploadBytes bounds a single upload.
	MaxUploadBytes = 20 << 20

	MaxTitleLength       = 255
	MaxDescriptionLength = 5000

	FieldFile     = "file"
	FieldFileName = "file_name"
	FieldKind     = "kind"
	FieldTitle    = "title"
	FieldSettings = "settings"
)

// UploadInput is one file as received from a client.
type UploadInput struct {
	Kind          Kind
	Title         string
	Description   string
	LinkAlternate string
	Date          *time.Time
	FileName      string
	ContentType   string
	Body          []byte
	Settings      Settings
}

type Service struct {
	repo     Repository
	blobs    BlobStore
	renderer VariantRenderer
	logger   *slog.Logger
}

// NewService wires the media service. A nil blobs disables uploads.
func NewService(repo Repository, blobs BlobStore, renderer VariantRenderer, logger *slog.Logger) *Service {
	if renderer == nil {
		renderer = ImagingRenderer{}
	}
	return &Service{
		repo:     repo,
		blobs:    blobs,
		renderer: renderer,
		logger:   logger,
	}
}

func (service *Service) Get(context context.Context, accountID, id int64) (*Mediafile, error) {
	return service.repo.Get(context, accountID, id)
}

func (service *Service) List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Mediafile, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, 0, validate.FieldErr(FieldKind, "Must be one of: file, image")
	}
	return service.repo.List(context, accountID, filter, limit, offset)
}

/*
Upload stores a new mediafile.

Parameters:
  - context: request context
  - accountID: owning account
  - input: the file and its metadata

Returns:
  - *Mediafile: the stored record, with dimensions for images
  - error: SERVICE_UNAVAILABLE without an object store, VALIDATION_ERROR on bad input

The row is inserted first so its id can be used in the object keys. If any
rendition fails to store, the objects written so far and the row are removed.
*/
func (service *Service) Upload(context context.Context, accountID int64, input UploadInput) (*Mediafile, error) {
	if service.blobs == nil {
		return nil, apperr.ServiceUnavailable("Media storage is not configured")
	}

	m, err := service.prepare(accountID, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, m); err != nil {
		return nil, err
	}

	key, err := service.store(context, m, input)
	if err != nil {
		if _, cleanupErr := service.repo.Delete(context, accountID, m.ID); cleanupErr != nil {
			service.logger.Warn("mediafile_cleanup_failed",
				slog.Int64("mediafile_id", m.ID),
				slog.Any("error", cleanupErr),
			)
		}
		return nil, apperr.Internal(err)
	}

	if err := service.repo.SetStorageKey(context, accountID, m.ID, key); err != nil {
		return nil, err
	}
	m.StorageKey = key

	service.logger.Info("mediafile_uploaded",
		slog.Int64("account_id", accountID),
		slog.Int64("mediafile_id", m.ID),
		slog.String("kind", string(m.Kind)),
		slog.Int64("size_bytes", m.SizeBytes),
	)
	return m, nil
}

// prepare validates the input and builds the unsaved record.
func (service *Service) prepare(accountID int64, input UploadInput) (*Mediafile, error) {
	fileName := path.Base(strings.ReplaceAll(strings.TrimSpace(input.FileName), "\\", "/"))
	if fileName == "." || fileName == "/" {
		fileName = ""
	}

	m := &Mediafile{
		AccountID:     accountID,
		Kind:          input.Kind,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		LinkAlternate: strings.TrimSpace(input.LinkAlternate),
		Date:          input.Date,
		ContentType:   input.ContentType,
		FileName:      fileName,
		SizeBytes:     int64(len(input.Body)),
	}

	validator := &validate.Validator{}
	validator.Required(FieldFileName, m.FileName).
		MaxLen(FieldTitle, m.Title, MaxTitleLength).
		MaxLen("description", m.Description, MaxDescriptionLength)
	validator.Custom(FieldFile, len(input.Body) == 0, "File is empty")
	validator.Custom(FieldFile, len(input.Body) > MaxUploadBytes, "File is too large")
	validator.Custom(FieldKind, m.Kind != "" && !m.Kind.IsValid(), "Must be one of: file, image")

	for name, geometry := range map[string]string{
		"thumb": input.Settings.Thumb, "small": input.Settings.Small,
		"medium": input.Settings.Medium, "large": input.Settings.Large,
	} {
		if strings.TrimSpace(geometry) == "" {
			continue
		}
		_, err := ParseGeometry(geometry)
		validator.Custom(FieldSettings+"."+name, err != nil, "Invalid geometry")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if m.ContentType == "" || m.ContentType == "application/octet-stream" {
		m.ContentType = http.DetectContentType(input.Body)
	}

	width, height, probeErr := probeDimensions(input.Body)
	if m.Kind == "" {
		m.Kind = KindFile
		if probeErr == nil && strings.HasPrefix(m.ContentType, "image/") {
			m.Kind = KindImage
		}
	}

	if m.Kind == KindImage {
		if probeErr != nil {
			return nil, validate.FieldErr(FieldFile, "Not a supported image")
		}
		m.Width, m.Height = &width, &height
	}

	return m, nil
}

// store writes the original and every rendition, returning the original key.
func (service *Service) store(context context.Context, m *Mediafile, input UploadInput) (string, error) {
	written := make([]string, 0)
	rollback := func() {
		for _, key := range written {
			_ = service.blobs.Delete(context, key)
		}
	}

	originalKey := m.Key(Style{Name: OriginalStyle})
	if err := service.blobs.Put(context, originalKey, input.Body, m.ContentType); err != nil {
		return "", err
	}
	written = append(written, originalKey)

	for _, style := range Styles(m.Kind, input.Settings) {
		variant, err := service.renderer.Render(context, input.Body, m.ContentType, style)
		if err != nil {
			rollback()
			return "", err
		}

		key := m.Key(style)
		if err := service.blobs.Put(context, key, variant.Body, variant.ContentType); err != nil {
			rollback()
			return "", err
		}
		written = append(written, key)
	}

	return originalKey, nil
}

// Open streams one rendition. An empty style means the original.
func (service *Service) Open(context context.Context, accountID, id int64, style string) (io.ReadCloser, string, error) {
	if service.blobs == nil {
		return nil, "", apperr.ServiceUnavailable("Media storage is not configured")
	}

	m, err := service.repo.Get(context, accountID, id)
	if err != nil {
		return nil, "", err
	}

	key := m.StorageKey
	if style != "" && style != OriginalStyle {
		if m.Kind != KindImage || !slices.Contains(StyleNames(), style) {
			return nil, "", apperr.NotFound("Style")
		}
		key = m.Key(Style{Name: style, Format: styleFormat(style)})
	}

	body, contentType, err := service.blobs.Get(context, key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, "", apperr.NotFound("Style")
	}
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	return body, contentType, nil
}

// Delete removes the record and then, best effort, every object it may own.
func (service *Service) Delete(context context.Context, accountID, id int64) error {
	m, err := service.repo.Delete(context, accountID, id)
	if err != nil {
		return err
	}

	if service.blobs != nil {
		for _, key := range objectKeys(m) {
			if err := service.blobs.Delete(context, key); err != nil {
				service.logger.Warn("mediafile_object_delete_failed",
					slog.Int64("mediafile_id", m.ID),
					slog.String("key", key),
					slog.Any("error", err),
				)
			}
		}
	}

	service.logger.Info("mediafile_deleted",
		slog.Int64("account_id", accountID),
		slog.Int64("mediafile_id", id),
	)
	return nil
}

func objectKeys(m *Mediafile) []string {
	keys := make([]string, 0, len(StyleNames()))
	if m.StorageKey != "" {
		keys = append(keys, m.StorageKey)
	}
	if m.Kind != KindImage {
		return keys
	}
	for _, name := range StyleNames() {
		if name != OriginalStyle {
			keys = append(keys, m.Key(Style{Name: name, Format: styleFormat(name)}))
		}
	}
	return keys
}

// styleFormat is the forced extension of the built-in styles.
func styleFormat(name string) string {
	if strings.HasPrefix(name, "system_") {
		return "jpg"
	}
	return ""
}
