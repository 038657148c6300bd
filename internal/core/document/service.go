// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/validate"
	"github.com/hotink/hotink/pkg/slice"
)

// # Service Layer

// Service orchestrates document content, publication and relation edits.
type Service struct {
	repo       Repository
	authors    AuthorResolver
	categories CategoryFinder
	indexer    Indexer
	now        func() time.Time
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its collaborators.
func NewService(repo Repository, authors AuthorResolver, categories CategoryFinder, indexer Indexer, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		authors:    authors,
		categories: categories,
		indexer:    indexer,
		now:        time.Now,
		logger:     logger,
	}
}

// # Inputs

// CreateInput describes a new document. AuthorsList and Status are applied
// after the document row exists, exactly as an update would apply them.
type CreateInput struct {
	Kind        Kind            `json:"kind"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Bodytext    string          `json:"bodytext"`
	SectionID   *int64          `json:"section_id"`
	Tags        []string        `json:"tags"`
	Status      string          `json:"status"`
	AuthorsList string          `json:"authors_list"`
	Categories  CategoryToggles `json:"-"`
}

/*
UpdateInput is a partial update. A nil field is left untouched.

Scalar fields are validated together before anything is written. Relation
edits (AuthorsList, Authorships, Categories) then run as independent steps,
so a failure partway leaves the earlier steps applied.
*/
type UpdateInput struct {
	Kind         *Kind
	Title        *string
	Subtitle     *string
	Bodytext     *string
	SectionID    *int64
	ClearSection bool
	Tags         []string
	Status       *string
	AuthorsList  *string
	Authorships  []AuthorshipAttributes
	Categories   CategoryToggles
}

// AuthorshipAttributes is one nested byline edit. With an ID it updates or
// (when Destroy is set) removes that authorship; without one it attaches
// AuthorID.
type AuthorshipAttributes struct {
	ID            int64   `json:"id"`
	AuthorID      int64   `json:"author_id"`
	StaffPosition *string `json:"staff_position"`
	Destroy       bool    `json:"_destroy"`
}

// PublishInput carries a publication transition. A nil PublishedAt means now.
type PublishInput struct {
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
}

// # Lookups

func (service *Service) Get(context context.Context, accountID, id int64) (*Document, error) {
	return service.repo.FindByID(context, accountID, id)
}

func (service *Service) List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Document, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Tags = normalizeTags(filter.Tags)
	return service.repo.List(context, accountID, filter, limit, offset)
}

// # Lifecycle

/*
Create inserts a document and then applies its byline, status and category
toggles.

Parameters:
  - accountID: int64 (tenant scope)
  - input: CreateInput

Returns:
  - *Document: the hydrated document
  - error: VALIDATION_ERROR for bad content or a foreign section
*/
func (service *Service) Create(context context.Context, accountID int64, input CreateInput) (*Document, error) {
	doc := &Document{
		AccountID: accountID,
		Kind:      input.Kind,
		Title:     strings.TrimSpace(input.Title),
		Subtitle:  strings.TrimSpace(input.Subtitle),
		Bodytext:  input.Bodytext,
		SectionID: input.SectionID,
		Tags:      normalizeTags(input.Tags),
	}
	if doc.Kind == "" {
		doc.Kind = KindArticle
	}

	if err := service.validate(context, doc); err != nil {
		return nil, err
	}

	if input.Status != "" {
		doc.Publish(input.Status, service.now())
	}

	if err := service.repo.Create(context, doc); err != nil {
		return nil, err
	}

	service.logger.Info("document_created",
		slog.Int64("account_id", accountID),
		slog.Int64("document_id", doc.ID),
		slog.String("kind", string(doc.Kind)),
	)

	if input.AuthorsList != "" {
		if err := service.appendAuthors(context, doc, input.AuthorsList); err != nil {
			return nil, err
		}
	}

	if len(input.Categories) > 0 {
		if err := service.applyToggles(context, accountID, doc.ID, input.Categories); err != nil {
			return nil, err
		}
	}

	return service.repo.FindByID(context, accountID, doc.ID)
}

/*
Update applies a partial update to a document.

Parameters:
  - accountID: int64 (tenant scope)
  - id: int64 (document id)
  - input: UpdateInput

Returns:
  - *Document: the document as stored after every step
  - error: NOT_FOUND, VALIDATION_ERROR, or the first failing relation step
*/
func (service *Service) Update(context context.Context, accountID, id int64, input UpdateInput) (*Document, error) {
	doc, err := service.repo.FindByID(context, accountID, id)
	if err != nil {
		return nil, err
	}

	// 1. Scalars
	changed := applyScalars(doc, input)

	if err := service.validate(context, doc); err != nil {
		return nil, err
	}
	if err := validateAuthorships(input.Authorships); err != nil {
		return nil, err
	}

	if changed {
		if err := service.repo.Update(context, doc); err != nil {
			return nil, err
		}
	}

	// 2. Publication
	if input.Status != nil {
		doc.Publish(*input.Status, service.now())
		if err := service.repo.SetPublication(context, accountID, id, doc.Status, doc.PublishedAt); err != nil {
			return nil, err
		}
	}

	// 3. Relations, each independent
	if input.AuthorsList != nil {
		if err := service.appendAuthors(context, doc, *input.AuthorsList); err != nil {
			return nil, err
		}
	}

	for _, attributes := range input.Authorships {
		if err := service.applyAuthorship(context, accountID, id, attributes); err != nil {
			return nil, err
		}
	}

	if input.Categories != nil {
		if err := service.applyToggles(context, accountID, id, input.Categories); err != nil {
			return nil, err
		}
	}

	service.markDelta(context, accountID, id)
	service.logger.Info("document_updated",
		slog.Int64("account_id", accountID),
		slog.Int64("document_id", id),
	)

	return service.repo.FindByID(context, accountID, id)
}

func (service *Service) Delete(context context.Context, accountID, id int64) error {
	if err := service.repo.Delete(context, accountID, id); err != nil {
		return err
	}

	service.logger.Warn("document_deleted",
		slog.Int64("account_id", accountID),
		slog.Int64("document_id", id),
	)
	return nil
}

// # Publication

/*
Publish applies a publication transition.

A status of "Published" stamps the document with input.PublishedAt, or the
current time when absent; every call without an explicit time takes a fresh
timestamp. Any other status unpublishes and keeps the previous PublishedAt.
*/
func (service *Service) Publish(context context.Context, accountID, id int64, input PublishInput) (*Document, error) {
	doc, err := service.repo.FindByID(context, accountID, id)
	if err != nil {
		return nil, err
	}

	at := service.now()
	if input.PublishedAt != nil {
		at = *input.PublishedAt
	}
	doc.Publish(input.Status, at)

	if err := service.repo.SetPublication(context, accountID, id, doc.Status, doc.PublishedAt); err != nil {
		return nil, err
	}
	service.markDelta(context, accountID, id)

	event := "document_unpublished"
	if doc.IsPublished() {
		event = "document_published"
	}
	service.logger.Info(event,
		slog.Int64("account_id", accountID),
		slog.Int64("document_id", id),
	)
	return doc, nil
}

// Unpublish clears the status and keeps PublishedAt.
func (service *Service) Unpublish(context context.Context, accountID, id int64) (*Document, error) {
	return service.Publish(context, accountID, id, PublishInput{})
}

// # Bylines

/*
SetAuthorsList merges a free-text byline into the document.

Each name is resolved to an author of the account (created on first use) and
appended unless already attached. Authors missing from list are kept, so
reading AuthorsList back only reproduces list when the document started
without authors.
*/
func (service *Service) SetAuthorsList(context context.Context, accountID, documentID int64, list string) (*Document, error) {
	doc, err := service.repo.FindByID(context, accountID, documentID)
	if err != nil {
		return nil, err
	}

	if err := service.appendAuthors(context, doc, list); err != nil {
		return nil, err
	}
	service.markDelta(context, accountID, documentID)

	return service.repo.FindByID(context, accountID, documentID)
}

func (service *Service) appendAuthors(context context.Context, doc *Document, list string) error {
	attached := make(map[int64]bool, len(doc.Authorships))
	for _, a := range doc.Authorships {
		attached[a.AuthorID] = true
	}

	for _, name := range SplitAuthorsList(list) {
		author, err := service.authors.FindOrCreate(context, doc.AccountID, name)
		if apperr.IsCode(err, "VALIDATION_ERROR") {
			continue
		}
		if err != nil {
			return err
		}

		if attached[author.ID] {
			continue
		}

		item := &Authorship{AccountID: doc.AccountID, DocumentID: doc.ID, AuthorID: author.ID}
		if err := service.repo.AddAuthorship(context, item); err != nil {
			return err
		}
		attached[author.ID] = true
		doc.Authorships = append(doc.Authorships, *item)
	}

	doc.AuthorsList = FormatAuthorsList(doc.AuthorNames())
	return nil
}

func (service *Service) applyAuthorship(context context.Context, accountID, documentID int64, attributes AuthorshipAttributes) error {
	switch {
	case attributes.ID != 0 && attributes.Destroy:
		return service.repo.RemoveAuthorship(context, accountID, documentID, attributes.ID)
	case attributes.ID != 0:
		_, err := service.repo.UpdateAuthorship(context, accountID, documentID, attributes.ID, normalizePosition(attributes.StaffPosition))
		return err
	case attributes.Destroy:
		return nil
	default:
		return service.repo.AddAuthorship(context, &Authorship{
			AccountID:     accountID,
			DocumentID:    documentID,
			AuthorID:      attributes.AuthorID,
			StaffPosition: normalizePosition(attributes.StaffPosition),
		})
	}
}

// # Categories

/*
ApplyCategoryToggles files or unfiles the document per category.

Toggles run in ascending id order as independent statements. An off toggle
removes the sorting if present. An on toggle adds it when the category exists
in the account and silently skips it otherwise.
*/
func (service *Service) ApplyCategoryToggles(context context.Context, accountID, documentID int64, toggles CategoryToggles) (*Document, error) {
	if _, err := service.repo.FindByID(context, accountID, documentID); err != nil {
		return nil, err
	}

	if err := service.applyToggles(context, accountID, documentID, toggles); err != nil {
		return nil, err
	}
	service.markDelta(context, accountID, documentID)

	return service.repo.FindByID(context, accountID, documentID)
}

func (service *Service) applyToggles(context context.Context, accountID, documentID int64, toggles CategoryToggles) error {
	for _, categoryID := range toggles.IDs() {
		if !toggles[categoryID] {
			if err := service.repo.RemoveSorting(context, accountID, documentID, categoryID); err != nil {
				return err
			}
			continue
		}

		if _, err := service.categories.Get(context, accountID, categoryID); err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return err
		}

		if err := service.repo.AddSorting(context, accountID, documentID, categoryID); err != nil {
			return err
		}
	}
	return nil
}

// # Helpers

func (service *Service) markDelta(context context.Context, accountID, documentID int64) {
	if err := service.indexer.MarkDelta(context, accountID, documentID); err != nil {
		service.logger.Warn("search_delta_mark_failed",
			slog.Int64("document_id", documentID),
			slog.Any("error", err),
		)
	}
}

func (service *Service) validate(context context.Context, doc *Document) error {
	validator := &validate.Validator{}

	validator.OneOf(FieldKind, string(doc.Kind), string(KindArticle), string(KindEntry))
	validator.MaxLen(FieldTitle, doc.Title, MaxTitleLength)
	validator.MaxLen(FieldSubtitle, doc.Subtitle, MaxSubtitleLength)
	validator.Custom(FieldTags, len(doc.Tags) > MaxTags, "Too many tags")
	for _, tag := range doc.Tags {
		validator.MaxLen(FieldTags, tag, MaxTagLength)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// The section must be one of the account's own categories.
	if doc.SectionID != nil {
		if _, err := service.categories.Get(context, doc.AccountID, *doc.SectionID); err != nil {
			if apperr.IsNotFound(err) {
				return validate.FieldErr(FieldSectionID, "Unknown category")
			}
			return err
		}
	}
	return nil
}

func validateAuthorships(items []AuthorshipAttributes) error {
	validator := &validate.Validator{}
	for _, item := range items {
		validator.Custom(FieldAuthorships, item.ID < 0 || item.AuthorID < 0, "Must be a positive identifier")
		validator.Custom(FieldAuthorships, item.ID == 0 && item.AuthorID == 0 && !item.Destroy, "Either id or author_id is required")
	}
	return validator.Err()
}

// applyScalars copies the supplied fields onto doc and reports whether any
// content column changed.
func applyScalars(doc *Document, input UpdateInput) bool {
	changed := false

	if input.Kind != nil {
		doc.Kind = *input.Kind
		changed = true
	}
	if input.Title != nil {
		doc.Title = strings.TrimSpace(*input.Title)
		changed = true
	}
	if input.Subtitle != nil {
		doc.Subtitle = strings.TrimSpace(*input.Subtitle)
		changed = true
	}
	if input.Bodytext != nil {
		doc.Bodytext = *input.Bodytext
		changed = true
	}
	if input.ClearSection {
		doc.SectionID = nil
		changed = true
	} else if input.SectionID != nil {
		doc.SectionID = input.SectionID
		changed = true
	}
	if input.Tags != nil {
		doc.Tags = normalizeTags(input.Tags)
		changed = true
	}
	return changed
}

// normalizeTags trims tags, drops blanks and keeps the first occurrence of
// each. The result is never nil.
func normalizeTags(tags []string) []string {
	trimmed := slice.Filter(slice.Map(tags, strings.TrimSpace), func(tag string) bool { return tag != "" })

	out := make([]string, 0, len(trimmed))
	for _, tag := range trimmed {
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}
