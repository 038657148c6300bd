// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package document manages the newsroom's articles and blog entries.

A Document carries its content fields, its publication state and three managed
relations:

  - Authorships: an ordered list of bylines, rendered as the authors list.
  - Sortings: the set of categories the document is filed under.
  - Waxings: attached media (owned by the waxing package).

Every read and write is scoped to a single account.
*/
package document

import (
	"strings"
	"time"
)

// # Domain Enums

// Kind distinguishes newspaper articles from blog entries. Both share one table.
type Kind string

const (
	KindArticle Kind = "article"
	KindEntry   Kind = "entry"
)

// IsValid reports whether k is a known document kind.
func (k Kind) IsValid() bool {
	return k == KindArticle || k == KindEntry
}

// StatusPublished is the only non-null publication status.
const StatusPublished = "Published"

// NoHeadline is shown in place of a blank title.
const NoHeadline = "(no headline)"

// # Core Entities

// Document is an article or entry owned by an account.
type Document struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	Kind        Kind       `json:"kind"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Bodytext    string     `json:"bodytext"`
	Status      *string    `json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	SectionID   *int64     `json:"section_id"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Read-side projections, populated by the repository.
	Authorships      []Authorship `json:"authorships"`
	AuthorsList      string       `json:"authors_list"`
	CategoryIDs      []int64      `json:"category_ids"`
	HasAttachedMedia bool         `json:"has_attached_media"`
}

// Authorship binds an author to a document. StaffPosition records the
// author's role at the time of writing and is never synchronised afterwards.
type Authorship struct {
	ID            int64   `json:"id"`
	AccountID     int64   `json:"-"`
	DocumentID    int64   `json:"document_id"`
	AuthorID      int64   `json:"author_id"`
	AuthorName    string  `json:"author_name"`
	StaffPosition *string `json:"staff_position"`
	Position      int     `json:"position"`
}

// # Publication State

/*
Publish moves the document between draft and published.

A status of exactly "Published" sets the status and stamps PublishedAt with at.
Any other value clears the status and leaves PublishedAt as it was, so a
document that has been unpublished still remembers when it last went out.
Status is authoritative; PublishedAt alone never means "published".
*/
func (d *Document) Publish(status string, at time.Time) {
	if status == StatusPublished {
		published := StatusPublished
		d.Status = &published
		d.PublishedAt = &at
		return
	}
	d.Status = nil
}

// Unpublish is Publish with an empty status.
func (d *Document) Unpublish() {
	d.Publish("", time.Time{})
}

// IsPublished reports whether the document is currently published.
func (d *Document) IsPublished() bool {
	return d.Status != nil && *d.Status == StatusPublished
}

// DisplayTitle returns the headline, or a placeholder when it is blank.
func (d *Document) DisplayTitle() string {
	if strings.TrimSpace(d.Title) == "" {
		return NoHeadline
	}
	return d.Title
}

// AuthorNames returns the byline names in authorship order.
func (d *Document) AuthorNames() []string {
	names := make([]string, 0, len(d.Authorships))
	for _, a := range d.Authorships {
		names = append(names, a.AuthorName)
	}
	return names
}

// # Filters

// Filter holds the parameters for a paginated document search.
type Filter struct {
	Query      string // websearch syntax against the search vector
	Kind       Kind
	Published  *bool
	Categories []int64  // any of
	Tags       []string // all of
}

// Global field names for validation
const (
	FieldKind        = "kind"
	FieldTitle       = "title"
	FieldSubtitle    = "subtitle"
	FieldSectionID   = "section_id"
	FieldTags        = "tags"
	FieldStatus      = "status"
	FieldCategories  = "categories"
	FieldAuthorships = "authorships"
)

const (
	MaxTitleLength    = 500
	MaxSubtitleLength = 1000
	MaxTagLength      = 100
	MaxTags           = 50
)
