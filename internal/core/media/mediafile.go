// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media manages uploaded files and images of an account.

A mediafile is either a plain file or an image. Images additionally carry
their pixel dimensions and are rendered into a set of named styles when
uploaded; plain files are stored as-is. The bytes live in an object store,
the metadata in PostgreSQL.

# Object Keys

Every stored object follows one layout:

	<account>/<class>/<id_partition>/<basename>_<style>.<ext>

so the original of image 123 of account 7 named "cover.png" is stored at
"7/images/000/000/123/cover_original.png".
*/
package media

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/hotink/hotink/internal/platform/apperr"
)

// # Kinds

// Kind distinguishes plain files from images.
type Kind string

const (
	KindFile  Kind = "file"
	KindImage Kind = "image"
)

// IsValid reports whether the kind is known.
func (k Kind) IsValid() bool {
	return k == KindFile || k == KindImage
}

// class is the object key segment grouping a kind.
func (k Kind) class() string {
	if k == KindImage {
		return "images"
	}
	return "mediafiles"
}

// # Entity

// Mediafile is the metadata of an uploaded file.
type Mediafile struct {
	ID            int64      `json:"id"`
	AccountID     int64      `json:"account_id"`
	Kind          Kind       `json:"kind"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	LinkAlternate string     `json:"link_alternate"`
	Date          *time.Time `json:"date,omitempty"`
	ContentType   string     `json:"content_type"`
	FileName      string     `json:"file_name"`
	StorageKey    string     `json:"storage_key"`
	SizeBytes     int64      `json:"size_bytes"`
	Width         *int       `json:"width,omitempty"`
	Height        *int       `json:"height,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Basename is the file name without its extension.
func (m *Mediafile) Basename() string {
	return strings.TrimSuffix(m.FileName, path.Ext(m.FileName))
}

// Ext is the lower-cased extension of the file name, without the dot.
func (m *Mediafile) Ext() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(m.FileName), "."))
}

// Key returns the object key of the given style of this file.
func (m *Mediafile) Key(style Style) string {
	return StyleKey(m.AccountID, m.Kind, m.ID, m.Basename(), style.Name, style.ext(m.Ext()))
}

// Filter narrows a mediafile listing.
type Filter struct {
	Query string
	Kind  Kind

	// ExcludeDocumentID hides mediafiles already attached to that document.
	ExcludeDocumentID *int64
}

// # Styles

// OriginalStyle is the untouched upload.
const OriginalStyle = "original"

// Settings holds the per-upload geometries of the optional image styles.
// An empty geometry skips the style.
type Settings struct {
	Thumb  string `json:"thumb"`
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Style is one rendition of an image.
type Style struct {
	Name     string
	Geometry Geometry

	// Format forces the extension of the rendition. Empty keeps the original.
	Format string
}

func (s Style) ext(original string) string {
	if s.Format != "" {
		return s.Format
	}
	return original
}

// Styles lists the renditions produced for an upload of the given kind.
// Plain files have none.
func Styles(kind Kind, settings Settings) []Style {
	if kind != KindImage {
		return nil
	}

	styles := []Style{
		{Name: "system_icon", Geometry: mustGeometry("x20>"), Format: "jpg"},
		{Name: "system_thumb", Geometry: mustGeometry("100x56>"), Format: "jpg"},
	}

	optional := []struct {
		name, geometry string
	}{
		{"thumb", settings.Thumb},
		{"small", settings.Small},
		{"medium", settings.Medium},
	}
	for _, o := range optional {
		if geometry, err := ParseGeometry(o.geometry); err == nil {
			styles = append(styles, Style{Name: o.name, Geometry: geometry})
		}
	}

	styles = append(styles, Style{Name: "system_default", Geometry: mustGeometry("400>"), Format: "jpg"})

	if geometry, err := ParseGeometry(settings.Large); err == nil {
		styles = append(styles, Style{Name: "large", Geometry: geometry})
	}

	return styles
}

// StyleNames lists every style name an image may have, original included.
func StyleNames() []string {
	return []string{OriginalStyle, "system_icon", "system_thumb", "thumb", "small", "medium", "system_default", "large"}
}

// # Geometry

// Geometry is an ImageMagick-style size such as "100x56>" or "x20>".
// A zero dimension is unconstrained.
type Geometry struct {
	Width    int
	Height   int
	Modifier string
}

func (g Geometry) String() string {
	var b strings.Builder
	if g.Width > 0 {
		b.WriteString(strconv.Itoa(g.Width))
	}
	if g.Height > 0 {
		b.WriteString("x" + strconv.Itoa(g.Height))
	}
	b.WriteString(g.Modifier)
	return b.String()
}

// ParseGeometry parses "WxH", "W" or "xH" followed by an optional modifier
// out of "> < ! ^ #".
func ParseGeometry(raw string) (Geometry, error) {
	raw = strings.TrimSpace(raw)
	invalid := apperr.ValidationError(fmt.Sprintf("Invalid geometry %q", raw))
	if raw == "" {
		return Geometry{}, invalid
	}

	var g Geometry
	if last := raw[len(raw)-1:]; strings.ContainsAny(last, "><!^#") {
		g.Modifier = last
		raw = raw[:len(raw)-1]
	}

	width, height, hasHeight := strings.Cut(raw, "x")

	var err error
	if width != "" {
		if g.Width, err = strconv.Atoi(width); err != nil || g.Width <= 0 {
			return Geometry{}, invalid
		}
	}
	if hasHeight {
		if g.Height, err = strconv.Atoi(height); err != nil || g.Height <= 0 {
			return Geometry{}, invalid
		}
	}

	if g.Width == 0 && g.Height == 0 {
		return Geometry{}, invalid
	}
	return g, nil
}

func mustGeometry(raw string) Geometry {
	g, err := ParseGeometry(raw)
	if err != nil {
		panic(err)
	}
	return g
}

// # Object Keys

// IDPartition splits an id into three-digit directories: 123 → "000/000/123".
func IDPartition(id int64) string {
	digits := fmt.Sprintf("%09d", id)

	parts := make([]string, 0, len(digits)/3+1)
	for len(digits) > 3 {
		parts = append(parts, digits[:3])
		digits = digits[3:]
	}
	parts = append(parts, digits)
	return strings.Join(parts, "/")
}

// StyleKey builds the object key of one rendition.
func StyleKey(accountID int64, kind Kind, id int64, basename, style, ext string) string {
	key := fmt.Sprintf("%d/%s/%s/%s_%s", accountID, kind.class(), IDPartition(id), basename, style)
	if ext != "" {
		key += "." + ext
	}
	return key
}
