// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDPartition(t *testing.T) {
	tests := []struct {
		id   int64
		want string
	}{
		{1, "000/000/001"},
		{123, "000/000/123"},
		{123456, "000/123/456"},
		{123456789, "123/456/789"},
		{1234567890, "123/456/789/0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IDPartition(tt.id))
	}
}

func TestStyleKey(t *testing.T) {
	assert.Equal(t, "7/images/000/000/123/cover_thumb.png", StyleKey(7, KindImage, 123, "cover", "thumb", "png"))
	assert.Equal(t, "7/mediafiles/000/000/045/report_original.pdf", StyleKey(7, KindFile, 45, "report", OriginalStyle, "pdf"))
	assert.Equal(t, "7/mediafiles/000/000/045/README_original", StyleKey(7, KindFile, 45, "README", OriginalStyle, ""))
}

func TestMediafile_Key(t *testing.T) {
	m := &Mediafile{ID: 9, AccountID: 2, Kind: KindImage, FileName: "Front Page.PNG"}

	assert.Equal(t, "2/images/000/000/009/Front Page_original.png", m.Key(Style{Name: OriginalStyle}))
	assert.Equal(t, "2/images/000/000/009/Front Page_system_icon.jpg", m.Key(Style{Name: "system_icon", Format: "jpg"}))
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		raw     string
		want    Geometry
		wantErr bool
	}{
		{raw: "100x56>", want: Geometry{Width: 100, Height: 56, Modifier: ">"}},
		{raw: "x20>", want: Geometry{Height: 20, Modifier: ">"}},
		{raw: "400>", want: Geometry{Width: 400, Modifier: ">"}},
		{raw: "640x480", want: Geometry{Width: 640, Height: 480}},
		{raw: "75x75#", want: Geometry{Width: 75, Height: 75, Modifier: "#"}},
		{raw: "", wantErr: true},
		{raw: ">", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "0x10", wantErr: true},
		{raw: "10x-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseGeometry(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestStyles(t *testing.T) {
	t.Run("plain files have none", func(t *testing.T) {
		assert.Empty(t, Styles(KindFile, Settings{Thumb: "50x50"}))
	})

	t.Run("system styles only", func(t *testing.T) {
		styles := Styles(KindImage, Settings{})

		names := make([]string, 0, len(styles))
		for _, style := range styles {
			names = append(names, style.Name)
			assert.Equal(t, "jpg", style.Format)
		}
		assert.Equal(t, []string{"system_icon", "system_thumb", "system_default"}, names)
	})

	t.Run("configured styles keep their place", func(t *testing.T) {
		styles := Styles(KindImage, Settings{Thumb: "80x80>", Large: "1200>", Medium: "not a size"})

		names := make([]string, 0, len(styles))
		for _, style := range styles {
			names = append(names, style.Name)
		}
		assert.Equal(t, []string{"system_icon", "system_thumb", "thumb", "system_default", "large"}, names)
		assert.Equal(t, Geometry{Width: 80, Height: 80, Modifier: ">"}, styles[2].Geometry)
		assert.Empty(t, styles[2].Format)
	})
}
