package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chapters(n int) []PreviewChapter {
	res := make([]PreviewChapter, n)
	for i := range res {
		res[i] = PreviewChapter{Title: fmt.Sprintf("Chapter %d", i+1), Content: "text"}
	}
	return res
}

func TestNormalizePreviewChapters(t *testing.T) {
	cases := []struct {
		name     string
		chapters []PreviewChapter
		wantLen  int
		wantErr  bool
	}{
		{name: "too few", chapters: chapters(2), wantErr: true},
		{name: "min", chapters: chapters(3), wantLen: 3},
		{name: "max", chapters: chapters(5), wantLen: 5},
		{name: "too many", chapters: chapters(6), wantErr: true},
		{
			name:     "blank title rejected",
			chapters: append(chapters(3), PreviewChapter{Title: " ", Content: "x"}),
			wantErr:  true,
		},
		{
			name:     "blank content rejected",
			chapters: append(chapters(2), PreviewChapter{Title: "only title"}),
			wantErr:  true,
		},
		{
			name:     "too many even with blank",
			chapters: append(chapters(5), PreviewChapter{}),
			wantErr:  true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := NormalizePreviewChapters(c.chapters)
			if c.wantErr {
				require.ErrorIs(t, err, ErrInvalidPreview)
				return
			}
			require.NoError(t, err)
			require.Len(t, res, c.wantLen)
			for i, ch := range res {
				assert.Equal(t, i+1, ch.Number)
			}
		})
	}
}

func TestNormalizePreviewChapters_TrimsAndNumbers(t *testing.T) {
	in := []PreviewChapter{
		{Number: 7, Title: "One", Content: "a"},
		{Title: " Two ", Content: "b"},
		{Title: "Three", Content: " c "},
	}
	res, err := NormalizePreviewChapters(in)
	require.NoError(t, err)
	assert.Equal(t, PreviewChapter{Number: 1, Title: "One", Content: "a"}, res[0])
	assert.Equal(t, PreviewChapter{Number: 2, Title: "Two", Content: "b"}, res[1])
	assert.Equal(t, "c", res[2].Content)

	ch, ok := Preview{Chapters: res}.Chapter(3)
	assert.True(t, ok)
	assert.Equal(t, "Three", ch.Title)
	_, ok = Preview{Chapters: res}.Chapter(4)
	assert.False(t, ok)
}

func TestDigitalFile_Validate(t *testing.T) {
	valid := DigitalFile{BookID: 1, Filename: "book.pdf", Path: "/files/book.pdf", ContentType: "application/pdf", Size: 1024}
	require.NoError(t, valid.Validate())

	cases := map[string]func(f *DigitalFile){
		"no filename": func(f *DigitalFile) { f.Filename = "" },
		"no path":     func(f *DigitalFile) { f.Path = " " },
		"bad type":    func(f *DigitalFile) { f.ContentType = "image/png" },
		"empty":       func(f *DigitalFile) { f.Size = 0 },
		"too large":   func(f *DigitalFile) { f.Size = MaxDigitalFileSize + 1 },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			f := valid
			modify(&f)
			require.ErrorIs(t, f.Validate(), ErrInvalidDigitalFile)
		})
	}

	maxSize := valid
	maxSize.Size = MaxDigitalFileSize
	require.NoError(t, maxSize.Validate())
}
