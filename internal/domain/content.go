package domain

import (
	"slices"
	"strings"
)

const (
	MinPreviewChapters = 3
	MaxPreviewChapters = 5

	MaxDigitalFileSize int64 = 50 << 20
)

var digitalContentTypes = []string{
	"text/plain",
	"application/pdf",
	"application/epub+zip",
	"application/x-mobipocket-ebook",
}

// NormalizePreviewChapters проверяет главы превью и нумерует их с 1 в порядке следования.
// Превью должно содержать от 3 до 5 глав, у каждой непустые заголовок и текст.
func NormalizePreviewChapters(chapters []PreviewChapter) ([]PreviewChapter, error) {
	if len(chapters) < MinPreviewChapters || len(chapters) > MaxPreviewChapters {
		return nil, ErrInvalidPreview.WithMessage("preview must contain from %d to %d chapters",
			MinPreviewChapters, MaxPreviewChapters)
	}
	res := make([]PreviewChapter, 0, len(chapters))
	for i, ch := range chapters {
		title := strings.TrimSpace(ch.Title)
		content := strings.TrimSpace(ch.Content)
		if title == "" || content == "" {
			return nil, ErrInvalidPreview.WithMessage("chapter %d must have title and content", i+1)
		}
		res = append(res, PreviewChapter{Number: i + 1, Title: title, Content: content})
	}
	return res, nil
}

// Chapter возвращает главу превью по номеру.
func (p Preview) Chapter(number int) (PreviewChapter, bool) {
	for _, ch := range p.Chapters {
		if ch.Number == number {
			return ch, true
		}
	}
	return PreviewChapter{}, false
}

// Validate проверяет метаданные цифрового файла книги.
func (f DigitalFile) Validate() error {
	switch {
	case strings.TrimSpace(f.Filename) == "" || strings.TrimSpace(f.Path) == "":
		return ErrInvalidDigitalFile.WithMessage("filename and path are required")
	case !slices.Contains(digitalContentTypes, f.ContentType):
		return ErrInvalidDigitalFile.WithMessage("unsupported content type `%s`, allowed: %s",
			f.ContentType, strings.Join(digitalContentTypes, ", "))
	case f.Size <= 0 || f.Size > MaxDigitalFileSize:
		return ErrInvalidDigitalFile.WithMessage("file size must be between 1 byte and %d bytes", MaxDigitalFileSize)
	}
	return nil
}

type BulkDigitalAction string

const (
	BulkEnableDigital  BulkDigitalAction = "enable_digital"
	BulkDisableDigital BulkDigitalAction = "disable_digital"
	BulkEnablePreview  BulkDigitalAction = "enable_preview"
	BulkDisablePreview BulkDigitalAction = "disable_preview"
	BulkSetCoinPrice   BulkDigitalAction = "set_coin_price"
)
