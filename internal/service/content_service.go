package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
	"github.com/sirupsen/logrus"
)

// ContentService ознакомительные главы и цифровые версии книг. Содержимое хранится в mongodb,
// флаги книги - в postgres.
type ContentService struct {
	bookRepo    BookRepository
	previewRepo PreviewRepository
	fileRepo    DigitalFileRepository
	l           *logrus.Entry
}

func NewContentService(
	u uow.UOW,
	previewRepo PreviewRepository,
	fileRepo DigitalFileRepository,
	logger *logrus.Logger,
) (*ContentService, error) {
	bookRepo, err := uow.GetRepositoryAs[BookRepository](u, uow.RepositoryName(repoargs.BookRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ContentService{
		bookRepo:    bookRepo,
		previewRepo: previewRepo,
		fileRepo:    fileRepo,
		l:           logger.WithField("component", "ContentService"),
	}, nil
}

func (c *ContentService) GetPreview(ctx context.Context, bookID int64) (*domain.Preview, error) {
	preview, err := c.previewRepo.FindByBookID(ctx, bookID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrPreviewNotFound)
	}
	return preview, nil
}

func (c *ContentService) GetChapter(ctx context.Context, bookID int64, number int) (*domain.PreviewChapter, error) {
	preview, err := c.GetPreview(ctx, bookID)
	if err != nil {
		return nil, err
	}
	chapter, ok := preview.Chapter(number)
	if !ok {
		return nil, domain.ErrPreviewNotFound.WithMessage("chapter %d not found", number)
	}
	return &chapter, nil
}

// CreatePreview создает превью книги. Если превью уже есть, возвращает domain.ErrPreviewExists.
func (c *ContentService) CreatePreview(
	ctx context.Context,
	bookID int64,
	chapters []domain.PreviewChapter,
) (*domain.Preview, error) {
	normalized, err := c.preparePreview(ctx, bookID, chapters)
	if err != nil {
		return nil, err
	}

	preview, err := c.previewRepo.Create(ctx, bookID, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.ErrPreviewExists
		}
		return nil, fmt.Errorf("creating preview of book %d: %w", bookID, err)
	}
	if err := c.bookRepo.SetHasPreview(ctx, bookID, true); err != nil {
		// флаг книги не выставился, превью без флага не должно остаться
		if delErr := c.previewRepo.DeleteByBookID(ctx, bookID); delErr != nil {
			c.l.WithError(delErr).WithField("bookID", bookID).Error("failed to remove orphan preview")
		}
		return nil, fmt.Errorf("creating preview of book %d: %w", bookID, err)
	}
	return preview, nil
}

// UpsertPreview заменяет главы превью, создавая его при отсутствии.
func (c *ContentService) UpsertPreview(
	ctx context.Context,
	bookID int64,
	chapters []domain.PreviewChapter,
) (*domain.Preview, error) {
	normalized, err := c.preparePreview(ctx, bookID, chapters)
	if err != nil {
		return nil, err
	}

	preview, err := c.previewRepo.Update(ctx, bookID, normalized)
	if errors.Is(err, domain.ErrRecordNotFound) {
		preview, err = c.previewRepo.Create(ctx, bookID, normalized)
	}
	if err != nil {
		return nil, fmt.Errorf("saving preview of book %d: %w", bookID, err)
	}
	if err := c.bookRepo.SetHasPreview(ctx, bookID, true); err != nil {
		return nil, fmt.Errorf("saving preview of book %d: %w", bookID, err)
	}
	return preview, nil
}

func (c *ContentService) preparePreview(
	ctx context.Context,
	bookID int64,
	chapters []domain.PreviewChapter,
) ([]domain.PreviewChapter, error) {
	normalized, err := domain.NormalizePreviewChapters(chapters)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if _, err := c.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, notFoundAs(err, domain.ErrBookNotFound)
	}
	return normalized, nil
}

func (c *ContentService) DeletePreview(ctx context.Context, bookID int64) error {
	if err := c.previewRepo.DeleteByBookID(ctx, bookID); err != nil {
		return notFoundAs(err, domain.ErrPreviewNotFound)
	}
	if err := c.bookRepo.SetHasPreview(ctx, bookID, false); err != nil {
		return notFoundAs(err, domain.ErrBookNotFound)
	}
	return nil
}

// DigitalSettings nil поля не изменяются.
type DigitalSettings struct {
	IsDigitalAvailable *bool
	HasPreview         *bool
	CoinPrice          *int64
}

func (c *ContentService) UpdateDigitalSettings(
	ctx context.Context,
	bookID int64,
	settings DigitalSettings,
) (*domain.Book, error) {
	if settings.CoinPrice != nil && *settings.CoinPrice < 0 {
		return nil, domain.ErrInvalidAmount.WithMessage("coin price must not be negative")
	}
	book, err := c.bookRepo.UpdateDigitalSettings(ctx, bookID, repoargs.UpdateDigitalSettings(settings))
	if err != nil {
		return nil, notFoundAs(err, domain.ErrBookNotFound)
	}
	return book, nil
}

func (c *ContentService) GetDigitalFile(ctx context.Context, bookID int64) (*domain.DigitalFile, error) {
	file, err := c.fileRepo.FindByBookID(ctx, bookID)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrDigitalFileNotFound)
	}
	return file, nil
}

// RegisterDigitalFile сохраняет метаданные загруженного файла книги. Доступность цифровой версии
// включается отдельно через UpdateDigitalSettings.
func (c *ContentService) RegisterDigitalFile(
	ctx context.Context,
	file domain.DigitalFile,
) (*domain.DigitalFile, error) {
	if err := file.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if _, err := c.bookRepo.FindByID(ctx, file.BookID); err != nil {
		return nil, notFoundAs(err, domain.ErrBookNotFound)
	}
	saved, err := c.fileRepo.Save(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("registering digital file of book %d: %w", file.BookID, err)
	}
	return saved, nil
}

// DeleteDigitalFile удаляет метаданные файла и выключает цифровую версию книги.
func (c *ContentService) DeleteDigitalFile(ctx context.Context, bookID int64) error {
	if err := c.fileRepo.DeleteByBookID(ctx, bookID); err != nil {
		return notFoundAs(err, domain.ErrDigitalFileNotFound)
	}
	disabled := false
	_, err := c.bookRepo.UpdateDigitalSettings(ctx, bookID, repoargs.UpdateDigitalSettings{
		IsDigitalAvailable: &disabled,
	})
	if err != nil {
		return notFoundAs(err, domain.ErrBookNotFound)
	}
	return nil
}

type BulkDigitalArgs struct {
	BookIDs   []int64
	Action    domain.BulkDigitalAction
	CoinPrice int64
}

// BulkUpdateDigital применяет действие к списку книг и возвращает число обновленных книг.
func (c *ContentService) BulkUpdateDigital(ctx context.Context, args BulkDigitalArgs) (int64, error) {
	if len(args.BookIDs) == 0 {
		return 0, domain.ErrInvalidBulkAction.WithMessage("at least one book must be selected")
	}

	var (
		update repoargs.UpdateDigitalSettings
		on     = true
		off    = false
	)
	switch args.Action {
	case domain.BulkEnableDigital:
		update.IsDigitalAvailable = &on
	case domain.BulkDisableDigital:
		update.IsDigitalAvailable = &off
	case domain.BulkEnablePreview:
		update.HasPreview = &on
	case domain.BulkDisablePreview:
		update.HasPreview = &off
	case domain.BulkSetCoinPrice:
		if args.CoinPrice < 0 {
			return 0, domain.ErrInvalidAmount.WithMessage("coin price must not be negative")
		}
		price := args.CoinPrice
		update.CoinPrice = &price
	default:
		return 0, domain.ErrInvalidBulkAction
	}

	updated, err := c.bookRepo.BulkUpdateDigitalSettings(ctx, args.BookIDs, update)
	if err != nil {
		return 0, fmt.Errorf("bulk updating digital settings: %w", err)
	}
	c.l.WithFields(logrus.Fields{"action": args.Action, "updated": updated}).Info("bulk digital update")
	return updated, nil
}
