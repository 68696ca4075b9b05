package service

import (
	"errors"
	"testing"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ContentServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	m        *repoMocks
	previews *mocks.MockPreviewRepository
	files    *mocks.MockDigitalFileRepository
	service  *ContentService
}

func TestContentServiceSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}

func (s *ContentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.m = newRepoMocks(s.mockCtrl)
	s.previews = mocks.NewMockPreviewRepository(s.mockCtrl)
	s.files = mocks.NewMockDigitalFileRepository(s.mockCtrl)

	var err error
	s.service, err = NewContentService(s.m.uow, s.previews, s.files, discardLogger())
	s.Require().NoError(err)
}

func (s *ContentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func chapters(n int) []domain.PreviewChapter {
	res := make([]domain.PreviewChapter, n)
	for i := range res {
		res[i] = domain.PreviewChapter{Title: "Chapter", Content: "Text"}
	}
	return res
}

func (s *ContentServiceTestSuite) TestCreatePreview() {
	s.Run("ok", func() {
		s.m.books.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Book{ID: 1}, nil)
		s.previews.EXPECT().Create(gomock.Any(), int64(1), gomock.Len(3)).
			Return(&domain.Preview{BookID: 1, Chapters: chapters(3)}, nil)
		s.m.books.EXPECT().SetHasPreview(gomock.Any(), int64(1), true).Return(nil)

		preview, err := s.service.CreatePreview(s.T().Context(), 1, chapters(3))
		s.Require().NoError(err)
		s.Len(preview.Chapters, 3)
	})

	s.Run("too few chapters", func() {
		_, err := s.service.CreatePreview(s.T().Context(), 1, chapters(2))
		s.Require().ErrorIs(err, domain.ErrInvalidPreview)
	})

	s.Run("already exists", func() {
		s.m.books.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Book{ID: 1}, nil)
		s.previews.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

		_, err := s.service.CreatePreview(s.T().Context(), 1, chapters(4))
		s.Require().ErrorIs(err, domain.ErrPreviewExists)
	})

	s.Run("book flag fails", func() {
		s.m.books.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Book{ID: 1}, nil)
		s.previews.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(&domain.Preview{BookID: 1}, nil)
		s.m.books.EXPECT().SetHasPreview(gomock.Any(), int64(1), true).Return(errors.New("conn reset"))
		s.previews.EXPECT().DeleteByBookID(gomock.Any(), int64(1)).Return(nil)

		_, err := s.service.CreatePreview(s.T().Context(), 1, chapters(3))
		s.Require().Error(err)
	})

	s.Run("unknown book", func() {
		s.m.books.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, domain.ErrRecordNotFound)

		_, err := s.service.CreatePreview(s.T().Context(), 2, chapters(3))
		s.Require().ErrorIs(err, domain.ErrBookNotFound)
	})
}

func (s *ContentServiceTestSuite) TestUpsertPreview_CreatesMissing() {
	s.m.books.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Book{ID: 1}, nil)
	s.previews.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.previews.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(&domain.Preview{BookID: 1}, nil)
	s.m.books.EXPECT().SetHasPreview(gomock.Any(), int64(1), true).Return(nil)

	_, err := s.service.UpsertPreview(s.T().Context(), 1, chapters(5))
	s.Require().NoError(err)
}

func (s *ContentServiceTestSuite) TestGetChapter() {
	preview := &domain.Preview{BookID: 1, Chapters: []domain.PreviewChapter{
		{Number: 1, Title: "One", Content: "a"},
		{Number: 2, Title: "Two", Content: "b"},
		{Number: 3, Title: "Three", Content: "c"},
	}}
	s.previews.EXPECT().FindByBookID(gomock.Any(), int64(1)).Return(preview, nil).Times(2)

	ch, err := s.service.GetChapter(s.T().Context(), 1, 2)
	s.Require().NoError(err)
	s.Equal("Two", ch.Title)

	_, err = s.service.GetChapter(s.T().Context(), 1, 4)
	s.Require().ErrorIs(err, domain.ErrPreviewNotFound)
}

func (s *ContentServiceTestSuite) TestDeletePreview() {
	s.previews.EXPECT().DeleteByBookID(gomock.Any(), int64(1)).Return(nil)
	s.m.books.EXPECT().SetHasPreview(gomock.Any(), int64(1), false).Return(nil)
	s.Require().NoError(s.service.DeletePreview(s.T().Context(), 1))

	s.previews.EXPECT().DeleteByBookID(gomock.Any(), int64(2)).Return(domain.ErrRecordNotFound)
	s.Require().ErrorIs(s.service.DeletePreview(s.T().Context(), 2), domain.ErrPreviewNotFound)
}

func (s *ContentServiceTestSuite) TestUpdateDigitalSettings() {
	s.Run("negative price", func() {
		_, err := s.service.UpdateDigitalSettings(s.T().Context(), 1, DigitalSettings{CoinPrice: ptr(int64(-1))})
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	})

	s.Run("ok", func() {
		settings := DigitalSettings{IsDigitalAvailable: ptr(true), CoinPrice: ptr(int64(120))}
		s.m.books.EXPECT().UpdateDigitalSettings(gomock.Any(), int64(1), repoargs.UpdateDigitalSettings{
			IsDigitalAvailable: ptr(true),
			CoinPrice:          ptr(int64(120)),
		}).Return(&domain.Book{ID: 1, IsDigitalAvailable: true, CoinPrice: 120}, nil)

		book, err := s.service.UpdateDigitalSettings(s.T().Context(), 1, settings)
		s.Require().NoError(err)
		s.True(book.IsDigitalAvailable)
	})
}

func (s *ContentServiceTestSuite) TestRegisterDigitalFile() {
	file := domain.DigitalFile{
		BookID:      1,
		Filename:    "dune.epub",
		Path:        "books/1/dune.epub",
		ContentType: "application/epub+zip",
		Size:        1 << 20,
	}

	s.Run("unsupported type", func() {
		bad := file
		bad.ContentType = "image/png"
		_, err := s.service.RegisterDigitalFile(s.T().Context(), bad)
		s.Require().ErrorIs(err, domain.ErrInvalidDigitalFile)
	})

	s.Run("ok", func() {
		s.m.books.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&domain.Book{ID: 1}, nil)
		s.files.EXPECT().Save(gomock.Any(), file).Return(&file, nil)

		saved, err := s.service.RegisterDigitalFile(s.T().Context(), file)
		s.Require().NoError(err)
		s.Equal("dune.epub", saved.Filename)
	})
}

func (s *ContentServiceTestSuite) TestDeleteDigitalFile() {
	s.files.EXPECT().DeleteByBookID(gomock.Any(), int64(1)).Return(nil)
	s.m.books.EXPECT().UpdateDigitalSettings(gomock.Any(), int64(1), repoargs.UpdateDigitalSettings{
		IsDigitalAvailable: ptr(false),
	}).Return(&domain.Book{ID: 1}, nil)

	s.Require().NoError(s.service.DeleteDigitalFile(s.T().Context(), 1))
}

func (s *ContentServiceTestSuite) TestBulkUpdateDigital() {
	s.Run("no books", func() {
		_, err := s.service.BulkUpdateDigital(s.T().Context(), BulkDigitalArgs{Action: domain.BulkEnableDigital})
		s.Require().ErrorIs(err, domain.ErrInvalidBulkAction)
	})

	s.Run("unknown action", func() {
		_, err := s.service.BulkUpdateDigital(s.T().Context(), BulkDigitalArgs{BookIDs: []int64{1}, Action: "burn"})
		s.Require().ErrorIs(err, domain.ErrInvalidBulkAction)
	})

	s.Run("set coin price", func() {
		s.m.books.EXPECT().BulkUpdateDigitalSettings(gomock.Any(), []int64{1, 2}, repoargs.UpdateDigitalSettings{
			CoinPrice: ptr(int64(90)),
		}).Return(int64(2), nil)

		n, err := s.service.BulkUpdateDigital(s.T().Context(), BulkDigitalArgs{
			BookIDs: []int64{1, 2}, Action: domain.BulkSetCoinPrice, CoinPrice: 90,
		})
		s.Require().NoError(err)
		s.Equal(int64(2), n)
	})

	s.Run("disable preview", func() {
		s.m.books.EXPECT().BulkUpdateDigitalSettings(gomock.Any(), []int64{3}, repoargs.UpdateDigitalSettings{
			HasPreview: ptr(false),
		}).Return(int64(1), nil)

		_, err := s.service.BulkUpdateDigital(s.T().Context(), BulkDigitalArgs{
			BookIDs: []int64{3}, Action: domain.BulkDisablePreview,
		})
		s.Require().NoError(err)
	})
}
