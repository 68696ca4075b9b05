package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/service"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	svs ContentServicer
}

func NewContentHandler(svs ContentServicer) *ContentHandler {
	return &ContentHandler{svs: svs}
}

// Preview GET RouteGroup + BookPreviewRoute.
func (h *ContentHandler) Preview(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	preview, err := h.svs.GetPreview(reqCtx, bookID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPreviewResponse(preview))
}

// Chapter GET RouteGroup + BookPreviewChapterRoute.
func (h *ContentHandler) Chapter(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		abortWithError(c, http.StatusBadRequest, "INVALID_ID", "invalid chapter number")
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	chapter, err := h.svs.GetChapter(reqCtx, bookID, number)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, PreviewChapterResponse(*chapter))
}

type PreviewChapterParams struct {
	Title   string `binding:"required,max=255" json:"title"`
	Content string `binding:"required" json:"content"`
}

type PreviewParams struct {
	Chapters []PreviewChapterParams `binding:"required,dive" json:"chapters"`
}

func (p PreviewParams) toDomain() []domain.PreviewChapter {
	res := make([]domain.PreviewChapter, len(p.Chapters))
	for i, ch := range p.Chapters {
		res[i] = domain.PreviewChapter{Title: ch.Title, Content: ch.Content}
	}
	return res
}

// CreatePreview POST RouteGroup + AdminBookPreviewRoute.
func (h *ContentHandler) CreatePreview(c *gin.Context) {
	h.savePreview(c, http.StatusCreated, h.svs.CreatePreview)
}

// UpsertPreview PUT RouteGroup + AdminBookPreviewRoute.
func (h *ContentHandler) UpsertPreview(c *gin.Context) {
	h.savePreview(c, http.StatusOK, h.svs.UpsertPreview)
}

type savePreviewFunc func(ctx context.Context, bookID int64, chapters []domain.PreviewChapter) (*domain.Preview, error)

func (h *ContentHandler) savePreview(c *gin.Context, status int, save savePreviewFunc) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}
	var params PreviewParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	preview, err := save(reqCtx, bookID, params.toDomain())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(status, newPreviewResponse(preview))
}

// DeletePreview DELETE RouteGroup + AdminBookPreviewRoute.
func (h *ContentHandler) DeletePreview(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.DeletePreview(reqCtx, bookID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type DigitalSettingsParams struct {
	IsDigitalAvailable *bool  `json:"isDigitalAvailable"`
	HasPreview         *bool  `json:"hasPreview"`
	CoinPrice          *int64 `binding:"omitempty,gte=0" json:"coinPrice"`
}

// UpdateDigitalSettings PUT RouteGroup + AdminBookDigitalRoute.
func (h *ContentHandler) UpdateDigitalSettings(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}
	var params DigitalSettingsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	book, err := h.svs.UpdateDigitalSettings(reqCtx, bookID, service.DigitalSettings(params))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, DigitalBookResponse{
		ID:                 book.ID,
		IsDigitalAvailable: book.IsDigitalAvailable,
		HasPreview:         book.HasPreview,
		CoinPrice:          book.CoinPrice,
	})
}

// DigitalFile GET RouteGroup + AdminBookDigitalFileRoute.
func (h *ContentHandler) DigitalFile(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	file, err := h.svs.GetDigitalFile(reqCtx, bookID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, DigitalFileResponse(*file))
}

type DigitalFileParams struct {
	Filename    string `binding:"required,max=255" json:"filename"`
	Path        string `binding:"required,max=1024" json:"path"`
	ContentType string `binding:"required" json:"contentType"`
	Size        int64  `binding:"required,gt=0" json:"size"`
}

// RegisterDigitalFile POST RouteGroup + AdminBookDigitalFileRoute. Сам файл хранится вне сервиса,
// здесь регистрируются только его метаданные.
func (h *ContentHandler) RegisterDigitalFile(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}
	var params DigitalFileParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	file, err := h.svs.RegisterDigitalFile(reqCtx, domain.DigitalFile{
		BookID:      bookID,
		Filename:    params.Filename,
		Path:        params.Path,
		ContentType: params.ContentType,
		Size:        params.Size,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, DigitalFileResponse(*file))
}

// DeleteDigitalFile DELETE RouteGroup + AdminBookDigitalFileRoute.
func (h *ContentHandler) DeleteDigitalFile(c *gin.Context) {
	bookID, ok := idParam(c, "bookID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.DeleteDigitalFile(reqCtx, bookID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type BulkDigitalParams struct {
	BookIDs   []int64 `binding:"required,min=1,max=500,dive,gt=0" json:"bookIds"`
	Action    string  `binding:"required" json:"action"`
	CoinPrice int64   `binding:"gte=0" json:"coinPrice"`
}

// BulkDigital POST RouteGroup + AdminBulkDigitalRoute.
func (h *ContentHandler) BulkDigital(c *gin.Context) {
	var params BulkDigitalParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	updated, err := h.svs.BulkUpdateDigital(reqCtx, service.BulkDigitalArgs{
		BookIDs:   params.BookIDs,
		Action:    domain.BulkDigitalAction(params.Action),
		CoinPrice: params.CoinPrice,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
