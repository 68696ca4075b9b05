package service

import "github.com/fsdevblog/bookstore/internal/repository/repoargs"

// Pagination метаданные постраничной выдачи.
type Pagination struct {
	CurrentPage uint
	TotalPages  uint
	Total       int64
	Limit       uint
	HasNext     bool
	HasPrev     bool
}

// maxPage верхняя граница номера страницы, смещение (page-1)*limit не переполняется.
const maxPage uint = 100_000

type pageLimits struct {
	defaultLimit uint
	maxLimit     uint
}

var (
	ordersPageLimits       = pageLimits{defaultLimit: 10, maxLimit: 50}
	transactionsPageLimits = pageLimits{defaultLimit: 20, maxLimit: 100}
)

// normalize приводит номер страницы и лимит к допустимым значениям. Нулевые значения заменяются
// значениями по умолчанию, номер страницы и лимит ограничиваются сверху.
func (p pageLimits) normalize(page, limit uint) (uint, uint) {
	if page == 0 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if limit == 0 {
		limit = p.defaultLimit
	}
	if limit > p.maxLimit {
		limit = p.maxLimit
	}
	return page, limit
}

func toRepoPage(page, limit uint) repoargs.Page {
	return repoargs.Page{Limit: limit, Offset: (page - 1) * limit}
}

func newPagination(page, limit uint, total int64) Pagination {
	var totalPages uint
	if total > 0 {
		totalPages = uint((total + int64(limit) - 1) / int64(limit)) //nolint:gosec
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
