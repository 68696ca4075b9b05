package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	BookRepoName            RepositoryName = "book"
	CartRepoName            RepositoryName = "cart"
	OrderRepoName           RepositoryName = "order"
	CoinTransactionRepoName RepositoryName = "coin_transaction"
	PromotionRepoName       RepositoryName = "promotion"
)

// Page параметры постраничной выборки.
type Page struct {
	Limit  uint
	Offset uint
}
