package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Email       string
	FullName    string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	CoinBalance int64
	IsActive    bool
	Role        Role
}

type Book struct {
	ID                 int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Title              string
	Author             string
	Category           string
	Price              int64
	IsDigitalAvailable bool
	HasPreview         bool
	CoinPrice          int64
}

type CartItem struct {
	BookID   int64
	Quantity int64
	Price    int64
}

type Cart struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Items       []CartItem
	TotalAmount int64
}

type ShippingInfo struct {
	FullName   string
	Address    string
	City       string
	Phone      string
	PostalCode string
}

type OrderItem struct {
	BookID   int64
	Title    string
	Author   string
	Quantity int64
	Price    int64
	Subtotal int64
}

// Order суммы хранятся в донгах. CoinAmount - сколько монет списано при оплате монетами.
type Order struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UserID            int64
	OrderNumber       string
	Items             []OrderItem
	Shipping          ShippingInfo
	PaymentMethod     PaymentMethod
	PaymentStatus     PaymentStatus
	Status            OrderStatus
	SubtotalAmount    int64
	DiscountAmount    int64
	TotalAmount       int64
	ShippingFee       int64
	FinalAmount       int64
	CoinAmount        int64
	CoinTransactionID *int64
	PromotionCode     string
	Notes             string
	TrackingNumber    string
}

// CoinTransaction запись журнала монет. Amount всегда положительный, знак определяется типом.
type CoinTransaction struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	UserID               int64
	OrderID              *int64
	Type                 TransactionType
	Amount               int64
	RealMoneyAmount      int64
	ExchangeRate         int64
	BalanceBefore        int64
	BalanceAfter         int64
	Description          string
	PaymentMethod        string
	PaymentTransactionID string
	Status               TransactionStatus
}

func (t CoinTransaction) SignedAmount() int64 {
	return t.Type.Sign() * t.Amount
}

type Promotion struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Code                 string
	Description          string
	DiscountType         DiscountType
	DiscountValue        decimal.Decimal
	MinimumPurchase      int64
	UsageLimit           *int64
	CurrentUsage         int64
	IsActive             bool
	StartDate            time.Time
	EndDate              time.Time
	ApplicableBooks      []int64
	ApplicableCategories []string
}

type PreviewChapter struct {
	Number  int
	Title   string
	Content string
}

type Preview struct {
	BookID    int64
	Chapters  []PreviewChapter
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DigitalFile struct {
	BookID      int64
	Filename    string
	Path        string
	ContentType string
	Size        int64
	UploadedAt  time.Time
}
