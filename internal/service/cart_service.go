package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/pricing"
	"github.com/fsdevblog/bookstore/internal/repository/repoargs"
	"github.com/fsdevblog/bookstore/pkg/uow"
)

type CartService struct {
	uow      uow.UOW
	locker   Locker
	cartRepo CartRepository
}

func NewCartService(u uow.UOW, l Locker) (*CartService, error) {
	cartRepo, err := uow.GetRepositoryAs[CartRepository](u, uow.RepositoryName(repoargs.CartRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CartService{uow: u, locker: l, cartRepo: cartRepo}, nil
}

// CartView корзина с предварительным расчетом доставки.
type CartView struct {
	Cart        *domain.Cart
	ShippingFee int64
	FinalAmount int64
}

// GetCart возвращает корзину пользователя. Если корзины нет, возвращается пустая.
func (c *CartService) GetCart(ctx context.Context, userID int64) (*CartView, error) {
	cart, err := c.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("getting cart of user %d: %w", userID, err)
		}
		cart = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	}

	view := CartView{Cart: cart}
	if !cart.IsEmpty() {
		view.ShippingFee = pricing.ShippingFee(cart.TotalAmount)
	}
	view.FinalAmount = cart.TotalAmount + view.ShippingFee
	return &view, nil
}

// AddItem добавляет книгу в корзину, создавая корзину при необходимости.
func (c *CartService) AddItem(ctx context.Context, userID, bookID, quantity int64) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return c.mutate(ctx, userID, func(ctx context.Context, tx uow.TX, cart *domain.Cart) error {
		books, err := booksIn(tx)
		if err != nil {
			return err //nolint:wrapcheck
		}
		book, err := books.FindByID(ctx, bookID)
		if err != nil {
			return notFoundAs(err, domain.ErrBookNotFound)
		}
		return cart.AddItem(*book, quantity)
	}, true)
}

// UpdateItem меняет количество книги в корзине.
func (c *CartService) UpdateItem(ctx context.Context, userID, bookID, quantity int64) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return c.mutate(ctx, userID, func(_ context.Context, _ uow.TX, cart *domain.Cart) error {
		return cart.UpdateQuantity(bookID, quantity)
	}, false)
}

// RemoveItem удаляет книгу из корзины. Отсутствие книги в корзине ошибкой не считается.
func (c *CartService) RemoveItem(ctx context.Context, userID, bookID int64) (*domain.Cart, error) {
	return c.mutate(ctx, userID, func(_ context.Context, _ uow.TX, cart *domain.Cart) error {
		cart.RemoveItem(bookID)
		return nil
	}, false)
}

// ClearCart удаляет корзину целиком. Повторный вызов ничего не делает.
func (c *CartService) ClearCart(ctx context.Context, userID int64) error {
	err := withUserLock(ctx, c.locker, userID, func() error {
		return c.cartRepo.DeleteByUserID(ctx, userID) //nolint:wrapcheck
	})
	if err != nil {
		return fmt.Errorf("clearing cart of user %d: %w", userID, err)
	}
	return nil
}

type cartMutation func(ctx context.Context, tx uow.TX, cart *domain.Cart) error

// mutate загружает корзину, применяет fn, пересчитывает сумму и сохраняет корзину в одной транзакции.
// Если корзины нет, при createMissing создается новая, иначе возвращается domain.ErrCartNotFound.
func (c *CartService) mutate(
	ctx context.Context,
	userID int64,
	fn cartMutation,
	createMissing bool,
) (*domain.Cart, error) {
	var cart *domain.Cart
	err := withUserLock(ctx, c.locker, userID, func() error {
		return c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error { //nolint:wrapcheck
			carts, err := cartsIn(tx)
			if err != nil {
				return err //nolint:wrapcheck
			}
			cart, err = carts.FindByUserID(ctx, userID)
			if err != nil {
				if !createMissing || !errors.Is(err, domain.ErrRecordNotFound) {
					return notFoundAs(err, domain.ErrCartNotFound)
				}
				cart = &domain.Cart{UserID: userID}
			}

			if err := fn(ctx, tx, cart); err != nil {
				return err
			}
			cart.RecomputeTotal()
			return carts.Save(ctx, cart) //nolint:wrapcheck
		})
	})
	if err != nil {
		return nil, fmt.Errorf("updating cart of user %d: %w", userID, err)
	}
	return cart, nil
}
