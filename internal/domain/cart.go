package domain

// AddItem добавляет книгу в корзину. Если книга уже есть, количество суммируется, а цена остается той,
// что была зафиксирована при первом добавлении.
func (c *Cart) AddItem(book Book, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if i := c.indexOf(book.ID); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, CartItem{
			BookID:   book.ID,
			Quantity: quantity,
			Price:    book.Price,
		})
	}
	c.RecomputeTotal()
	return nil
}

// UpdateQuantity заменяет количество книги в корзине.
func (c *Cart) UpdateQuantity(bookID int64, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i := c.indexOf(bookID)
	if i < 0 {
		return ErrItemNotFound
	}
	c.Items[i].Quantity = quantity
	c.RecomputeTotal()
	return nil
}

// RemoveItem удаляет строку корзины. Отсутствие книги в корзине ошибкой не считается.
func (c *Cart) RemoveItem(bookID int64) {
	if i := c.indexOf(bookID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
	c.RecomputeTotal()
}

// RecomputeTotal пересчитывает сумму корзины. Вызывается перед каждым сохранением.
func (c *Cart) RecomputeTotal() {
	var total int64
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	c.TotalAmount = total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// BookIDs возвращает id книг в порядке строк корзины.
func (c *Cart) BookIDs() []int64 {
	ids := make([]int64, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.BookID
	}
	return ids
}

func (c *Cart) indexOf(bookID int64) int {
	for i, item := range c.Items {
		if item.BookID == bookID {
			return i
		}
	}
	return -1
}
