// Package basket holds the client-side order list before checkout: a plain
// serializable value with explicit actions, persisted through a Store so it
// survives page refreshes.
package basket

import (
	"beadcraft/entity"
)

type Item struct {
	ProductID       uint   `json:"productId"`
	ProductName     string `json:"productName"`
	ProductImageURL string `json:"productImageUrl"`
	UnitPrice       int64  `json:"unitPrice"`
	Quantity        int    `json:"quantity"`
	Note            string `json:"note"`
}

type Basket struct {
	Items []Item `json:"items"`
}

// AddItem appends a line for the product, or bumps quantity if one exists.
func (b *Basket) AddItem(p entity.Product, note string) {
	for i := range b.Items {
		if b.Items[i].ProductID == p.ID {
			b.Items[i].Quantity++
			return
		}
	}
	b.Items = append(b.Items, Item{
		ProductID:       p.ID,
		ProductName:     p.Name,
		ProductImageURL: p.ImageURL,
		UnitPrice:       p.Price,
		Quantity:        1,
		Note:            note,
	})
}

func (b *Basket) RemoveItem(productID uint) {
	out := b.Items[:0]
	for _, it := range b.Items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	b.Items = out
}

// UpdateQuantity sets the line quantity; anything below 1 removes the line.
func (b *Basket) UpdateQuantity(productID uint, quantity int) {
	if quantity < 1 {
		b.RemoveItem(productID)
		return
	}
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			b.Items[i].Quantity = quantity
			return
		}
	}
}

func (b *Basket) UpdateNote(productID uint, note string) {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			b.Items[i].Note = note
			return
		}
	}
}

func (b *Basket) Clear() {
	b.Items = nil
}

func (b *Basket) TotalItems() int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}

func (b *Basket) TotalPrice() int64 {
	var sum int64
	for _, it := range b.Items {
		sum += it.UnitPrice * int64(it.Quantity)
	}
	return sum
}

func (b *Basket) Contains(productID uint) bool {
	for _, it := range b.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}
