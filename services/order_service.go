package services

import (
	"errors"

	"beadcraft/entity"
	"beadcraft/middlewares"
	"beadcraft/pkg/apperr"
	"beadcraft/repository"

	"gorm.io/gorm"
)

// maxRefAttempts caps collision retries; exhaustion is reported, never
// silently degraded to a longer or sequential code.
const maxRefAttempts = 3

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository

	// genRef is swappable so tests can force ref collisions.
	genRef func() string
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, productRepo *repository.ProductRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, ProductRepo: productRepo, genRef: GenerateOrderRef}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

type CreateOrderReq struct {
	Items        []OrderItemIn `json:"items"`
	CustomerNote string        `json:"customerNote"`
}

// ----- Create -----

// Create validates the item list, computes the total server-side, allocates
// a unique ref (retrying only on duplicate-key), and writes the header plus
// all items in one transaction. Returns the public ref.
func (s *OrderService) Create(req *CreateOrderReq) (string, error) {
	if len(req.Items) == 0 {
		return "", apperr.Validation("no items provided")
	}
	for _, it := range req.Items {
		if it.ProductID == 0 || it.Quantity < 1 {
			return "", apperr.Validation("invalid item data")
		}
	}

	// Resolve products and snapshot their current name/image/price. The
	// client-supplied total is never trusted.
	type line struct {
		product  *entity.Product
		quantity int
		note     string
	}
	var total int64
	lines := make([]line, 0, len(req.Items))
	for _, it := range req.Items {
		p, err := s.ProductRepo.GetByID(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperr.Validation("product not found")
			}
			return "", apperr.Dependency("lookup product", err)
		}
		if !p.Active {
			return "", apperr.Validation("product is not available")
		}
		total += p.Price * int64(it.Quantity)
		lines = append(lines, line{product: p, quantity: it.Quantity, note: it.Note})
	}

	var ref string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		allocated := false
		for attempt := 0; attempt < maxRefAttempts; attempt++ {
			order = entity.Order{
				Ref:          s.genRef(),
				Status:       entity.StatusPendingConfirmation,
				TotalPrice:   total,
				CustomerNote: req.CustomerNote,
			}
			err := s.Repo.Create(tx, &order)
			if err == nil {
				allocated = true
				break
			}
			// Collisions are retried silently; anything else is fatal.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				middlewares.RecordRefCollision()
				continue
			}
			return apperr.Dependency("create order", err)
		}
		if !allocated {
			return apperr.Conflict("unable to allocate unique order reference")
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				OrderID:         order.ID,
				ProductID:       l.product.ID,
				ProductName:     l.product.Name,
				ProductImageURL: l.product.ImageURL,
				UnitPrice:       l.product.Price,
				Quantity:        l.quantity,
				Note:            l.note,
			})
		}
		// Inside the transaction a failed batch rolls the header back too,
		// so an order without items is never visible to readers.
		if err := s.Repo.CreateItems(tx, items); err != nil {
			return apperr.Dependency("create order items", err)
		}

		ref = order.Ref
		return nil
	})
	if err != nil {
		return "", err
	}

	middlewares.RecordOrderCreated()
	return ref, nil
}

// ----- Lookup -----

func (s *OrderService) GetByRef(ref string) (*entity.Order, error) {
	o, err := s.Repo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Dependency("lookup order", err)
	}
	return o, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	orders, err := s.Repo.List()
	if err != nil {
		return nil, apperr.Dependency("list orders", err)
	}
	return orders, nil
}
