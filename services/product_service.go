// services/product_service.go
package services

import (
	"errors"
	"strings"

	"beadcraft/entity"
	"beadcraft/pkg/apperr"
	"beadcraft/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo}
}

func (s *ProductService) ListPublic() ([]entity.Product, error) {
	products, err := s.repo.ListActive()
	if err != nil {
		return nil, apperr.Dependency("list products", err)
	}
	return products, nil
}

func (s *ProductService) ListAll() ([]entity.Product, error) {
	products, err := s.repo.ListAll()
	if err != nil {
		return nil, apperr.Dependency("list products", err)
	}
	return products, nil
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Dependency("lookup product", err)
	}
	return p, nil
}

type ProductIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Active      *bool  `json:"active"`
}

func (s *ProductService) Create(in *ProductIn) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if in.Price <= 0 {
		return nil, apperr.Validation("price must be positive")
	}

	p := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Active:      true,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := s.repo.Create(p); err != nil {
		return nil, apperr.Dependency("create product", err)
	}
	return p, nil
}

// Update edits the live catalog row only; order item and conversation
// snapshots keep their captured values.
func (s *ProductService) Update(id uint, in *ProductIn) (*entity.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if strings.TrimSpace(in.Name) != "" {
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Price > 0 {
		updates["price"] = in.Price
	}
	if in.ImageURL != "" {
		updates["image_url"] = in.ImageURL
	}
	if in.Category != "" {
		updates["category"] = in.Category
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}
	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, apperr.Dependency("update product", err)
		}
	}
	return s.Get(id)
}

func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.Dependency("delete product", err)
	}
	return nil
}
