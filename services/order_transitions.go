// services/order_transitions.go
package services

import (
	"errors"

	"beadcraft/entity"
	"beadcraft/pkg/apperr"

	"gorm.io/gorm"
)

// UpdateStatus moves an order along its lifecycle. The allowed-set check
// runs before any write; the guarded UPDATE (WHERE status = current) covers
// the race where two dashboard sessions act at once.
func (s *OrderService) UpdateStatus(orderID uint, target string) error {
	if !entity.ValidOrderStatus(target) {
		return apperr.Validation("unknown order status")
	}

	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return apperr.Dependency("lookup order", err)
	}

	if !entity.CanTransition(o.Status, target) {
		return apperr.Validation("invalid status transition")
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, target)
	if err != nil {
		return apperr.Dependency("update order status", err)
	}
	if affected == 0 {
		return apperr.Conflict("order status changed concurrently")
	}
	return nil
}
