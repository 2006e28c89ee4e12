package controllers

import (
	"beadcraft/pkg/resp"
	"beadcraft/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{s}
}

// ===== Create Order =====

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ref, err := oc.service.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"ref": ref})
}

// GET /orders/:ref — the order-confirm page looks orders up by public ref.
func (oc *OrderController) DetailByRef(c *gin.Context) {
	o, err := oc.service.GetByRef(c.Param("ref"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, o)
}
