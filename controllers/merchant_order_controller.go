package controllers

import (
	"strconv"

	"beadcraft/pkg/resp"
	"beadcraft/services"

	"github.com/gin-gonic/gin"
)

type MerchantOrderController struct {
	service *services.OrderService
}

func NewMerchantOrderController(s *services.OrderService) *MerchantOrderController {
	return &MerchantOrderController{s}
}

// GET /merchant/orders
func (mc *MerchantOrderController) List(c *gin.Context) {
	orders, err := mc.service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /merchant/orders/:id/status
func (mc *MerchantOrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.service.UpdateStatus(uint(id), req.Status); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
