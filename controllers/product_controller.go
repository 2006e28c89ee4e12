package controllers

import (
	"strconv"

	"beadcraft/pkg/resp"
	"beadcraft/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{s}
}

// GET /products
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.service.ListPublic()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	p, err := pc.service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, p)
}

// ===== Merchant catalog management =====

// GET /merchant/products
func (pc *ProductController) ListAll(c *gin.Context) {
	products, err := pc.service.ListAll()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// POST /merchant/products
func (pc *ProductController) Create(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.service.Create(&in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /merchant/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.service.Update(uint(id), &in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /merchant/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := pc.service.Delete(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
