// controllers/conversation_controller.go
package controllers

import (
	"beadcraft/pkg/resp"
	"beadcraft/services"

	"github.com/gin-gonic/gin"
)

type ConversationController struct {
	service *services.ConversationService
}

func NewConversationController(s *services.ConversationService) *ConversationController {
	return &ConversationController{s}
}

// POST /conversation — opens a thread, returns the token the customer must
// keep (surfaced in the UI as a copyable link).
func (cc *ConversationController) Start(c *gin.Context) {
	var req services.StartConversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	conv, err := cc.service.Start(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": conv.Token})
}

// GET /conversation?token=...
func (cc *ConversationController) Get(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		resp.BadRequest(c, "token required")
		return
	}

	conv, err := cc.service.Get(token)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, conv)
}

// POST /conversation/reply
func (cc *ConversationController) Reply(c *gin.Context) {
	var req struct {
		Token   string `json:"token" binding:"required"`
		Message string `json:"message" binding:"required"`
		Sender  string `json:"sender" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := cc.service.Append(req.Token, req.Message, req.Sender)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": msg})
}
