package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beadcraft/entity"
	"beadcraft/pkg/mailer"
	"beadcraft/repository"
	"beadcraft/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Conversation{}, &entity.Message{},
	))

	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewProductRepository(db))
	convSvc := services.NewConversationService(repository.NewConversationRepository(db), mailer.Noop{}, "http://localhost:3000", zap.NewNop())

	orderCtrl := NewOrderController(orderSvc)
	convCtrl := NewConversationController(convSvc)

	r := gin.New()
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/:ref", orderCtrl.DetailByRef)
	r.POST("/conversation", convCtrl.Start)
	r.GET("/conversation", convCtrl.Get)
	r.POST("/conversation/reply", convCtrl.Reply)

	return r, db
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, db := setupRouter(t)

	p := entity.Product{Name: "Bracelet", Price: 5900, Active: true}
	require.NoError(t, db.Create(&p).Error)

	w := doJSON(r, http.MethodPost, "/orders", gin.H{
		"items":        []gin.H{{"productId": p.ID, "quantity": 2}},
		"customerNote": "gift wrap",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		OK   bool `json:"ok"`
		Data struct {
			Ref string `json:"ref"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.OK)
	assert.Regexp(t, `^ORD-[A-Z2-9]{5}$`, out.Data.Ref)

	// The ref resolves through the public lookup.
	w = doJSON(r, http.MethodGet, "/orders/"+out.Data.Ref, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_messenger_confirmation"`)
}

func TestCreateOrderEndpointRejectsEmptyItems(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/orders", gin.H{"items": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderLookupUnknownRef(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/orders/ORD-ZZZZZ", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConversationFlowOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/conversation", gin.H{
		"message":     "Hi, interested!",
		"email":       "buyer@example.com",
		"productName": "Pearl Drop Earrings",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.Token)

	w = doJSON(r, http.MethodPost, "/conversation/reply", gin.H{
		"token":   out.Data.Token,
		"message": "Sure!",
		"sender":  "merchant",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/conversation?token="+out.Data.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var thread struct {
		Data struct {
			Messages []struct {
				Body   string `json:"body"`
				Sender string `json:"sender"`
			} `json:"messages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &thread))
	require.Len(t, thread.Data.Messages, 2)
	assert.Equal(t, "customer", thread.Data.Messages[0].Sender)
	assert.Equal(t, "Sure!", thread.Data.Messages[1].Body)
}

func TestConversationReplyUnknownToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/conversation/reply", gin.H{
		"token":   "no-such-token",
		"message": "hello",
		"sender":  "customer",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConversationGetRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/conversation", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
