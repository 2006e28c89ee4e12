package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"beadcraft/entity"
	"beadcraft/pkg/apperr"
	"beadcraft/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// recordMailer captures sends so tests can wait for the async notification.
type recordMailer struct {
	mu       sync.Mutex
	subjects []string
	sent     chan struct{}
	fail     bool
}

func newRecordMailer() *recordMailer {
	return &recordMailer{sent: make(chan struct{}, 8)}
}

func (m *recordMailer) Send(subject, body string) error {
	m.mu.Lock()
	m.subjects = append(m.subjects, subject)
	m.mu.Unlock()
	m.sent <- struct{}{}
	if m.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (m *recordMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a notification send")
	}
}

func newConvService(t *testing.T, db *gorm.DB, m *recordMailer) *ConversationService {
	t.Helper()
	// zap.NewNop: the notify goroutine may outlive the test body and a
	// test-bound logger would panic on late writes.
	return NewConversationService(
		repository.NewConversationRepository(db),
		m,
		"http://localhost:3000",
		zap.NewNop(),
	)
}

func TestStartConversationIssuesTokenAndInitialMessage(t *testing.T) {
	db := newTestDB(t)
	m := newRecordMailer()
	svc := newConvService(t, db, m)

	conv, err := svc.Start(&StartConversationReq{
		Message:      "Hi, interested!",
		Email:        "buyer@example.com",
		ProductName:  "Pearl Drop Earrings",
		ProductPrice: 8900,
	})
	require.NoError(t, err)
	require.NotEmpty(t, conv.Token)

	got, err := svc.Get(conv.Token)
	require.NoError(t, err)
	assert.Equal(t, "Pearl Drop Earrings", got.ProductName)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, entity.SenderCustomer, got.Messages[0].Sender)
	assert.Equal(t, "Hi, interested!", got.Messages[0].Body)

	m.waitForSend(t)
}

func TestStartConversationRequiresMessage(t *testing.T) {
	db := newTestDB(t)
	svc := newConvService(t, db, newRecordMailer())

	_, err := svc.Start(&StartConversationReq{Message: "   "})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	m := newRecordMailer()
	svc := newConvService(t, db, m)

	conv, err := svc.Start(&StartConversationReq{Message: "Hi, interested!"})
	require.NoError(t, err)

	_, err = svc.Append(conv.Token, "Sure!", entity.SenderMerchant)
	require.NoError(t, err)
	_, err = svc.Append(conv.Token, "What colors do you have?", entity.SenderCustomer)
	require.NoError(t, err)

	got, err := svc.Get(conv.Token)
	require.NoError(t, err)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "Hi, interested!", got.Messages[0].Body)
	assert.Equal(t, "Sure!", got.Messages[1].Body)
	assert.Equal(t, "What colors do you have?", got.Messages[2].Body)
}

func TestAppendUnknownTokenWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newConvService(t, db, newRecordMailer())

	_, err := svc.Append("no-such-token", "hello", entity.SenderCustomer)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	var count int64
	db.Model(&entity.Message{}).Count(&count)
	assert.Zero(t, count)
}

func TestAppendRejectsUnknownSender(t *testing.T) {
	db := newTestDB(t)
	svc := newConvService(t, db, newRecordMailer())

	conv, err := svc.Start(&StartConversationReq{Message: "Hi"})
	require.NoError(t, err)

	_, err = svc.Append(conv.Token, "hello", "bot")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCustomerAppendNotifiesMerchant(t *testing.T) {
	db := newTestDB(t)
	m := newRecordMailer()
	svc := newConvService(t, db, m)

	conv, err := svc.Start(&StartConversationReq{Message: "Hi", Email: "buyer@example.com"})
	require.NoError(t, err)
	m.waitForSend(t) // the initial inquiry

	_, err = svc.Append(conv.Token, "Still there?", entity.SenderCustomer)
	require.NoError(t, err)
	m.waitForSend(t)
}

func TestNotificationFailureNeverFailsAppend(t *testing.T) {
	db := newTestDB(t)
	m := newRecordMailer()
	m.fail = true
	svc := newConvService(t, db, m)

	conv, err := svc.Start(&StartConversationReq{Message: "Hi"})
	require.NoError(t, err)
	m.waitForSend(t)

	msg, err := svc.Append(conv.Token, "Anyone home?", entity.SenderCustomer)
	require.NoError(t, err)
	require.NotNil(t, msg)
	m.waitForSend(t)

	// The append itself is durable.
	got, err := svc.Get(conv.Token)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 2)
}

func TestMerchantAppendSendsNoNotification(t *testing.T) {
	db := newTestDB(t)
	m := newRecordMailer()
	svc := newConvService(t, db, m)

	conv, err := svc.Start(&StartConversationReq{Message: "Hi"})
	require.NoError(t, err)
	m.waitForSend(t)

	_, err = svc.Append(conv.Token, "Sure!", entity.SenderMerchant)
	require.NoError(t, err)

	select {
	case <-m.sent:
		t.Fatal("merchant reply must not trigger a notification")
	case <-time.After(100 * time.Millisecond):
	}
}
