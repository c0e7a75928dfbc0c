package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
	"bizfundraiser.backend/internal/usecases"
)

type walletRepoStub struct {
	byUser map[uuid.UUID]*entities.Wallet
}

func newWalletRepoStub() *walletRepoStub {
	return &walletRepoStub{byUser: map[uuid.UUID]*entities.Wallet{}}
}

func (s *walletRepoStub) Create(_ context.Context, w *entities.Wallet) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	s.byUser[w.UserID] = w
	return nil
}

func (s *walletRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	w, ok := s.byUser[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *w
	return &copied, nil
}

func (s *walletRepoStub) Credit(_ context.Context, userID uuid.UUID, amount float64) error {
	w, ok := s.byUser[userID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	w.Balance += amount
	return nil
}

func (s *walletRepoStub) Debit(_ context.Context, userID uuid.UUID, amount float64) error {
	w, ok := s.byUser[userID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	w.Balance -= amount
	return nil
}

func (s *walletRepoStub) UpsertByUserID(ctx context.Context, w *entities.Wallet) (*entities.Wallet, error) {
	if existing, err := s.GetByUserID(ctx, w.UserID); err == nil {
		return existing, nil
	}
	if err := s.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// uowStub runs the callback directly; the stubs have no transactions.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type transactionRepoStub struct {
	byUser map[uuid.UUID][]*entities.Transaction
}

func newTransactionRepoStub() *transactionRepoStub {
	return &transactionRepoStub{byUser: map[uuid.UUID][]*entities.Transaction{}}
}

func (s *transactionRepoStub) Create(_ context.Context, txn *entities.Transaction) error {
	s.byUser[txn.UserID] = append(s.byUser[txn.UserID], txn)
	return nil
}

func (s *transactionRepoStub) ListByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	txns := s.byUser[userID]
	return txns, int64(len(txns)), nil
}

func newWalletRouter(walletRepo *walletRepoStub, txnRepo *transactionRepoStub, callerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWalletHandler(usecases.NewWalletUsecase(walletRepo, txnRepo, uowStub{}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, callerID)
		c.Next()
	})
	r.GET("/wallet", h.Get)
	r.POST("/wallet/deposit", h.Deposit)
	r.GET("/transactions", h.ListTransactions)
	return r
}

func TestWalletHandler_DepositCreditsAndRecords(t *testing.T) {
	walletRepo := newWalletRepoStub()
	txnRepo := newTransactionRepoStub()
	userID := uuid.New()
	walletRepo.byUser[userID] = &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 100}

	r := newWalletRouter(walletRepo, txnRepo, userID)

	req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", bytes.NewBufferString(`{"amount":50000}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if walletRepo.byUser[userID].Balance != 50100 {
		t.Fatalf("balance not credited: %v", walletRepo.byUser[userID].Balance)
	}
	if len(txnRepo.byUser[userID]) != 1 {
		t.Fatal("deposit transaction not recorded")
	}
}

func TestWalletHandler_DepositValidation(t *testing.T) {
	r := newWalletRouter(newWalletRepoStub(), newTransactionRepoStub(), uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", bytes.NewBufferString(`{"amount":-3}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWalletHandler_GetAndListTransactions(t *testing.T) {
	walletRepo := newWalletRepoStub()
	txnRepo := newTransactionRepoStub()
	userID := uuid.New()
	walletRepo.byUser[userID] = &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 12345}
	txnRepo.byUser[userID] = []*entities.Transaction{
		{ID: uuid.New(), UserID: userID, Type: entities.TransactionTypeDeposit, Amount: 100, Reference: "DEP-1"},
	}

	r := newWalletRouter(walletRepo, txnRepo, userID)

	req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var wallet map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &wallet); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wallet["balance"].(float64) != 12345 {
		t.Fatalf("unexpected balance: %v", wallet["balance"])
	}

	req = httptest.NewRequest(http.MethodGet, "/transactions?page=1&limit=10", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Data []map[string]interface{} `json:"data"`
		Meta map[string]interface{}   `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) != 1 || body.Meta["totalCount"].(float64) != 1 {
		t.Fatalf("unexpected listing: %+v", body)
	}
}
