package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
)

var orderColumns = []string{"id", "user_id", "user_name", "cart_items", "order_status", "total_amount", "order_date"}

const cartJSON = `[{"productId":1,"title":"Muffin","price":"10.00","quantity":2},{"productId":2,"title":"Tea","price":5,"quantity":1}]`

func TestUserRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}

	columns := []string{"id", "user_name", "phone_number", "password_hash", "role", "created_at"}
	createdAt := time.Now()

	mock.ExpectQuery("FROM users WHERE phone_number=").WithArgs("9800000000").WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(1), "Asha", "9800000000", "hash", model.RoleAdmin, createdAt))
	user, err := repo.GetByPhone(context.Background(), "9800000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Role != model.RoleAdmin || user.UserName != "Asha" {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectQuery("FROM users WHERE phone_number=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByPhone(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM users WHERE id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(1), "Asha", "9800000000", "hash", model.RoleUser, createdAt))
	if _, err := repo.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("FROM users WHERE id=").WithArgs(int64(3)).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(context.Background(), 3); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected raw error, got %v", err)
	}

	mock.ExpectQuery("SELECT role, COUNT").WillReturnRows(
		pgxmockv3.NewRows([]string{"role", "count"}).AddRow(model.RoleUser, 12).AddRow(model.RoleAdmin, 3))
	counts, err := repo.CountByRole(context.Background())
	if err != nil || counts[model.RoleUser] != 12 || counts[model.RoleAdmin] != 3 || counts[model.RoleSuperAdmin] != 0 {
		t.Fatalf("unexpected counts %v err=%v", counts, err)
	}

	mock.ExpectQuery("SELECT role, COUNT").WillReturnError(errors.New("boom"))
	if _, err := repo.CountByRole(context.Background()); err == nil {
		t.Fatal("expected count error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &productRepository{storage: storage}

	columns := []string{"id", "admin_id", "store_id", "title", "category", "price", "total_stock", "image"}

	mock.ExpectQuery("FROM products WHERE admin_id=").WithArgs(int64(7)).WillReturnRows(
		pgxmockv3.NewRows(columns).
			AddRow(int64(1), int64(7), int64(3), "Muffin", "bakery", decimal.RequireFromString("2.50"), 4, "m.png").
			AddRow(int64(2), int64(7), int64(3), "Cake", "bakery", decimal.NewFromInt(12), 20, ""))
	products, err := repo.ListByAdmin(context.Background(), 7)
	if err != nil || len(products) != 2 {
		t.Fatalf("unexpected result: %v err=%v", products, err)
	}
	if !products[0].Price.Equal(decimal.RequireFromString("2.5")) || products[0].TotalStock != 4 {
		t.Fatalf("unexpected product: %+v", products[0])
	}

	mock.ExpectQuery("FROM products ORDER BY id").WillReturnRows(pgxmockv3.NewRows(columns))
	products, err = repo.ListAll(context.Background())
	if err != nil || len(products) != 0 {
		t.Fatalf("expected empty result, got %v err=%v", products, err)
	}

	mock.ExpectQuery("FROM products ORDER BY id").WillReturnError(errors.New("query"))
	if _, err := repo.ListAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("FROM products WHERE admin_id=").WithArgs(int64(8)).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow("bad", int64(8), int64(3), "Muffin", "bakery", decimal.NewFromInt(1), 1, ""))
	if _, err := repo.ListByAdmin(context.Background(), 8); err == nil {
		t.Fatal("expected scan error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepositoryRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &productRepository{storage: storage}

	if _, err := repo.ListAll(context.Background()); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestOrderRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()
	mock.ExpectQuery("FROM orders o LEFT JOIN users u ON u.id = o.user_id WHERE o.id=").WithArgs(int64(5)).WillReturnRows(
		pgxmockv3.NewRows(orderColumns).AddRow(int64(5), int64(9), "Ram", []byte(cartJSON), model.OrderStatusConfirmed, decimal.NewFromInt(25), now))
	order, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.UserName != "Ram" || order.Status != model.OrderStatusConfirmed || len(order.CartItems) != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
	first := order.CartItems[0]
	if first.ProductID != 1 || first.Quantity != 2 || !first.Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if !order.CartItems[1].Price.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected numeric price to decode, got %s", order.CartItems[1].Price)
	}

	mock.ExpectQuery("FROM orders o LEFT JOIN users u ON u.id = o.user_id WHERE o.id=").WithArgs(int64(6)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 6); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM orders o LEFT JOIN users u ON u.id = o.user_id WHERE o.id=").WithArgs(int64(7)).WillReturnRows(
		pgxmockv3.NewRows(orderColumns).AddRow(int64(7), int64(9), "", []byte(`{"broken"`), model.OrderStatusPending, decimal.Zero, now))
	if _, err := repo.GetByID(context.Background(), 7); err == nil || !strings.Contains(err.Error(), "decode cart items") {
		t.Fatalf("expected decode error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestBuildOrderQuery(t *testing.T) {
	query, args := buildOrderQuery(repository.OrderFilter{})
	if strings.Contains(query, "WHERE") || len(args) != 0 {
		t.Fatalf("unexpected unrestricted query %q args=%v", query, args)
	}
	if !strings.HasSuffix(query, "ORDER BY o.order_date DESC, o.id DESC") {
		t.Fatalf("expected newest first ordering, got %q", query)
	}

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	query, args = buildOrderQuery(repository.OrderFilter{Restricted: true, ProductIDs: []int64{1, 2}, Since: &since})
	if !strings.Contains(query, "ANY($1)") || !strings.Contains(query, "o.order_date >= $2") || strings.Contains(query, "LIMIT") {
		t.Fatalf("unexpected restricted query %q", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}

	query, args = buildOrderQuery(repository.OrderFilter{Since: &since})
	if !strings.Contains(query, "WHERE o.order_date >= $1") || len(args) != 1 {
		t.Fatalf("unexpected since query %q args=%v", query, args)
	}
}

func TestOrderRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	now := time.Now()

	orders, err := repo.List(context.Background(), repository.OrderFilter{Restricted: true})
	if err != nil || orders != nil {
		t.Fatalf("expected no orders without products, got %v err=%v", orders, err)
	}

	mock.ExpectQuery("FROM orders o LEFT JOIN users u ON u.id = o.user_id ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumns).
			AddRow(int64(2), int64(9), "Ram", []byte(cartJSON), model.OrderStatusPending, decimal.NewFromInt(25), now).
			AddRow(int64(1), int64(9), "Ram", []byte(`[]`), model.OrderStatusShipped, decimal.Zero, now.Add(-time.Hour)))
	orders, err = repo.List(context.Background(), repository.OrderFilter{})
	if err != nil || len(orders) != 2 || orders[1].Status != model.OrderStatusShipped {
		t.Fatalf("unexpected result: %v err=%v", orders, err)
	}

	since := now.Add(-24 * time.Hour)
	ids := []int64{1, 3}
	mock.ExpectQuery("WHERE EXISTS").WithArgs(ids, since).WillReturnRows(
		pgxmockv3.NewRows(orderColumns).AddRow(int64(2), int64(9), "Ram", []byte(cartJSON), model.OrderStatusPending, decimal.NewFromInt(25), now))
	orders, err = repo.List(context.Background(), repository.OrderFilter{Restricted: true, ProductIDs: ids, Since: &since})
	if err != nil || len(orders) != 1 {
		t.Fatalf("unexpected restricted result: %v err=%v", orders, err)
	}

	mock.ExpectQuery("WHERE EXISTS").WithArgs([]int64{4}).WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background(), repository.OrderFilter{Restricted: true, ProductIDs: []int64{4}}); err == nil {
		t.Fatal("expected query error")
	}

	mock.ExpectQuery("FROM orders o LEFT JOIN users u ON u.id = o.user_id ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumns).AddRow("bad", int64(9), "Ram", []byte(cartJSON), model.OrderStatusPending, decimal.Zero, now))
	if _, err := repo.List(context.Background(), repository.OrderFilter{}); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectQuery("FROM orders o LEFT JOIN users u ON u.id = o.user_id ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(orderColumns).
			AddRow(int64(2), int64(9), "Ram", []byte(cartJSON), model.OrderStatusPending, decimal.Zero, now).
			AddRow(int64(1), int64(9), "Ram", []byte(cartJSON), model.OrderStatusPending, decimal.Zero, now).
			RowError(1, errors.New("row err")))
	if _, err := repo.List(context.Background(), repository.OrderFilter{}); err == nil || err.Error() != "row err" {
		t.Fatalf("expected row err, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &orderRepository{storage: storage}

	if _, err := repo.List(context.Background(), repository.OrderFilter{}); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	recipient := int64(9)
	event := &model.Event{
		EventID:     "4b0f7f8e-3a57-4c39-9a51-1f3d2f5c9d10",
		Type:        model.EventOrderStatusChanged,
		AggregateID: 1,
		RecipientID: &recipient,
		Payload:     []byte(`{"orderId":1}`),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET order_status=").
		WithArgs(model.OrderStatusInProcess, int64(1), model.OrderStatusConfirmed).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO events").
		WithArgs(event.EventID, model.EventOrderStatusChanged, int64(1), &recipient, []byte(`{"orderId":1}`)).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()
	if err := repo.UpdateStatus(context.Background(), 1, model.OrderStatusConfirmed, model.OrderStatusInProcess, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET order_status=").
		WithArgs(model.OrderStatusRejected, int64(2), model.OrderStatusPending).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	if err := repo.UpdateStatus(context.Background(), 2, model.OrderStatusPending, model.OrderStatusRejected, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET order_status=").
		WithArgs(model.OrderStatusRejected, int64(3), model.OrderStatusPending).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(3)).WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()
	if err := repo.UpdateStatus(context.Background(), 3, model.OrderStatusPending, model.OrderStatusRejected, event); !errors.Is(err, domainErrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET order_status=").
		WithArgs(model.OrderStatusRejected, int64(4), model.OrderStatusPending).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(4)).WillReturnRows(pgxmockv3.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()
	if err := repo.UpdateStatus(context.Background(), 4, model.OrderStatusPending, model.OrderStatusRejected, nil); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET order_status=").
		WithArgs(model.OrderStatusRejected, int64(5), model.OrderStatusPending).
		WillReturnError(errors.New("update"))
	mock.ExpectRollback()
	if err := repo.UpdateStatus(context.Background(), 5, model.OrderStatusPending, model.OrderStatusRejected, nil); err == nil {
		t.Fatal("expected update error")
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET order_status=").
		WithArgs(model.OrderStatusInProcess, int64(6), model.OrderStatusConfirmed).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO events").
		WithArgs(event.EventID, model.EventOrderStatusChanged, int64(1), &recipient, []byte(`{"orderId":1}`)).
		WillReturnError(errors.New("insert"))
	mock.ExpectRollback()
	if err := repo.UpdateStatus(context.Background(), 6, model.OrderStatusConfirmed, model.OrderStatusInProcess, event); err == nil {
		t.Fatal("expected event insert error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestStoreRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &storeRepository{storage: storage}

	columns := []string{"id", "owner_id", "store_name", "store_description", "status", "created_at"}
	now := time.Now()

	mock.ExpectQuery("FROM stores WHERE owner_id=").WithArgs(int64(7)).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(3), int64(7), "Momo Corner", "", model.StoreStatusApproved, now))
	store, err := repo.GetByOwner(context.Background(), 7)
	if err != nil || store.ID != 3 || store.Status != model.StoreStatusApproved {
		t.Fatalf("unexpected store: %+v err=%v", store, err)
	}

	mock.ExpectQuery("FROM stores WHERE owner_id=").WithArgs(int64(8)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByOwner(context.Background(), 8); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM stores WHERE id=").WithArgs(int64(3)).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(3), int64(7), "Momo Corner", "", model.StoreStatusPending, now))
	if _, err := repo.GetByID(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending := model.StoreStatusPending
	mock.ExpectQuery("FROM stores WHERE status=").WithArgs(pending).WillReturnRows(
		pgxmockv3.NewRows(columns).
			AddRow(int64(3), int64(7), "Momo Corner", "", model.StoreStatusPending, now).
			AddRow(int64(4), int64(8), "Muffin Hub", "cakes", model.StoreStatusPending, now))
	stores, err := repo.List(context.Background(), &pending)
	if err != nil || len(stores) != 2 {
		t.Fatalf("unexpected stores: %v err=%v", stores, err)
	}

	mock.ExpectQuery("FROM stores ORDER BY").WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("FROM stores ORDER BY").WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow("bad", int64(7), "Momo Corner", "", model.StoreStatusPending, now))
	if _, err := repo.List(context.Background(), nil); err == nil {
		t.Fatal("expected scan error")
	}

	owner := int64(7)
	event := &model.Event{EventID: "e1", Type: model.EventStoreApproved, AggregateID: 3, RecipientID: &owner, Payload: []byte(`{}`)}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE stores SET status=").WithArgs(model.StoreStatusApproved, int64(3)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO events").WithArgs("e1", model.EventStoreApproved, int64(3), &owner, []byte(`{}`)).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()
	if err := repo.UpdateStatus(context.Background(), 3, model.StoreStatusApproved, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE stores SET status=").WithArgs(model.StoreStatusRejected, int64(99)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	mock.ExpectRollback()
	if err := repo.UpdateStatus(context.Background(), 99, model.StoreStatusRejected, nil); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE stores SET status=").WithArgs(model.StoreStatusRejected, int64(4)).WillReturnError(errors.New("update"))
	mock.ExpectRollback()
	if err := repo.UpdateStatus(context.Background(), 4, model.StoreStatusRejected, nil); err == nil {
		t.Fatal("expected update error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestEventRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &eventRepository{storage: storage}

	columns := []string{"id", "event_id", "event_type", "aggregate_id", "recipient_id", "payload", "created_at", "attempts"}
	now := time.Now()
	recipient := int64(9)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM events WHERE sent_at IS NULL").WithArgs(10).WillReturnRows(
		pgxmockv3.NewRows(columns).
			AddRow(int64(1), "e1", model.EventOrderStatusChanged, int64(5), &recipient, []byte(`{"orderId":5}`), now, 0).
			AddRow(int64(2), "e2", model.EventStoreApproved, int64(3), nil, []byte(`{}`), now, 2))
	mock.ExpectExec("UPDATE events SET claimed_at=NOW").WithArgs([]int64{1, 2}).WillReturnResult(pgxmockv3.NewResult("UPDATE", 2))
	mock.ExpectCommit()
	events, err := repo.ClaimBatch(context.Background(), 10)
	if err != nil || len(events) != 2 {
		t.Fatalf("unexpected events: %v err=%v", events, err)
	}
	if events[0].RecipientID == nil || *events[0].RecipientID != 9 || string(events[0].Payload) != `{"orderId":5}` {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].RecipientID != nil || events[1].Attempts != 2 {
		t.Fatalf("unexpected second event: %+v", events[1])
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM events WHERE sent_at IS NULL").WithArgs(10).WillReturnRows(pgxmockv3.NewRows(columns))
	mock.ExpectCommit()
	events, err = repo.ClaimBatch(context.Background(), 10)
	if err != nil || len(events) != 0 {
		t.Fatalf("expected no events, got %v err=%v", events, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM events WHERE sent_at IS NULL").WithArgs(10).WillReturnError(errors.New("query"))
	mock.ExpectRollback()
	if _, err := repo.ClaimBatch(context.Background(), 10); err == nil {
		t.Fatal("expected query error")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM events WHERE sent_at IS NULL").WithArgs(10).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow("bad", "e1", model.EventOrderStatusChanged, int64(5), nil, []byte(`{}`), now, 0))
	mock.ExpectRollback()
	if _, err := repo.ClaimBatch(context.Background(), 10); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM events WHERE sent_at IS NULL").WithArgs(10).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(1), "e1", model.EventOrderStatusChanged, int64(5), nil, []byte(`{}`), now, 0))
	mock.ExpectExec("UPDATE events SET claimed_at=NOW").WithArgs([]int64{1}).WillReturnError(errors.New("claim"))
	mock.ExpectRollback()
	if _, err := repo.ClaimBatch(context.Background(), 10); err == nil {
		t.Fatal("expected claim error")
	}

	mock.ExpectExec("UPDATE events SET sent_at=NOW").WithArgs(int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.MarkSent(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE events SET claimed_at=NULL, attempts=attempts").WithArgs(int64(2)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.Release(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE events SET sent_at=NOW").WithArgs(int64(3)).WillReturnError(errors.New("mark"))
	if err := repo.MarkSent(context.Background(), 3); err == nil {
		t.Fatal("expected mark error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestClaimBatchRowsError(t *testing.T) {
	rows := &errorRows{err: errors.New("rows err")}
	tx := &rowsErrorTx{rows: rows}
	storage := &Storage{pool: &rowsErrorTxPool{tx: tx}}
	repo := &eventRepository{storage: storage}

	if _, err := repo.ClaimBatch(context.Background(), 1); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}
