package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/sda-clothing/storefront/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const pendingFields = "order_id, user_id, total_amount, shipping_phone, shipping_address, notes"

// IRepository persists placed orders that still await a payment proof, so
// the payment step stays addressable after the session walked away.
type IRepository interface {
	SavePending(ctx context.Context, p model.PendingPayment) error
	CompletePending(ctx context.Context, orderID int) error
	GetPending(ctx context.Context, userID, orderID int) (model.PendingPayment, error)
	ListPending(ctx context.Context, userID int) ([]model.PendingPayment, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(databaseURI string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(embedMigrations)
	if err = goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err = goose.Up(db, "migrations"); err != nil {
		return nil, err
	}

	return &Repository{Conn: db, Logger: logger}, nil
}

func (r Repository) SavePending(ctx context.Context, p model.PendingPayment) error {
	// Re-placing the same order id (resume after a crash) must not error.
	_, err := r.Conn.ExecContext(ctx,
		"INSERT INTO pending_payments ("+pendingFields+") VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (order_id) DO NOTHING",
		p.OrderID, p.UserID, p.TotalAmount, p.ShippingPhone, p.ShippingAddress, p.Notes)
	return err
}

func (r Repository) CompletePending(ctx context.Context, orderID int) error {
	_, err := r.Conn.ExecContext(ctx,
		"UPDATE pending_payments SET completed_at = now() WHERE order_id = $1", orderID)
	return err
}

func (r Repository) GetPending(ctx context.Context, userID, orderID int) (model.PendingPayment, error) {
	var p model.PendingPayment
	row := r.Conn.QueryRowContext(ctx,
		"SELECT "+pendingFields+" FROM pending_payments WHERE order_id = $1 AND user_id = $2 AND completed_at IS NULL",
		orderID, userID)

	err := row.Scan(&p.OrderID, &p.UserID, &p.TotalAmount, &p.ShippingPhone, &p.ShippingAddress, &p.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PendingPayment{}, ErrNoRecords
	}
	if err != nil {
		return model.PendingPayment{}, err
	}
	return p, nil
}

func (r Repository) ListPending(ctx context.Context, userID int) ([]model.PendingPayment, error) {
	rows, err := r.Conn.QueryContext(ctx,
		"SELECT "+pendingFields+" FROM pending_payments WHERE user_id = $1 AND completed_at IS NULL ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []model.PendingPayment
	for rows.Next() {
		var p model.PendingPayment
		if err = rows.Scan(&p.OrderID, &p.UserID, &p.TotalAmount, &p.ShippingPhone, &p.ShippingAddress, &p.Notes); err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}

	return pending, rows.Err()
}
