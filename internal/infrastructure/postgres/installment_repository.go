package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

var _ repository.InstallmentRepository = (*InstallmentRepo)(nil)

const installmentColumns = `id, sale_id, number, amount, due_date, paid_date, payment_method, status, created_at`

// InstallmentRepo implementação do porto InstallmentRepository sobre PostgreSQL.
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository constrói o adaptador de persistência de parcelas.
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

// Create persiste uma parcela do cronograma.
func (r *InstallmentRepo) Create(installment *entity.Installment) error {
	query := `
		INSERT INTO installments (id, sale_id, number, amount, due_date, paid_date, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.SaleID, installment.Number, installment.Amount,
		installment.DueDate, installment.PaidDate, installment.PaymentMethod,
		installment.Status, installment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert installment: %w", err)
	}
	return nil
}

// GetByID obtém uma parcela por ID.
func (r *InstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE id = $1`
	var i entity.Installment
	var paymentMethod *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.SaleID, &i.Number, &i.Amount, &i.DueDate, &i.PaidDate,
		&paymentMethod, &i.Status, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get installment: %w", err)
	}
	if paymentMethod != nil {
		i.PaymentMethod = *paymentMethod
	}
	return &i, nil
}

// ListBySale lista as parcelas de uma venda em ordem de número.
func (r *InstallmentRepo) ListBySale(saleID string) ([]*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE sale_id = $1 ORDER BY number ASC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list installments by sale: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByClient lista as parcelas de todas as vendas de um cliente.
func (r *InstallmentRepo) ListByClient(clientID string) ([]*entity.Installment, error) {
	query := `
		SELECT i.id, i.sale_id, i.number, i.amount, i.due_date, i.paid_date, i.payment_method, i.status, i.created_at
		FROM installments i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.client_id = $1
		ORDER BY i.due_date ASC, i.number ASC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list installments by client: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListAll carrega todas as parcelas para os agregados financeiros.
func (r *InstallmentRepo) ListAll() ([]*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments ORDER BY due_date ASC, number ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all installments: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// MarkPaid grava status PAGO, data de pagamento e forma usada.
func (r *InstallmentRepo) MarkPaid(id string, paidDate time.Time, paymentMethod string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE installments SET status = $2, paid_date = $3, payment_method = $4 WHERE id = $1`,
		id, entity.InstallmentPago, paidDate, paymentMethod,
	)
	if err != nil {
		return fmt.Errorf("mark installment paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Cancel grava status CANCELADO.
func (r *InstallmentRepo) Cancel(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE installments SET status = $2 WHERE id = $1`,
		id, entity.InstallmentCancelado,
	)
	if err != nil {
		return fmt.Errorf("cancel installment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InstallmentRepo) scanAll(rows pgx.Rows) ([]*entity.Installment, error) {
	var list []*entity.Installment
	for rows.Next() {
		var i entity.Installment
		var paymentMethod *string
		if err := rows.Scan(&i.ID, &i.SaleID, &i.Number, &i.Amount, &i.DueDate,
			&i.PaidDate, &paymentMethod, &i.Status, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		if paymentMethod != nil {
			i.PaymentMethod = *paymentMethod
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
