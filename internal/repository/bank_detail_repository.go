package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// BankDetailRepository stores the single set of transfer details shown at checkout.
type BankDetailRepository interface {
	GetLatest(ctx context.Context) (*domain.BankDetail, error)
	Save(ctx context.Context, detail *domain.BankDetail) error
}

type bankDetailRepository struct {
	pool *pgxpool.Pool
}

// NewBankDetailRepository constructs repository.
func NewBankDetailRepository(pool *pgxpool.Pool) BankDetailRepository {
	return &bankDetailRepository{pool: pool}
}

func (r *bankDetailRepository) GetLatest(ctx context.Context) (*domain.BankDetail, error) {
	const query = `
        SELECT id, bank_name, account_name, account_number, updated_at
        FROM bank_details ORDER BY updated_at DESC LIMIT 1`
	var detail domain.BankDetail
	if err := r.pool.QueryRow(ctx, query).Scan(
		&detail.ID,
		&detail.BankName,
		&detail.AccountName,
		&detail.AccountNumber,
		&detail.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Save overwrites the most recent row, inserting one when the table is empty.
func (r *bankDetailRepository) Save(ctx context.Context, detail *domain.BankDetail) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const update = `
            UPDATE bank_details SET bank_name=$1, account_name=$2, account_number=$3, updated_at=NOW()
            WHERE id = (SELECT id FROM bank_details ORDER BY updated_at DESC LIMIT 1)
            RETURNING id, updated_at`
		err := tx.QueryRow(ctx, update,
			detail.BankName,
			detail.AccountName,
			detail.AccountNumber,
		).Scan(&detail.ID, &detail.UpdatedAt)
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		const insert = `
            INSERT INTO bank_details (bank_name, account_name, account_number)
            VALUES ($1,$2,$3)
            RETURNING id, updated_at`
		return tx.QueryRow(ctx, insert,
			detail.BankName,
			detail.AccountName,
			detail.AccountNumber,
		).Scan(&detail.ID, &detail.UpdatedAt)
	})
}
