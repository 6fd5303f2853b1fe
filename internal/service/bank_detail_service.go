package service

import (
	"context"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// BankDetailService exposes the transfer account shown to customers.
type BankDetailService struct {
	details repository.BankDetailRepository
}

// NewBankDetailService constructs the service.
func NewBankDetailService(details repository.BankDetailRepository) *BankDetailService {
	return &BankDetailService{details: details}
}

// Get returns the current bank details.
func (s *BankDetailService) Get(ctx context.Context) (*domain.BankDetail, error) {
	detail, err := s.details.GetLatest(ctx)
	if err != nil {
		return nil, apperrors.StoreError("bank details", err)
	}
	return detail, nil
}

// Save replaces the current bank details.
func (s *BankDetailService) Save(ctx context.Context, bankName, accountName, accountNumber string) (*domain.BankDetail, error) {
	detail := &domain.BankDetail{
		BankName:      bankName,
		AccountName:   accountName,
		AccountNumber: accountNumber,
	}
	if err := s.details.Save(ctx, detail); err != nil {
		return nil, apperrors.StoreError("bank details", err)
	}
	return detail, nil
}
