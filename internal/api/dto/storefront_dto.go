package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ContactRequest payload from the storefront contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=40"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *ContactRequest) Validate() error {
	trim(&r.Name, &r.Email, &r.Phone, &r.Subject, &r.Message)
	return validate.Struct(r)
}

// ContactMessage converts the request for the contact service.
func (r *ContactRequest) ContactMessage() domain.ContactMessage {
	return domain.ContactMessage{Name: r.Name, Email: r.Email, Phone: r.Phone, Subject: r.Subject, Message: r.Message}
}

// BankDetailRequest payload for admin updates.
type BankDetailRequest struct {
	BankName      string `json:"bankName" validate:"required,max=200"`
	AccountName   string `json:"accountName" validate:"required,max=200"`
	AccountNumber string `json:"accountNumber" validate:"required,max=34"`
}

func (r *BankDetailRequest) Validate() error {
	trim(&r.BankName, &r.AccountName, &r.AccountNumber)
	return validate.Struct(r)
}

// BankDetailResponse shape.
type BankDetailResponse struct {
	BankName      string    `json:"bankName"`
	AccountName   string    `json:"accountName"`
	AccountNumber string    `json:"accountNumber"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewBankDetailResponse(b *domain.BankDetail) BankDetailResponse {
	return BankDetailResponse{
		BankName:      b.BankName,
		AccountName:   b.AccountName,
		AccountNumber: b.AccountNumber,
		UpdatedAt:     b.UpdatedAt,
	}
}

// PaymentInitializeRequest payload. Amount is optional and must equal the
// order total when present.
type PaymentInitializeRequest struct {
	OrderID string `json:"orderId" validate:"required,uuid"`
	Email   string `json:"email" validate:"required,email"`
	Amount  int64  `json:"amount" validate:"gte=0"`
}

func (r *PaymentInitializeRequest) Validate() error {
	trim(&r.OrderID, &r.Email)
	return validate.Struct(r)
}
