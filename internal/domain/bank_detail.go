package domain

import "time"

// BankDetail holds the account customers pay into for bank transfers.
type BankDetail struct {
	ID            string
	BankName      string
	AccountName   string
	AccountNumber string
	UpdatedAt     time.Time
}
