package model

import "time"

// PaymentMethodManual marks payments recorded without a gateway.
const PaymentMethodManual = "manual"

// Payment is an append-only ledger entry for a course purchase.
type Payment struct {
	ID         int64
	Amount     Money
	PaidAt     time.Time
	Successful bool
	Method     string
	Comment    string
	StudentID  int64
	CourseID   int64
}
