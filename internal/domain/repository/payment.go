package repository

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// PaymentRepository provides access to the payment ledger.
type PaymentRepository interface {
	List(ctx context.Context) ([]model.Payment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.Payment, error)
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}
