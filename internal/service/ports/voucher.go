package ports

import (
	"context"

	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
)

type VoucherRepo interface {
	CreateVoucher(ctx context.Context, v *domain.Voucher) error
	GetVoucher(ctx context.Context, id string) (*domain.Voucher, error)
	CountVoucherUsage(ctx context.Context, voucherID, userID string) (int, error)
}
