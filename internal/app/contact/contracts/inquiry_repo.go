package contracts

import (
	"context"

	"github.com/light-bringer/autocat-service/internal/app/contact/domain"
)

// InquiryRepository stores contact inquiries.
type InquiryRepository interface {
	// NextSequence reserves the next protocol sequence number, starting at 1.
	NextSequence(ctx context.Context) (int, error)
	Insert(ctx context.Context, in domain.Inquiry) error
}
