package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/light-bringer/autocat-service/internal/app/contact/contracts"
	"github.com/light-bringer/autocat-service/internal/app/contact/domain"
)

// MemoryRepo keeps inquiries for the life of the process.
type MemoryRepo struct {
	mu        sync.Mutex
	seq       int
	inquiries []domain.Inquiry
}

var _ contracts.InquiryRepository = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) NextSequence(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *MemoryRepo) Insert(_ context.Context, in domain.Inquiry) error {
	r.mu.Lock()
	r.inquiries = append(r.inquiries, in)
	r.mu.Unlock()
	return nil
}

// All returns a copy of the stored inquiries in submission order.
func (r *MemoryRepo) All() []domain.Inquiry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.inquiries)
}
