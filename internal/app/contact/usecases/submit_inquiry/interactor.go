package submit_inquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/app/contact/contracts"
	"github.com/light-bringer/autocat-service/internal/app/contact/domain"
	"github.com/light-bringer/autocat-service/internal/metrics"
	"github.com/light-bringer/autocat-service/internal/pkg/clock"
	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// Request is a contact form submission.
type Request = domain.InquiryParams

// Limiter decides whether a client may submit another inquiry.
type Limiter interface {
	Allow(key string) bool
}

// Interactor handles the submit inquiry use case.
type Interactor struct {
	repo    contracts.InquiryRepository
	limiter Limiter
	clock   clock.Clock
}

// NewInteractor creates a new submit inquiry interactor.
func NewInteractor(repo contracts.InquiryRepository, limiter Limiter, clk clock.Clock) *Interactor {
	return &Interactor{
		repo:    repo,
		limiter: limiter,
		clock:   clk,
	}
}

// Execute validates the submission, applies the per-IP rate limit and
// stores the inquiry. Rejected submissions do not consume a protocol number.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Receipt, error) {
	log := logctx.From(ctx).With(zap.String("op", "contact.submit"))

	if err := req.Validate(); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	if !i.limiter.Allow(req.ClientIP) {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		log.Warn("contact rate limit exceeded", zap.String("client_ip", req.ClientIP))
		return nil, domain.ErrRateLimited
	}

	seq, err := i.repo.NextSequence(ctx)
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to reserve protocol number: %w", err)
	}

	now := i.clock.Now()
	inquiry := domain.NewInquiry(uuid.NewString(), domain.Protocol(now, seq), *req, now)

	if err := i.repo.Insert(ctx, inquiry); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to store inquiry: %w", err)
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	log.Info("contact inquiry accepted",
		zap.String("protocol", inquiry.Protocol),
		zap.String("vehicle_key", inquiry.VehicleKey),
		zap.String("subject", string(inquiry.Subject)),
	)
	// No mail transport; confirmation and sales notifications are logged.
	log.Info("confirmation email queued", zap.String("to", inquiry.Email))
	log.Info("sales team notified", zap.String("protocol", inquiry.Protocol))

	receipt := domain.NewReceipt(inquiry)
	return &receipt, nil
}
