package booking

import (
	"context"
	"fmt"
	"math"

	bookingRepo "amora/database/repository/booking"
	"amora/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CheckoutService creates Stripe payment intents for stored bookings. It is
// a thin wrapper over the checkout collaborator; capture, webhooks and
// refunds are out of scope.
type CheckoutService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

func NewCheckoutService(repo bookingRepo.BookingRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{Repo: repo, Logger: logger}
}

// CreatePaymentIntent returns a client secret for paying a booking's total.
// A fully discounted booking has nothing to charge and is marked paid
// directly.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, bookingID string) (string, error) {
	record, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("booking %s not found: %w", bookingID, err)
	}

	amount := int64(math.Round(record.TotalPrice * 100))
	if amount <= 0 {
		if err := s.Repo.UpdatePaymentStatus(ctx, record.ID, models.PaymentStatusPaid); err != nil {
			return "", err
		}
		s.Logger.Info("booking fully covered by discount", zap.String("bookingID", record.ID))
		return "", nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"bookingId":   record.ID,
			"companionId": record.CompanionID,
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent for booking %s: %w", record.ID, err)
	}

	s.Logger.Info("payment intent created",
		zap.String("bookingID", record.ID),
		zap.Int64("amount", amount),
	)
	return pi.ClientSecret, nil
}
