package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freelanceai/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

var ErrNotEscrow = errors.New("payment is not held in escrow")

// Service handles card payments through Stripe plus the crypto-side
// operations (wallet balances, transaction checks, contract templates).
type Service interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	ReleaseEscrow(ctx context.Context, req models.EscrowReleaseRequest) (*models.EscrowReleaseResponse, error)
	CheckCryptoPayment(ctx context.Context, req models.CryptoCheckRequest) (*models.CryptoCheckResult, error)
	WalletBalance(ctx context.Context, req models.WalletBalanceRequest) (*models.WalletBalanceResponse, error)
	ContractTemplate(req models.ContractTemplateRequest) (*models.ContractTemplateResponse, error)
}

// intentAPI is the slice of the Stripe client the service uses. The real
// implementation delegates to the package-level paymentintent functions,
// which read the global stripe.Key set at startup.
type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeIntents struct{}

func (stripeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

func (stripeIntents) Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, params)
}

func (stripeIntents) Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Update(id, params)
}

// DefaultService implements Service.
type DefaultService struct {
	intents intentAPI
	eth     *EthGateway
	logger  *zap.Logger
}

func NewService(eth *EthGateway, logger *zap.Logger) *DefaultService {
	return &DefaultService{intents: stripeIntents{}, eth: eth, logger: logger}
}

// CreatePaymentIntent prepares a Stripe payment for a project. Escrow
// payments are plain intents tagged through metadata; the hold and release
// are tracked there rather than through a separate Stripe product.
func (s *DefaultService) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	params.Context = ctx
	params.AddMetadata("projectId", req.ProjectID)
	params.AddMetadata("isEscrow", fmt.Sprintf("%t", req.IsEscrow))
	params.AddMetadata("freelancerId", req.FreelancerID)
	params.AddMetadata("clientId", req.ClientID)

	pi, err := s.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		zap.String("paymentIntentId", pi.ID),
		zap.String("projectId", req.ProjectID),
		zap.Bool("isEscrow", req.IsEscrow))

	return &models.PaymentIntentResponse{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
	}, nil
}

// ReleaseEscrow marks an escrow payment as released. The intent must have
// been created with isEscrow metadata; anything else is rejected.
func (s *DefaultService) ReleaseEscrow(ctx context.Context, req models.EscrowReleaseRequest) (*models.EscrowReleaseResponse, error) {
	getParams := &stripe.PaymentIntentParams{}
	getParams.Context = ctx
	pi, err := s.intents.Get(req.PaymentIntentID, getParams)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent %s: %w", req.PaymentIntentID, err)
	}
	if pi.Metadata["isEscrow"] != "true" {
		return nil, ErrNotEscrow
	}

	updateParams := &stripe.PaymentIntentParams{}
	updateParams.Context = ctx
	updateParams.AddMetadata("escrowReleased", "true")
	updateParams.AddMetadata("releasedAt", time.Now().UTC().Format(time.RFC3339))

	updated, err := s.intents.Update(req.PaymentIntentID, updateParams)
	if err != nil {
		return nil, fmt.Errorf("failed to release escrow for %s: %w", req.PaymentIntentID, err)
	}

	s.logger.Info("escrow released", zap.String("paymentIntentId", updated.ID))

	return &models.EscrowReleaseResponse{Success: true, PaymentIntentID: updated.ID}, nil
}

func (s *DefaultService) CheckCryptoPayment(ctx context.Context, req models.CryptoCheckRequest) (*models.CryptoCheckResult, error) {
	return s.eth.CheckTransaction(ctx, req)
}

func (s *DefaultService) WalletBalance(ctx context.Context, req models.WalletBalanceRequest) (*models.WalletBalanceResponse, error) {
	balance, err := s.eth.Balance(ctx, req.Address, req.Network)
	if err != nil {
		return nil, err
	}
	return &models.WalletBalanceResponse{Balance: balance}, nil
}

func (s *DefaultService) ContractTemplate(req models.ContractTemplateRequest) (*models.ContractTemplateResponse, error) {
	code, ok := contractTemplates[req.ContractType]
	if !ok {
		return nil, fmt.Errorf("unknown contract type %q", req.ContractType)
	}
	return &models.ContractTemplateResponse{
		ContractCode: code,
		Instructions: deployInstructions,
	}, nil
}
