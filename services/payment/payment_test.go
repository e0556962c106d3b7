package payment

import (
	"context"
	"errors"
	"testing"

	"freelanceai/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeIntents stores intents in memory and mimics Stripe's metadata merge
// on update.
type fakeIntents struct {
	intents map[string]*stripe.PaymentIntent
	nextID  int
	err     error
}

func newFakeIntents() *fakeIntents {
	return &fakeIntents{intents: make(map[string]*stripe.PaymentIntent)}
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	pi := &stripe.PaymentIntent{
		ID:           stripeIntentID(f.nextID),
		ClientSecret: "secret",
		Amount:       *params.Amount,
		Metadata:     copyMetadata(params.Metadata),
	}
	f.intents[pi.ID] = pi
	return pi, nil
}

func (f *fakeIntents) Get(id string, _ *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	pi, ok := f.intents[id]
	if !ok {
		return nil, errors.New("no such payment_intent")
	}
	return pi, nil
}

func (f *fakeIntents) Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	pi, ok := f.intents[id]
	if !ok {
		return nil, errors.New("no such payment_intent")
	}
	for k, v := range params.Metadata {
		pi.Metadata[k] = v
	}
	return pi, nil
}

func stripeIntentID(n int) string {
	return "pi_" + string(rune('0'+n))
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func newPaymentService(intents intentAPI) *DefaultService {
	return &DefaultService{
		intents: intents,
		eth:     NewEthGateway("", zap.NewNop()),
		logger:  zap.NewNop(),
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	fake := newFakeIntents()
	svc := newPaymentService(fake)

	res, err := svc.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{
		Amount:       15000,
		Currency:     "eur",
		ProjectID:    "proj-1",
		IsEscrow:     true,
		FreelancerID: "f-2",
		ClientID:     "c-9",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", res.ClientSecret)
	assert.NotEmpty(t, res.PaymentIntentID)

	stored := fake.intents[res.PaymentIntentID]
	require.NotNil(t, stored)
	assert.Equal(t, int64(15000), stored.Amount)
	assert.Equal(t, "proj-1", stored.Metadata["projectId"])
	assert.Equal(t, "true", stored.Metadata["isEscrow"])
	assert.Equal(t, "f-2", stored.Metadata["freelancerId"])
	assert.Equal(t, "c-9", stored.Metadata["clientId"])
}

func TestReleaseEscrow(t *testing.T) {
	fake := newFakeIntents()
	svc := newPaymentService(fake)
	ctx := context.Background()

	created, err := svc.CreatePaymentIntent(ctx, models.PaymentIntentRequest{
		Amount: 500, Currency: "eur", ProjectID: "proj-1", IsEscrow: true,
	})
	require.NoError(t, err)

	res, err := svc.ReleaseEscrow(ctx, models.EscrowReleaseRequest{PaymentIntentID: created.PaymentIntentID})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, created.PaymentIntentID, res.PaymentIntentID)

	stored := fake.intents[created.PaymentIntentID]
	assert.Equal(t, "true", stored.Metadata["escrowReleased"])
	assert.NotEmpty(t, stored.Metadata["releasedAt"])
	// Original creation metadata survives the release.
	assert.Equal(t, "proj-1", stored.Metadata["projectId"])
}

func TestReleaseEscrowRejectsDirectPayments(t *testing.T) {
	fake := newFakeIntents()
	svc := newPaymentService(fake)
	ctx := context.Background()

	created, err := svc.CreatePaymentIntent(ctx, models.PaymentIntentRequest{
		Amount: 500, Currency: "eur", ProjectID: "proj-1", IsEscrow: false,
	})
	require.NoError(t, err)

	_, err = svc.ReleaseEscrow(ctx, models.EscrowReleaseRequest{PaymentIntentID: created.PaymentIntentID})
	assert.ErrorIs(t, err, ErrNotEscrow)
}

func TestReleaseEscrowUnknownIntent(t *testing.T) {
	svc := newPaymentService(newFakeIntents())

	_, err := svc.ReleaseEscrow(context.Background(), models.EscrowReleaseRequest{PaymentIntentID: "pi_missing"})
	assert.ErrorContains(t, err, "failed to fetch payment intent")
}

func TestCreatePaymentIntentProcessorError(t *testing.T) {
	fake := newFakeIntents()
	fake.err = errors.New("rate limited")
	svc := newPaymentService(fake)

	_, err := svc.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{
		Amount: 500, Currency: "eur", ProjectID: "proj-1",
	})
	assert.ErrorContains(t, err, "failed to create payment intent")
}

func TestContractTemplate(t *testing.T) {
	svc := newPaymentService(newFakeIntents())

	for _, contractType := range []string{"token", "nft"} {
		res, err := svc.ContractTemplate(models.ContractTemplateRequest{ContractType: contractType})
		require.NoError(t, err)
		assert.Contains(t, res.ContractCode, "pragma solidity")
		assert.NotEmpty(t, res.Instructions)
	}

	_, err := svc.ContractTemplate(models.ContractTemplateRequest{ContractType: "dao"})
	assert.ErrorContains(t, err, "unknown contract type")
}
