package checkout

import (
	"context"
	"errors"
	"testing"

	"kinscreen-backend/apperrors"
	"kinscreen-backend/models"
	"kinscreen-backend/payments"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeIntents struct {
	nextID     int
	failInit   bool
	canceled   []string
	initCalls  int
	amounts    []decimal.Decimal
	onInitBody func()
}

func (f *fakeIntents) InitializeAmount(ctx context.Context, amount decimal.Decimal, currency string) (payments.IntentResult, error) {
	f.initCalls++
	f.amounts = append(f.amounts, amount)
	if f.onInitBody != nil {
		f.onInitBody()
	}
	if f.failInit {
		return payments.IntentResult{}, &apperrors.PaymentInitializationError{Attempts: 3, Last: errors.New("gateway unavailable")}
	}
	f.nextID++
	id := "pi_" + string(rune('0'+f.nextID))
	return payments.IntentResult{ID: id, ClientSecret: id + "_secret"}, nil
}

func (f *fakeIntents) Cancel(ctx context.Context, id string) error {
	f.canceled = append(f.canceled, id)
	return nil
}

func monthlyPlan() models.Plan {
	return models.Plan{Name: "Monthly", Price: "$5", Subscription: true}
}

func lifetimePlan() models.Plan {
	return models.Plan{Name: "Lifetime", Price: "$29.99"}
}

func TestSelectPlan_InitializesIntentForCard(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)

	err := o.SelectPlan(context.Background(), monthlyPlan())

	assert.NoError(t, err)
	assert.Equal(t, 1, intents.initCalls)
	assert.NotEmpty(t, o.ClientSecret())
	assert.True(t, intents.amounts[0].Equal(decimal.NewFromInt(5)))
}

func TestSelectPlan_SamePriceDoesNotReinitialize(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)

	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	assert.Equal(t, 1, intents.initCalls)
}

func TestSelectPlan_PriceChangeReinitializes(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)

	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))
	assert.NoError(t, o.SelectPlan(context.Background(), lifetimePlan()))

	assert.Equal(t, 2, intents.initCalls)
	assert.True(t, intents.amounts[1].Equal(decimal.RequireFromString("29.99")))
}

func TestSelectPlan_InvalidPrice(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)

	err := o.SelectPlan(context.Background(), models.Plan{Name: "Broken", Price: "$oops"})

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, intents.initCalls)
}

func TestSetPaymentMethod_SwitchAwayKeepsSecret(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))
	secret := o.ClientSecret()

	o.SetPaymentMethod(context.Background(), MethodPayPal)

	assert.Equal(t, 1, intents.initCalls)
	assert.Equal(t, secret, o.ClientSecret())
}

func TestSetPaymentMethod_SwitchBackToCardReinitializes(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	o.SetPaymentMethod(context.Background(), MethodPayPal)
	o.SetPaymentMethod(context.Background(), MethodCard)

	assert.Equal(t, 2, intents.initCalls)
}

func TestSetPaymentMethod_SameMethodIsIdempotent(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	o.SetPaymentMethod(context.Background(), MethodCard)

	assert.Equal(t, 1, intents.initCalls)
}

func TestApplyPromo_InvalidCode(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	err := o.ApplyPromo(context.Background(), "almostfree")

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid promo code", o.Err())
	assert.False(t, o.PromoApplied())
	assert.NotEmpty(t, o.ClientSecret())
}

func TestApplyPromo_CancelsOutstandingIntent(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	err := o.ApplyPromo(context.Background(), "FREE")

	assert.NoError(t, err)
	assert.True(t, o.PromoApplied())
	assert.Empty(t, o.ClientSecret())
	assert.Len(t, intents.canceled, 1)
	assert.Equal(t, StatePromoApplied, o.State())
}

func TestApplyPromo_BlocksLaterInitialization(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))
	assert.NoError(t, o.ApplyPromo(context.Background(), "free"))

	assert.NoError(t, o.SelectPlan(context.Background(), lifetimePlan()))
	o.SetPaymentMethod(context.Background(), MethodPayPal)
	o.SetPaymentMethod(context.Background(), MethodCard)

	assert.Equal(t, 1, intents.initCalls)
	assert.Empty(t, o.ClientSecret())
}

func TestInitPayment_StaleResponseIsDiscardedAndCanceled(t *testing.T) {
	intents := &fakeIntents{}
	o := New(intents, nil)

	// The promo lands while the initialization round trip is in flight.
	intents.onInitBody = func() {
		intents.onInitBody = nil
		assert.NoError(t, o.ApplyPromo(context.Background(), "free"))
	}

	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	assert.True(t, o.PromoApplied())
	assert.Empty(t, o.ClientSecret())
	// The stale intent was created after the promo ran, so it must be voided.
	assert.Equal(t, []string{"pi_1"}, intents.canceled)
	assert.Equal(t, StatePromoApplied, o.State())
}

func TestInitPayment_FailureSurfacesRetryMessage(t *testing.T) {
	intents := &fakeIntents{failInit: true}
	o := New(intents, nil)

	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))

	assert.Equal(t, "Failed to initialize payment. Please try again.", o.Err())
	assert.Empty(t, o.ClientSecret())
	assert.Equal(t, StateCollectingInfo, o.State())
}

func TestCanSubmit(t *testing.T) {
	o := New(&fakeIntents{}, nil)
	assert.False(t, o.CanSubmit())

	o.SetCustomer("Marie Curie", "marie@example.com")
	assert.True(t, o.CanSubmit())

	o.SetGift(true, "", "", "")
	assert.False(t, o.CanSubmit())

	o.SetGift(true, "pierre@example.com", "", "")
	assert.True(t, o.CanSubmit())
}

func TestCompleteOrder_RequiresPromo(t *testing.T) {
	o := New(&fakeIntents{}, nil)
	o.SetCustomer("Marie Curie", "marie@example.com")

	_, err := o.CompleteOrder(context.Background())

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCompleteOrder_RequiresCustomerInfo(t *testing.T) {
	o := New(&fakeIntents{}, nil)
	assert.NoError(t, o.ApplyPromo(context.Background(), "free"))

	_, err := o.CompleteOrder(context.Background())

	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCompleteOrder_FreeCheckout(t *testing.T) {
	mail := &fakeMailer{}
	o := New(&fakeIntents{}, NewNotifier(mail))
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))
	o.SetCustomer("Marie Curie", "marie@example.com")
	assert.NoError(t, o.ApplyPromo(context.Background(), "free"))

	conf, err := o.CompleteOrder(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Monthly", conf.PlanName)
	assert.False(t, conf.Gift)
	assert.Equal(t, StateSucceeded, o.State())
	assert.Equal(t, []string{"marie@example.com"}, mail.sentTo)
}

func TestHandlePaymentSuccess_GiftDefaultsSenderName(t *testing.T) {
	mail := &fakeMailer{}
	o := New(&fakeIntents{}, NewNotifier(mail))
	assert.NoError(t, o.SelectPlan(context.Background(), lifetimePlan()))
	o.SetCustomer("Marie Curie", "marie@example.com")
	o.SetGift(true, "pierre@example.com", "", "Enjoy the photos")

	conf := o.HandlePaymentSuccess()

	assert.True(t, conf.Gift)
	assert.Equal(t, "pierre@example.com", conf.GiftEmail)
	assert.Equal(t, "Marie Curie", conf.SenderName)
	assert.Equal(t, "Enjoy the photos", conf.GiftMessage)
	assert.Equal(t, []string{"pierre@example.com"}, mail.sentTo)
	assert.Equal(t, StateSucceeded, o.State())
}

func TestHandlePaymentSuccess_NotifierFailureDoesNotFailOrder(t *testing.T) {
	mail := &fakeMailer{err: errors.New("smtp unreachable")}
	o := New(&fakeIntents{}, NewNotifier(mail))
	assert.NoError(t, o.SelectPlan(context.Background(), monthlyPlan()))
	o.SetCustomer("Marie Curie", "marie@example.com")

	conf := o.HandlePaymentSuccess()

	assert.Equal(t, "Monthly", conf.PlanName)
	assert.Equal(t, StateSucceeded, o.State())
	assert.Equal(t, "Failed to send confirmation email", o.Err())
}

func TestFail(t *testing.T) {
	o := New(&fakeIntents{}, nil)

	o.Fail("Your card was declined.")

	assert.Equal(t, StateFailed, o.State())
	assert.Equal(t, "Your card was declined.", o.Err())
}
