package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaria-storefront/cart"
	"pizzaria-storefront/models"
	"pizzaria-storefront/pricing"
)

type fakeChannel struct {
	sent []string
	err  error
}

func (c *fakeChannel) Send(ctx context.Context, encodedMessage string) (string, error) {
	c.sent = append(c.sent, encodedMessage)
	if c.err != nil {
		return "", c.err
	}
	return "https://wa.me/5511999990000?text=" + encodedMessage, nil
}

type recordingNotifier struct {
	notifications []models.Notification
}

func (n *recordingNotifier) Notify(severity models.Severity, message string) {
	n.notifications = append(n.notifications, models.Notification{Severity: severity, Message: message})
}

func (n *recordingNotifier) last() models.Notification {
	return n.notifications[len(n.notifications)-1]
}

type fixture struct {
	cart     *cart.Aggregator
	wizard   *Wizard
	channel  *fakeChannel
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	notifier := &recordingNotifier{}
	channel := &fakeChannel{}
	agg := cart.NewAggregator(engine, notifier)
	return &fixture{
		cart:     agg,
		wizard:   NewWizard(agg, channel, notifier, "Pizzaria Teste"),
		channel:  channel,
		notifier: notifier,
	}
}

func (f *fixture) addX(times int) {
	price := decimal.RequireFromString("24.90")
	for i := 0; i < times; i++ {
		f.cart.Add(models.CartCandidate{Product: models.Product{ID: "x", Name: "X", Price: &price}}, nil)
	}
}

func TestCannotLeaveCartStepWhenEmpty(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.wizard.CanAdvance())
	_, err := f.wizard.Next(context.Background())
	assert.ErrorIs(t, err, ErrStepBlocked)
	assert.Equal(t, StepCart, f.wizard.Step())
	assert.Equal(t, models.SeverityError, f.notifier.last().Severity)

	f.addX(1)
	assert.True(t, f.wizard.CanAdvance())
	_, err = f.wizard.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepDelivery, f.wizard.Step())
}

func TestDeliveryStepRequiresNameAndPhone(t *testing.T) {
	f := newFixture(t)
	f.addX(1)
	_, err := f.wizard.Next(context.Background())
	require.NoError(t, err)

	assert.False(t, f.wizard.CanAdvance())

	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "Ana"}))
	_, err = f.wizard.Next(context.Background())
	assert.ErrorIs(t, err, ErrStepBlocked)

	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "Ana", Phone: "11999990000"}))
	assert.True(t, f.wizard.CanAdvance())

	require.NoError(t, f.wizard.SetDeliveryOption(models.DeliveryDelivery))
	assert.False(t, f.wizard.CanAdvance())
	_, err = f.wizard.Next(context.Background())
	assert.ErrorIs(t, err, ErrStepBlocked)
	assert.Equal(t, "Informe o endereço de entrega", f.notifier.last().Message)

	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "Ana", Phone: "11999990000", Address: "Rua A, 123"}))
	_, err = f.wizard.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepPayment, f.wizard.Step())
}

func TestBlankFieldsDoNotCount(t *testing.T) {
	f := newFixture(t)
	f.addX(1)
	_, err := f.wizard.Next(context.Background())
	require.NoError(t, err)

	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "   ", Phone: "11"}))
	assert.False(t, f.wizard.CanAdvance())
}

func TestPrevAndGoTo(t *testing.T) {
	f := newFixture(t)
	f.addX(1)
	ctx := context.Background()

	f.wizard.Prev()
	assert.Equal(t, StepCart, f.wizard.Step())

	_, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "Ana", Phone: "11"}))
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepPayment, f.wizard.Step())

	f.wizard.Prev()
	assert.Equal(t, StepDelivery, f.wizard.Step())

	moved, err := f.wizard.GoTo(StepPayment)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, StepDelivery, f.wizard.Step())

	moved, err = f.wizard.GoTo(StepDelivery)
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = f.wizard.GoTo(StepCart)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, StepCart, f.wizard.Step())

	_, err = f.wizard.GoTo(Step(7))
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestSubmitFromPaymentStep(t *testing.T) {
	f := newFixture(t)
	f.addX(2)
	ctx := context.Background()
	f.cart.SetOpen(true)

	_, err := f.wizard.Submit(ctx)
	assert.ErrorIs(t, err, ErrNotAtPayment)

	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.wizard.SetDeliveryOption(models.DeliveryDelivery))
	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{
		Name:          "Ana",
		Phone:         "11999990000",
		Address:       "Rua A, 123",
		PaymentMethod: models.PaymentMoney,
		Change:        "R$ 100,00",
	}))
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)

	submission, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	require.NotNil(t, submission)

	require.Len(t, f.channel.sent, 1)
	decoded, err := url.QueryUnescape(f.channel.sent[0])
	require.NoError(t, err)
	assert.Equal(t, submission.Message, decoded)
	assert.NotContains(t, f.channel.sent[0], "+")
	assert.Contains(t, submission.Message, "*Total: R$ 51,80*")
	assert.Contains(t, submission.Message, "Troco para: R$ 100,00")
	assert.True(t, strings.HasPrefix(submission.RedirectURL, "https://wa.me/"))

	assert.True(t, f.cart.IsEmpty())
	assert.False(t, f.cart.IsOpen())
	assert.Equal(t, StepCart, f.wizard.Step())
	assert.Equal(t, models.DeliveryPickup, f.wizard.DeliveryOption())
}

func TestSubmitClearsCartEvenWhenChannelFails(t *testing.T) {
	f := newFixture(t)
	f.channel.err = errors.New("boom")
	f.addX(1)
	ctx := context.Background()

	_, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "Ana", Phone: "11"}))
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)

	submission, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Empty(t, submission.RedirectURL)
	assert.True(t, f.cart.IsEmpty())

	var sawError bool
	for _, n := range f.notifier.notifications {
		if n.Severity == models.SeverityError {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

func TestInvalidOptionsAreRejected(t *testing.T) {
	f := newFixture(t)

	assert.Error(t, f.wizard.SetDeliveryOption("drone"))
	assert.Error(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{PaymentMethod: "boleto"}))
	assert.Equal(t, models.DeliveryPickup, f.wizard.DeliveryOption())
}

func TestSubscribeReceivesState(t *testing.T) {
	f := newFixture(t)
	f.addX(1)

	var states []models.CheckoutState
	unsubscribe := f.wizard.Subscribe(func(s models.CheckoutState) {
		states = append(states, s)
	})

	_, err := f.wizard.Next(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, int(StepDelivery), states[0].ActiveStep)

	unsubscribe()
	f.wizard.Prev()
	assert.Len(t, states, 1)
}

func TestSubmitWithEmptiedCartReturnsToCartStep(t *testing.T) {
	f := newFixture(t)
	f.addX(1)
	ctx := context.Background()

	_, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "Ana", Phone: "11"}))
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, StepPayment, f.wizard.Step())

	f.cart.Clear()
	submission, err := f.wizard.Next(ctx)
	assert.ErrorIs(t, err, ErrStepBlocked)
	assert.Nil(t, submission)
	assert.Empty(t, f.channel.sent)
	assert.Equal(t, StepCart, f.wizard.Step())
	assert.Equal(t, "Ana", f.wizard.Snapshot().CustomerInfo.Name)
	assert.Equal(t, models.SeverityError, f.notifier.last().Severity)
}

func TestWhitespaceOnlyCustomerFieldsBlockDelivery(t *testing.T) {
	f := newFixture(t)
	f.addX(1)
	ctx := context.Background()

	_, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.wizard.UpdateCustomerInfo(models.CustomerInfo{Name: "   ", Phone: "11"}))
	_, err = f.wizard.Next(ctx)
	assert.ErrorIs(t, err, ErrStepBlocked)
	assert.Equal(t, StepDelivery, f.wizard.Step())
}
