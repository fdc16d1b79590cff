package notifications_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/notifications"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

type MockRecipientDirectory struct{ mock.Mock }

func (m *MockRecipientDirectory) Recipient(ctx context.Context, orderID kernel.UUID) (ports.Recipient, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.Recipient), args.Error(1)
}
func (m *MockRecipientDirectory) Invoice(ctx context.Context, orderID kernel.UUID) (ports.Invoice, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.Invoice), args.Error(1)
}
func (m *MockRecipientDirectory) BookingItem(ctx context.Context, bookingID kernel.UUID) (string, error) {
	args := m.Called(ctx, bookingID)
	return args.String(0), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func newDispatcher(t *testing.T) (*notifications.Dispatcher, *MockRecipientDirectory, *MockMailer, *bytes.Buffer) {
	t.Helper()
	directory := &MockRecipientDirectory{}
	mailer := &MockMailer{}
	logs := &bytes.Buffer{}
	d, err := notifications.NewDispatcher(directory, mailer, slog.New(slog.NewTextHandler(logs, nil)))
	require.NoError(t, err)
	return d, directory, mailer, logs
}

func codeIssued(orderID kernel.UUID, reissued bool) delivery.DeliveryCodeIssued {
	return delivery.DeliveryCodeIssued{
		BaseEvent: kernel.NewBaseEvent(delivery.EventDeliveryCodeIssued, kernel.NewUUID(), now),
		OrderID:   orderID,
		AgentID:   kernel.NewUUID(),
		Code:      "482913",
		Reissued:  reissued,
	}
}

func deliveryChanged(orderID kernel.UUID, to delivery.Status) delivery.DeliveryStatusChanged {
	return delivery.DeliveryStatusChanged{
		BaseEvent: kernel.NewBaseEvent(delivery.EventDeliveryStatusChanged, kernel.NewUUID(), now),
		OrderID:   orderID,
		AgentID:   kernel.NewUUID(),
		From:      delivery.StatusOutForDelivery,
		To:        to,
	}
}

func bookingChanged(orderID, bookingID kernel.UUID, from, to order.RentStatus) order.RentBookingStatusChanged {
	return order.RentBookingStatusChanged{
		BaseEvent: kernel.NewBaseEvent(order.EventRentBookingStatusChanged, orderID, now),
		BookingID: bookingID,
		VariantID: kernel.NewUUID(),
		From:      from,
		To:        to,
	}
}

func TestNewDispatcher_RequiresCollaborators(t *testing.T) {
	_, err := notifications.NewDispatcher(nil, &MockMailer{}, nil)
	require.Error(t, err)
	_, err = notifications.NewDispatcher(&MockRecipientDirectory{}, nil, nil)
	require.Error(t, err)
}

func TestDispatcher_FirstCodeMentionsDispatch(t *testing.T) {
	ctx := context.Background()
	d, directory, mailer, _ := newDispatcher(t)
	orderID := kernel.NewUUID()

	directory.On("Recipient", mock.Anything, orderID).
		Return(ports.Recipient{OrderID: orderID, Name: "Asha Rao", Email: "asha@example.com"}, nil)
	var sent ports.MailMessage
	mailer.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(ports.MailMessage) }).
		Return(nil)

	require.NoError(t, d.Publish(ctx, codeIssued(orderID, false)))
	d.Wait()

	mailer.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, "asha@example.com", sent.To)
	assert.Equal(t, "Order #"+orderID.String()+" Update: Out for Delivery", sent.Subject)
	assert.Contains(t, sent.Text, "Hi Asha Rao,")
	assert.Contains(t, sent.Text, "is out for delivery")
	assert.Contains(t, sent.Text, "YOUR SECURE DELIVERY CODE: 482913")
	assert.Empty(t, sent.HTML)
}

func TestDispatcher_ReissuedCodeMentionsArrival(t *testing.T) {
	d, directory, mailer, _ := newDispatcher(t)
	orderID := kernel.NewUUID()

	directory.On("Recipient", mock.Anything, orderID).
		Return(ports.Recipient{OrderID: orderID, Name: "Asha", Email: "asha@example.com"}, nil)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.MailMessage) bool {
		return msg.Subject == "Delivery code: 482913"
	})).Return(nil)

	require.NoError(t, d.Publish(context.Background(), codeIssued(orderID, true)))
	d.Wait()

	mailer.AssertExpectations(t)
	text := mailer.Calls[0].Arguments.Get(1).(ports.MailMessage).Text
	assert.Contains(t, text, "The delivery agent is at your location.")
	assert.NotContains(t, text, "out for delivery")
}

func TestDispatcher_DeliveredSendsInvoice(t *testing.T) {
	d, directory, mailer, _ := newDispatcher(t)
	orderID := kernel.NewUUID()
	invoice := ports.Invoice{
		Recipient:   ports.Recipient{OrderID: orderID, Name: "Asha", Email: "asha@example.com"},
		PlacedAt:    now.AddDate(0, 0, -2),
		DeliveredAt: now,
		Address:     "1 MG Road, Pune, MH 411001",
		Lines: []ports.InvoiceLine{
			{Product: "Silk Saree", Variant: "M, Blue", Kind: "Sale", Quantity: 1, Total: kernel.MustMoney("900.00")},
			{Product: "Sherwani <Gold>", Variant: "L, Red", Kind: "Rental", Period: "Jan 8 - Jan 10", Quantity: 1, Total: kernel.MustMoney("300.00")},
		},
		Total: kernel.MustMoney("1200.00"),
	}
	directory.On("Invoice", mock.Anything, orderID).Return(invoice, nil)
	var sent ports.MailMessage
	mailer.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(ports.MailMessage) }).
		Return(nil)

	require.NoError(t, d.Publish(context.Background(), deliveryChanged(orderID, delivery.StatusDelivered)))
	d.Wait()

	assert.Equal(t, "Receipt for Order #"+orderID.String()+" - Delivered", sent.Subject)
	assert.Contains(t, sent.Text, "Silk Saree (M, Blue)")
	assert.Contains(t, sent.Text, "Jan 8 - Jan 10")
	assert.Contains(t, sent.Text, "Total: 1200.00")
	assert.Contains(t, sent.HTML, "<td>Sale</td>")
	assert.Contains(t, sent.HTML, "<strong>1200.00</strong>")
	assert.Contains(t, sent.HTML, "Sherwani &lt;Gold&gt;")
	directory.AssertNotCalled(t, "Recipient", mock.Anything, mock.Anything)
}

func TestDispatcher_FailedDelivery(t *testing.T) {
	d, directory, mailer, _ := newDispatcher(t)
	orderID := kernel.NewUUID()

	directory.On("Recipient", mock.Anything, orderID).
		Return(ports.Recipient{OrderID: orderID, Name: "Asha", Email: "asha@example.com"}, nil)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.MailMessage) bool {
		return msg.Subject == "Order #"+orderID.String()+" Update: Failed"
	})).Return(nil)

	require.NoError(t, d.Publish(context.Background(), deliveryChanged(orderID, delivery.StatusFailed)))
	d.Wait()

	mailer.AssertExpectations(t)
}

func TestDispatcher_RentalNotices(t *testing.T) {
	tests := []struct {
		name     string
		from, to order.RentStatus
		wantText string
	}{
		{"shipped", order.RentApproved, order.RentShipped, "Your rental item 'Sherwani (L, Red)' has been shipped!"},
		{"overdue", order.RentActive, order.RentOverdue, "URGENT: Hi Asha,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, directory, mailer, _ := newDispatcher(t)
			orderID, bookingID := kernel.NewUUID(), kernel.NewUUID()

			directory.On("Recipient", mock.Anything, orderID).
				Return(ports.Recipient{OrderID: orderID, Name: "Asha", Email: "asha@example.com"}, nil)
			directory.On("BookingItem", mock.Anything, bookingID).Return("Sherwani (L, Red)", nil)
			var sent ports.MailMessage
			mailer.On("Send", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { sent = args.Get(1).(ports.MailMessage) }).
				Return(nil)

			require.NoError(t, d.Publish(context.Background(), bookingChanged(orderID, bookingID, tt.from, tt.to)))
			d.Wait()

			assert.Equal(t, "Rental Update: Sherwani (L, Red)", sent.Subject)
			assert.Contains(t, sent.Text, tt.wantText)
		})
	}
}

func TestDispatcher_IgnoresUnmailedEvents(t *testing.T) {
	d, directory, mailer, _ := newDispatcher(t)
	orderID := kernel.NewUUID()

	require.NoError(t, d.Publish(context.Background(),
		deliveryChanged(orderID, delivery.StatusOutForDelivery),
		bookingChanged(orderID, kernel.NewUUID(), order.RentShipped, order.RentActive),
		bookingChanged(orderID, kernel.NewUUID(), order.RentActive, order.RentReturned),
		order.SaleItemStatusChanged{
			BaseEvent: kernel.NewBaseEvent(order.EventSaleItemStatusChanged, orderID, now),
			From:      order.SalePending,
			To:        order.SaleShipped,
		},
	))
	d.Wait()

	directory.AssertNotCalled(t, "Recipient", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_SkipsCustomerWithoutEmail(t *testing.T) {
	d, directory, mailer, _ := newDispatcher(t)
	orderID := kernel.NewUUID()

	directory.On("Recipient", mock.Anything, orderID).
		Return(ports.Recipient{OrderID: orderID, Name: "Asha"}, nil)

	require.NoError(t, d.Publish(context.Background(),
		codeIssued(orderID, false),
		deliveryChanged(orderID, delivery.StatusFailed),
		bookingChanged(orderID, kernel.NewUUID(), order.RentApproved, order.RentShipped),
	))
	d.Wait()

	directory.AssertNotCalled(t, "BookingItem", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_FailuresAreLoggedAndDoNotStopTheBatch(t *testing.T) {
	d, directory, mailer, logs := newDispatcher(t)
	first, second := kernel.NewUUID(), kernel.NewUUID()

	directory.On("Recipient", mock.Anything, first).Return(ports.Recipient{}, errors.New("connection reset"))
	directory.On("Recipient", mock.Anything, second).
		Return(ports.Recipient{OrderID: second, Name: "Ravi", Email: "ravi@example.com"}, nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: 421 try later"))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Publish(ctx, codeIssued(first, false), codeIssued(second, false)))
	cancel()
	d.Wait()

	mailer.AssertNumberOfCalls(t, "Send", 1)
	assert.Contains(t, logs.String(), "connection reset")
	assert.Contains(t, logs.String(), "smtp: 421 try later")
	assert.Contains(t, logs.String(), delivery.EventDeliveryCodeIssued)
}

func TestDispatcher_SendRegistrationCode(t *testing.T) {
	d, _, mailer, _ := newDispatcher(t)
	expires := time.Date(2024, 1, 7, 12, 10, 0, 0, time.UTC)

	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, d.SendRegistrationCode(context.Background(), "new@example.com", "771204", expires))

	msg := mailer.Calls[0].Arguments.Get(1).(ports.MailMessage)
	assert.Equal(t, "new@example.com", msg.To)
	assert.Equal(t, "Verify your TrendWear Account", msg.Subject)
	assert.Contains(t, msg.Text, "Your verification code is: 771204")
	assert.Contains(t, msg.Text, "12:10 UTC on Jan 7")

	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("mailbox unavailable")).Once()
	require.EqualError(t, d.SendRegistrationCode(context.Background(), "new@example.com", "771204", expires), "mailbox unavailable")
}
