package notifications

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Broadcaster pushes an event to connected realtime clients.
type Broadcaster interface {
	Emit(event string, payload interface{})
}

// SMSGateway sends a text message.
type SMSGateway interface {
	Send(toNumber, body string) error
}

// PushGateway sends a push notification to a device token.
type PushGateway interface {
	Send(token, title, body string) error
}

type Attachment struct {
	Filename string
	Content  []byte
}

type EmailMessage struct {
	To         string
	Subject    string
	Body       string
	HTMLBody   string
	Attachment *Attachment
}

// EmailSender delivers a transactional email.
type EmailSender interface {
	Send(msg EmailMessage) error
}

// DocumentRenderer produces the order-confirmation document attached to the
// confirmation email.
type DocumentRenderer interface {
	RenderOrderConfirmation(event OrderPlacedEvent) ([]byte, error)
}

// Fanout dispatches a committed order event to every notification channel.
// Channels are independent and best-effort: a failure is logged and never
// escalates, neither to another channel nor to the caller.
type Fanout struct {
	Realtime Broadcaster
	SMS      SMSGateway
	Push     PushGateway
	Email    EmailSender
	Renderer DocumentRenderer
	Log      *logrus.Logger
}

func (f *Fanout) HandleOrderPlaced(event OrderPlacedEvent) {
	if f.Realtime != nil {
		f.Realtime.Emit(EventOrderPlaced, map[string]interface{}{
			"message":              "Order placed successfully",
			"orderId":              event.OrderID,
			"totalAmount":          event.TotalAmount,
			"expectedDeliveryDate": event.ExpectedDeliveryDate,
		})
	}

	if f.SMS != nil {
		body := fmt.Sprintf("Your order has been placed successfully. Order ID: %s, Total: %v",
			event.OrderRef, event.TotalAmount)
		if err := f.SMS.Send(event.UserMobile, body); err != nil {
			f.Log.WithError(err).WithField("order_ref", event.OrderRef).Error("Error sending SMS")
		}
	}

	if f.Email != nil {
		msg := EmailMessage{
			To:      event.UserEmail,
			Subject: "Order Placed",
			Body:    "Order Placed Successfully.",
		}
		if f.Renderer != nil {
			pdf, err := f.Renderer.RenderOrderConfirmation(event)
			if err != nil {
				f.Log.WithError(err).WithField("order_ref", event.OrderRef).
					Error("Error rendering order confirmation document")
			} else {
				msg.Attachment = &Attachment{Filename: "order.pdf", Content: pdf}
			}
		}
		if err := f.Email.Send(msg); err != nil {
			f.Log.WithError(err).WithField("order_ref", event.OrderRef).
				Error("Error sending order confirmation email")
		}
	}
}

func (f *Fanout) HandleOrderCancelled(event OrderCancelledEvent) {
	if f.Push == nil {
		return
	}
	if event.FirebaseToken == "" {
		f.Log.WithField("user_id", event.UserID).Warn("No Firebase token available for user")
		return
	}
	body := fmt.Sprintf("Your order with ID %s has been cancelled.", event.OrderRef)
	if err := f.Push.Send(event.FirebaseToken, "Order Cancelled", body); err != nil {
		f.Log.WithError(err).WithField("order_ref", event.OrderRef).
			Error("Error sending cancellation push notification")
	}
}
