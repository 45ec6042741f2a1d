package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Type      Type       `json:"type" db:"type"`
	Title     string     `json:"title" db:"title"`
	Body      string     `json:"body" db:"body"`
	RefID     *uuid.UUID `json:"ref_id,omitempty" db:"ref_id"`
	ReadAt    *time.Time `json:"read_at" db:"read_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type Type string

const (
	TypeApplicationReceived Type = "application_received"
	TypeApplicationAccepted Type = "application_accepted"
	TypeApplicationDeclined Type = "application_declined"
	TypeGigCancelled        Type = "gig_cancelled"
	TypeInvoiceSent         Type = "invoice_sent"
	TypeInvoicePaid         Type = "invoice_paid"
	TypeReviewReceived      Type = "review_received"
	TypeInviteReceived      Type = "invite_received"
)

// IsRead reports whether the notification was marked read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// Filter narrows notification listings.
type Filter struct {
	UnreadOnly bool `query:"unread_only"`
	Limit      int  `query:"limit"`
	Offset     int  `query:"offset"`
}
