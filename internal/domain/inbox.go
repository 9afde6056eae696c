package domain

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventTypeJoinRequestCreated EventType = "join_request_created"
	EventTypeJoinRequestStatus  EventType = "join_request_status"
)

// EventPayload is the composed content of one logical notification. The same
// payload is written to every recipient's inbox and carried in the push data.
type EventPayload struct {
	Type          EventType
	Title         string
	Body          string
	JoinRequestID string
	MinistryID    string
	MinistryName  string
	MemberID      string
	Status        JoinRequestStatus // empty on the creation path
}

// EventID returns the deterministic inbox document ID for this payload.
// Deriving the ID from the triggering document makes platform redelivery
// re-apply identical content instead of minting duplicate rows.
func (p EventPayload) EventID() string {
	if p.Status != "" {
		return fmt.Sprintf("%s_%s_%s", p.Type, p.JoinRequestID, p.Status)
	}
	return fmt.Sprintf("%s_%s", p.Type, p.JoinRequestID)
}

// Data returns the structured metadata sent alongside the push notification
// for client-side deep linking.
func (p EventPayload) Data() map[string]string {
	data := map[string]string{
		"type":          string(p.Type),
		"joinRequestId": p.JoinRequestID,
		"ministryId":    p.MinistryID,
		"ministryName":  p.MinistryName,
	}
	if p.Status != "" {
		data["status"] = string(p.Status)
	}
	return data
}

// InboxEvent is one durable, per-recipient notification row under
// users/{recipient}/inbox. Append-only apart from the read flag.
type InboxEvent struct {
	ID            string            `firestore:"-" json:"id"`
	RecipientID   string            `firestore:"-" json:"recipient_id"`
	Type          EventType         `firestore:"type" json:"type"`
	JoinRequestID string            `firestore:"joinRequestId" json:"join_request_id"`
	MinistryID    string            `firestore:"ministryId" json:"ministry_id"`
	MinistryName  string            `firestore:"ministryName" json:"ministry_name"`
	MemberID      string            `firestore:"memberId" json:"member_id"`
	Status        JoinRequestStatus `firestore:"status,omitempty" json:"status,omitempty"`
	Title         string            `firestore:"title" json:"title"`
	Body          string            `firestore:"body" json:"body"`
	Read          bool              `firestore:"read" json:"read"`
	CreatedAt     time.Time         `firestore:"createdAt,serverTimestamp" json:"created_at"`
}

// NewInboxEvent materializes the payload as an inbox row for one recipient.
func NewInboxEvent(recipientID string, p EventPayload) InboxEvent {
	return InboxEvent{
		ID:            p.EventID(),
		RecipientID:   recipientID,
		Type:          p.Type,
		JoinRequestID: p.JoinRequestID,
		MinistryID:    p.MinistryID,
		MinistryName:  p.MinistryName,
		MemberID:      p.MemberID,
		Status:        p.Status,
		Title:         p.Title,
		Body:          p.Body,
	}
}
