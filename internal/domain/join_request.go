package domain

import (
	"errors"
	"fmt"
	"time"
)

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "pending"
	JoinRequestStatusApproved JoinRequestStatus = "approved"
	JoinRequestStatusRejected JoinRequestStatus = "rejected"
)

// ChangeKind identifies which document trigger produced a change envelope.
type ChangeKind string

const (
	ChangeKindCreated       ChangeKind = "created"
	ChangeKindStatusChanged ChangeKind = "status_changed"
)

// JoinRequestSnapshot is the join request document as captured by the trigger,
// before or after the write.
type JoinRequestSnapshot struct {
	MinistryID  string            `json:"ministryId"`
	RequesterID string            `json:"requesterId"`
	Status      JoinRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requestedAt"`
}

// ErrMalformedChange marks trigger envelopes missing required identifiers.
// Handlers treat it as a silent skip, not a hard failure.
var ErrMalformedChange = errors.New("malformed join request change")

// JoinRequestChange is the normalized envelope delivered for a document write
// on the join request collection. Kind is set by the receiving endpoint, not
// by the sender.
type JoinRequestChange struct {
	EventID   string               `json:"eventId"`
	RequestID string               `json:"requestId"`
	Kind      ChangeKind           `json:"-"`
	Before    *JoinRequestSnapshot `json:"before"`
	After     *JoinRequestSnapshot `json:"after"`
}

// Validate checks that the envelope carries everything its kind requires.
func (c *JoinRequestChange) Validate() error {
	if c.RequestID == "" {
		return fmt.Errorf("%w: missing requestId", ErrMalformedChange)
	}
	switch c.Kind {
	case ChangeKindCreated:
		if c.After == nil {
			return fmt.Errorf("%w: created event without after snapshot", ErrMalformedChange)
		}
		if c.After.MinistryID == "" {
			return fmt.Errorf("%w: missing ministryId", ErrMalformedChange)
		}
		if c.After.RequesterID == "" {
			return fmt.Errorf("%w: missing requesterId", ErrMalformedChange)
		}
	case ChangeKindStatusChanged:
		if c.Before == nil || c.After == nil {
			return fmt.Errorf("%w: status event requires before and after snapshots", ErrMalformedChange)
		}
		if c.After.RequesterID == "" {
			return fmt.Errorf("%w: missing requesterId", ErrMalformedChange)
		}
		if c.After.Status == "" {
			return fmt.Errorf("%w: missing status", ErrMalformedChange)
		}
	default:
		return fmt.Errorf("%w: unknown change kind %q", ErrMalformedChange, c.Kind)
	}
	return nil
}

// StatusUnchanged reports whether an update left the status field untouched,
// in which case no notification work happens.
func (c *JoinRequestChange) StatusUnchanged() bool {
	return c.Before != nil && c.After != nil && c.Before.Status == c.After.Status
}
