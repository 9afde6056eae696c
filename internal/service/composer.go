package service

import (
	"fmt"

	"ministryhub-backend/internal/domain"
)

// Compose builds the notification payload for a trigger. Pure function: title
// and body come from a small decision table, and the metadata carries the
// identifiers clients need for deep linking.
func Compose(kind domain.ChangeKind, ministryName, ministryID, requestID, memberID string, status domain.JoinRequestStatus) domain.EventPayload {
	subject := ministryName
	if subject == "" {
		// Fall back to the raw ministry ID when the name is unresolved.
		subject = ministryID
	}

	payload := domain.EventPayload{
		JoinRequestID: requestID,
		MinistryID:    ministryID,
		MinistryName:  ministryName,
		MemberID:      memberID,
	}

	if kind == domain.ChangeKindCreated {
		payload.Type = domain.EventTypeJoinRequestCreated
		payload.Title = "New join request"
		payload.Body = fmt.Sprintf("A new request to join %s is awaiting review", subject)
		return payload
	}

	payload.Type = domain.EventTypeJoinRequestStatus
	payload.Status = status
	switch status {
	case domain.JoinRequestStatusApproved:
		payload.Title = "Join request approved"
		payload.Body = fmt.Sprintf("Your request to join %s was approved", subject)
	case domain.JoinRequestStatusRejected:
		payload.Title = "Join request rejected"
		payload.Body = fmt.Sprintf("Your request to join %s was rejected", subject)
	default:
		// Open-ended fallback so future status values need no code change.
		payload.Title = fmt.Sprintf("Join request %s", status)
		payload.Body = fmt.Sprintf("Your request to join %s was %s", subject, status)
	}
	return payload
}
