package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/service"
)

// TriggerHandler receives normalized document-change envelopes for the join
// request collection and runs the notification pipeline once per event.
type TriggerHandler struct {
	notifier service.JoinRequestNotifier
}

func NewTriggerHandler(notifier service.JoinRequestNotifier) *TriggerHandler {
	return &TriggerHandler{notifier: notifier}
}

type triggerResponse struct {
	Skipped bool                    `json:"skipped,omitempty"`
	Result  *service.DispatchResult `json:"result,omitempty"`
}

func (h *TriggerHandler) Created(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.ChangeKindCreated)
}

func (h *TriggerHandler) Updated(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, domain.ChangeKindStatusChanged)
}

func (h *TriggerHandler) handle(w http.ResponseWriter, r *http.Request, kind domain.ChangeKind) {
	var change domain.JoinRequestChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		// Undecodable payloads are skipped silently so the platform does not
		// redeliver something that can never be processed.
		logger.Warn("Undecodable trigger payload", "kind", kind, "error", err)
		writeJSON(w, http.StatusOK, triggerResponse{Skipped: true})
		return
	}
	change.Kind = kind

	invocationID := change.EventID
	if invocationID == "" {
		invocationID = uuid.NewString()
	}
	log := logger.WithInvocation(invocationID)

	var result *service.DispatchResult
	var err error
	switch kind {
	case domain.ChangeKindCreated:
		result, err = h.notifier.HandleCreated(r.Context(), &change)
	default:
		result, err = h.notifier.HandleStatusChanged(r.Context(), &change)
	}

	if errors.Is(err, domain.ErrMalformedChange) {
		log.Warn("Malformed trigger payload, skipping", "kind", kind, "error", err)
		writeJSON(w, http.StatusOK, triggerResponse{Skipped: true})
		return
	}
	if err != nil {
		// Fatal: surface a 5xx so the platform's redelivery policy applies.
		log.Error("Trigger invocation failed", "kind", kind, "request_id", change.RequestID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "invocation failed"})
		return
	}

	log.Info("Trigger invocation completed",
		"kind", kind,
		"request_id", change.RequestID,
		"recipients", result.Recipients,
		"inbox_events", result.InboxEvents,
		"push_sent", result.PushSent,
		"push_failed", result.PushFailed)
	writeJSON(w, http.StatusOK, triggerResponse{Result: result})
}
