package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/service"
)

// InboxHandler serves the authenticated caller's durable inbox.
type InboxHandler struct {
	inboxSvc service.InboxService
}

func NewInboxHandler(inboxSvc service.InboxService) *InboxHandler {
	return &InboxHandler{inboxSvc: inboxSvc}
}

func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeStatusError(w, status.Error(codes.Unauthenticated, "caller identity missing"))
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	events, err := h.inboxSvc.ListInbox(r.Context(), claims.UID, limit)
	if err != nil {
		writeStatusError(w, status.Errorf(codes.Internal, "failed to list inbox: %v", err))
		return
	}
	if events == nil {
		events = []domain.InboxEvent{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *InboxHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeStatusError(w, status.Error(codes.Unauthenticated, "caller identity missing"))
		return
	}

	eventID := mux.Vars(r)["eventId"]
	if eventID == "" {
		writeStatusError(w, status.Error(codes.InvalidArgument, "event id is required"))
		return
	}

	if err := h.inboxSvc.MarkRead(r.Context(), claims.UID, eventID); err != nil {
		writeStatusError(w, status.Errorf(codes.Internal, "failed to mark event read: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": map[string]bool{"read": true}})
}
