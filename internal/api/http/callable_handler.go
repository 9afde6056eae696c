package http

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/service"
)

// CallableHandler exposes the administrative role-grant endpoint using the
// callable protocol: bearer ID token, JSON body, labeled error statuses.
type CallableHandler struct {
	adminSvc service.AdminService
}

func NewCallableHandler(adminSvc service.AdminService) *CallableHandler {
	return &CallableHandler{adminSvc: adminSvc}
}

func (h *CallableHandler) GrantAdminRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeStatusError(w, status.Error(codes.Unauthenticated, "caller identity missing"))
		return
	}

	if err := h.adminSvc.GrantAdminRole(r.Context(), claims.UID, claims.Email); err != nil {
		writeStatusError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result": map[string]any{"granted": true, "uid": claims.UID},
	})
}
