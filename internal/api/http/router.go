package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/security"
	"ministryhub-backend/internal/service"
)

// NewRouter wires all HTTP endpoints: normalized document-trigger endpoints,
// the callable admin endpoint, and the authenticated inbox API.
func NewRouter(
	notifier service.JoinRequestNotifier,
	adminSvc service.AdminService,
	inboxSvc service.InboxService,
	verifier security.TokenVerifier,
) *mux.Router {
	router := mux.NewRouter()

	triggers := NewTriggerHandler(notifier)
	router.HandleFunc("/v1/triggers/join-requests/created", triggers.Created).Methods(http.MethodPost)
	router.HandleFunc("/v1/triggers/join-requests/updated", triggers.Updated).Methods(http.MethodPost)

	authed := router.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(verifier))

	callable := NewCallableHandler(adminSvc)
	authed.HandleFunc("/v1/admin/grant-admin-role", callable.GrantAdminRole).Methods(http.MethodPost)

	inbox := NewInboxHandler(inboxSvc)
	authed.HandleFunc("/v1/inbox", inbox.List).Methods(http.MethodGet)
	authed.HandleFunc("/v1/inbox/{eventId}/read", inbox.MarkRead).Methods(http.MethodPost)

	return router
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// callableError is the error envelope of the callable protocol: the grpc code
// name in SCREAMING_SNAKE_CASE plus a human-readable message.
type callableError struct {
	Error struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeStatusError maps a grpc status error onto the callable wire format.
func writeStatusError(w http.ResponseWriter, err error) {
	st, ok := status.FromError(err)
	if !ok {
		st = status.New(codes.Internal, err.Error())
	}

	var httpStatus int
	switch st.Code() {
	case codes.Unauthenticated:
		httpStatus = http.StatusUnauthorized
	case codes.PermissionDenied:
		httpStatus = http.StatusForbidden
	case codes.FailedPrecondition, codes.InvalidArgument:
		httpStatus = http.StatusBadRequest
	case codes.NotFound:
		httpStatus = http.StatusNotFound
	default:
		httpStatus = http.StatusInternalServerError
	}

	var body callableError
	body.Error.Status = statusLabel(st.Code())
	body.Error.Message = st.Message()
	writeJSON(w, httpStatus, body)
}

func statusLabel(c codes.Code) string {
	switch c {
	case codes.Unauthenticated:
		return "UNAUTHENTICATED"
	case codes.PermissionDenied:
		return "PERMISSION_DENIED"
	case codes.FailedPrecondition:
		return "FAILED_PRECONDITION"
	case codes.InvalidArgument:
		return "INVALID_ARGUMENT"
	case codes.NotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL"
	}
}
