package handler

import (
	"net/http"

	"github.com/sarthakyadav7225/hms-WeCare/internal/delivery/http/middleware"
	"github.com/sarthakyadav7225/hms-WeCare/internal/usecase"
	"github.com/sarthakyadav7225/hms-WeCare/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListRecent returns the most recent audit entries. Admin scope.
func (h *AuditLogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	logs, err := h.auditLogUsecase.ListRecent(r.Context(), session)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Admin role required")
		default:
			response.InternalServerError(w, "Failed to list audit logs")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
