package handlers

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"confeccao_os/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapDomainError translates use case and entity sentinels into the HTTP
// error envelope. Unknown errors become 500.
func mapDomainError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, entities.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, entities.ErrClientNameRequired),
		errors.Is(err, entities.ErrInvalidClientKind),
		errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrInvalidCPF),
		errors.Is(err, entities.ErrInvalidCNPJ):
		return pkg.NewDomainError("INVALID_CLIENT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidStageID),
		errors.Is(err, usecase.ErrInvalidStageProgressID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidCatalogItemID),
		errors.Is(err, usecase.ErrInvalidColorID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrStageNameRequired),
		errors.Is(err, usecase.ErrInvalidCatalogCategory),
		errors.Is(err, usecase.ErrCatalogValueRequired),
		errors.Is(err, usecase.ErrColorNameRequired),
		errors.Is(err, usecase.ErrInvalidColorHex),
		errors.Is(err, usecase.ErrInvalidOrderTotal),
		errors.Is(err, usecase.ErrInvalidQuoteValue),
		errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Production stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageProgressNotFound):
		return pkg.NewDomainErrorSimple("STAGE_PROGRESS_NOT_FOUND", "Stage progress not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrColorNotFound):
		return pkg.NewDomainErrorSimple("COLOR_NOT_FOUND", "Color not found", http.StatusNotFound)

	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Invalid status transition", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_CLOSED", "Service order is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyClosed):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CLOSED", "Quote already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveStages):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_STAGES", "No active production stages configured", http.StatusConflict)

	case errors.Is(err, usecase.ErrAttachmentTooLarge):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "Arquivo muito grande. Tamanho máximo: 10MB", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrAttachmentUpload):
		return pkg.NewDomainError("ATTACHMENT_UPLOAD_FAILED", "Erro ao fazer upload do arquivo", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
