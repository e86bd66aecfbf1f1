package server

import (
	"errors"
	"net/http"

	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	reportdomain "github.com/covenantworks/covenant/internal/report/domain"
	vendordomain "github.com/covenantworks/covenant/internal/vendors/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// APIError is the wire shape for every non-2xx response.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	ErrNotFound = &APIError{
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Message: "resource not found",
	}
	ErrServiceUnavailable = &APIError{
		Status:  http.StatusServiceUnavailable,
		Code:    "service_unavailable",
		Message: "service temporarily unavailable",
	}
)

func newValidationError(field, code, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: message,
		Field:   field,
	}
}

func invalidRequestError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "request body could not be parsed",
	}
}

// validationErrors maps domain sentinel errors to 400 responses. The
// error text doubles as the wire code.
var validationErrors = []error{
	reportdomain.ErrMissingAssociation,
	reportdomain.ErrMissingReportType,
	reportdomain.ErrInvalidAssociation,
	reportdomain.ErrEmptyPayload,
	ledgerdomain.ErrInvalidAssociation,
	ledgerdomain.ErrInvalidEntryDate,
	ledgerdomain.ErrInvalidEntryLines,
	ledgerdomain.ErrInvalidLineAmount,
	ledgerdomain.ErrInvalidLineType,
	ledgerdomain.ErrInvalidAccount,
	ledgerdomain.ErrUnbalancedEntry,
	ledgerdomain.ErrAlreadyPosted,
	bankingdomain.ErrInvalidAssociation,
	bankingdomain.ErrInvalidAccount,
	bankingdomain.ErrInvalidAmount,
	bankingdomain.ErrInvalidTransactionType,
	bankingdomain.ErrInvalidTransactionDate,
	vendordomain.ErrMissingAssociation,
}

var notFoundErrors = []error{
	ledgerdomain.ErrJournalNotFound,
	bankingdomain.ErrAccountNotFound,
	gorm.ErrRecordNotFound,
}

// AbortWithError translates an error into the APIError wire shape and
// aborts the request. Unrecognized errors become opaque 500s.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": &APIError{
				Code:    "not_found",
				Message: err.Error(),
			}})
			return
		}
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": &APIError{
				Code:    err.Error(),
				Message: err.Error(),
			}})
			return
		}
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &APIError{
		Code:    "internal_error",
		Message: "internal server error",
	}})
}
