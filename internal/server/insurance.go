package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListVendors(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}
	vendors, err := s.vendorSvc.ListVendors(c.Request.Context(), associationID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vendors})
}

// VendorInsurance serves the insurance compliance view: active vendors
// bucketed by expiration urgency, most urgent first.
func (s *Server) VendorInsurance(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}
	classified, err := s.vendorSvc.InsuranceStatus(c.Request.Context(), associationID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": classified})
}
