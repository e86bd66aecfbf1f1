package server

import (
	"net/http"
	"strings"

	reportdomain "github.com/covenantworks/covenant/internal/report/domain"
	"github.com/gin-gonic/gin"
)

// GetReportData serves one report payload. The category and range
// query parameters select the variant; refresh=true regenerates the
// stored row.
func (s *Server) GetReportData(c *gin.Context) {
	req := reportdomain.ReportRequest{
		AssociationID:  strings.TrimSpace(c.Param("id")),
		ReportType:     strings.TrimSpace(c.Param("type")),
		ReportCategory: strings.TrimSpace(c.Query("category")),
		TimeRange:      strings.TrimSpace(c.Query("range")),
		ForceRefresh:   c.Query("refresh") == "true",
	}

	payload, err := s.reportSvc.GetReportData(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

func (s *Server) SeedReports(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}
	if err := s.reportSvc.SeedInitialReportData(c.Request.Context(), associationID); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
