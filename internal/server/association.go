package server

import (
	"net/http"
	"strings"

	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListAssociations(c *gin.Context) {
	var associations []associationdomain.Association
	err := s.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&associations).Error
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": associations})
}

func (s *Server) GetFinancialSummary(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}
	summary := s.financeSvc.GetFinancialSummary(c.Request.Context(), associationID)
	c.JSON(http.StatusOK, summary)
}
