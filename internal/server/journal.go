package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type journalLineRequest struct {
	GLAccountID string          `json:"gl_account_id"`
	EntryType   string          `json:"entry_type"`
	Amount      decimal.Decimal `json:"amount"`
}

type createJournalEntryRequest struct {
	EntryDate   time.Time            `json:"entry_date"`
	Reference   string               `json:"reference"`
	Description string               `json:"description"`
	Lines       []journalLineRequest `json:"lines"`
}

func (s *Server) CreateJournalEntry(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}

	var req createJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	lines := make([]ledgerdomain.LineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		accountID, err := parseSnowflake(line.GLAccountID)
		if err != nil {
			AbortWithError(c, newValidationError("lines", "invalid_id", "invalid gl account id"))
			return
		}
		lines = append(lines, ledgerdomain.LineInput{
			GLAccountID: accountID,
			EntryType:   ledgerdomain.EntryType(strings.TrimSpace(line.EntryType)),
			Amount:      line.Amount,
		})
	}

	entry, err := s.ledgerSvc.CreateJournalEntry(c.Request.Context(), ledgerdomain.CreateJournalEntryRequest{
		AssociationID: associationID,
		EntryDate:     req.EntryDate,
		Reference:     strings.TrimSpace(req.Reference),
		Description:   strings.TrimSpace(req.Description),
		Lines:         lines,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type postJournalEntryRequest struct {
	PostedBy string `json:"posted_by"`
}

func (s *Server) PostJournalEntry(c *gin.Context) {
	entryID, err := parseSnowflake(c.Param("id"))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid journal entry id"))
		return
	}

	var req postJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	postedBy := strings.TrimSpace(req.PostedBy)
	if postedBy == "" {
		AbortWithError(c, newValidationError("posted_by", "required", "posted_by is required"))
		return
	}

	if err := s.ledgerSvc.PostJournalEntry(c.Request.Context(), entryID, postedBy); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "posted"})
}

func (s *Server) ListGLAccounts(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}
	accounts, err := s.ledgerSvc.ListGLAccounts(c.Request.Context(), associationID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": accounts})
}

func parseSnowflake(raw string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(raw))
}
