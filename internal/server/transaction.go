package server

import (
	"net/http"
	"strings"
	"time"

	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	"github.com/covenantworks/covenant/internal/filtering"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListTransactions serves the transaction register. Search, type
// filter and sorting are applied in-process on the fetched rows, the
// same semantics the dashboard uses client-side.
func (s *Server) ListTransactions(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}

	transactions, err := s.bankingSvc.ListTransactions(c.Request.Context(), associationID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	search := c.Query("search")
	typeFilter := c.Query("type")
	transactions = filtering.Apply(transactions, filtering.And(
		func(txn bankingdomain.BankTransaction) bool {
			return filtering.MatchesSearch(search, txn.Description)
		},
		func(txn bankingdomain.BankTransaction) bool {
			return filtering.CategoryMatch(typeFilter, string(txn.TransactionType))
		},
	))

	if sortField := strings.TrimSpace(c.Query("sort")); sortField != "" {
		state := filtering.SortState{
			Field:      sortField,
			Descending: c.Query("desc") == "true",
		}
		filtering.SortBy(transactions, state, transactionComparator(sortField))
	}

	c.JSON(http.StatusOK, gin.H{"data": transactions})
}

func transactionComparator(field string) func(a, b bankingdomain.BankTransaction) int {
	switch field {
	case "date":
		return func(a, b bankingdomain.BankTransaction) int {
			switch {
			case a.TransactionDate.Before(b.TransactionDate):
				return -1
			case a.TransactionDate.After(b.TransactionDate):
				return 1
			default:
				return 0
			}
		}
	case "amount":
		return func(a, b bankingdomain.BankTransaction) int {
			return a.Amount.Cmp(b.Amount)
		}
	case "description":
		return func(a, b bankingdomain.BankTransaction) int {
			return filtering.CompareStrings(a.Description, b.Description)
		}
	default:
		return nil
	}
}

type createTransactionRequest struct {
	BankAccountID   string          `json:"bank_account_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	Description     string          `json:"description"`
	StatementID     *string         `json:"statement_id"`
}

func (s *Server) CreateTransaction(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	accountID, err := parseSnowflake(req.BankAccountID)
	if err != nil {
		AbortWithError(c, newValidationError("bank_account_id", "invalid_id", "invalid bank account id"))
		return
	}

	txn, err := s.bankingSvc.RecordTransaction(c.Request.Context(), bankingdomain.RecordTransactionRequest{
		AssociationID:   associationID,
		BankAccountID:   accountID,
		TransactionDate: req.TransactionDate,
		Amount:          req.Amount,
		TransactionType: bankingdomain.TransactionType(strings.TrimSpace(req.TransactionType)),
		Description:     strings.TrimSpace(req.Description),
		StatementID:     req.StatementID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

func (s *Server) ListBankAccounts(c *gin.Context) {
	associationID := strings.TrimSpace(c.Param("id"))
	if associationID == "" {
		AbortWithError(c, newValidationError("id", "missing_id", "association id is required"))
		return
	}
	accounts, err := s.bankingSvc.ListAccounts(c.Request.Context(), associationID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": accounts})
}
