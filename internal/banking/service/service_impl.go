package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	"github.com/covenantworks/covenant/internal/clock"
	"github.com/covenantworks/covenant/internal/events"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Outbox *events.Outbox `optional:"true"`
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	outbox *events.Outbox
}

func NewService(p ServiceParam) bankingdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("banking.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		outbox: p.Outbox,
	}
}

// RecordTransaction appends one transaction to the log and recomputes
// the account's materialized balance. A failed balance update does not
// roll back the transaction row; the reconcile worker corrects drift.
func (s *Service) RecordTransaction(ctx context.Context, req bankingdomain.RecordTransactionRequest) (*bankingdomain.BankTransaction, error) {
	associationID := strings.TrimSpace(req.AssociationID)
	if associationID == "" {
		return nil, bankingdomain.ErrInvalidAssociation
	}
	if req.BankAccountID == 0 {
		return nil, bankingdomain.ErrInvalidAccount
	}
	if req.TransactionDate.IsZero() {
		return nil, bankingdomain.ErrInvalidTransactionDate
	}
	if !req.Amount.IsPositive() {
		return nil, bankingdomain.ErrInvalidAmount
	}
	if !req.TransactionType.IsCredit() && !req.TransactionType.IsDebit() {
		return nil, bankingdomain.ErrInvalidTransactionType
	}

	var account bankingdomain.BankAccount
	if err := s.db.WithContext(ctx).First(&account, "id = ?", req.BankAccountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bankingdomain.ErrAccountNotFound
		}
		return nil, err
	}

	record := bankingdomain.BankTransaction{
		ID:              s.genID.Generate(),
		AssociationID:   associationID,
		BankAccountID:   req.BankAccountID,
		TransactionDate: req.TransactionDate.UTC(),
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Description:     strings.TrimSpace(req.Description),
		StatementID:     req.StatementID,
		CreatedAt:       s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	if _, err := s.UpdateAccountBalance(ctx, req.BankAccountID); err != nil {
		s.log.Warn("balance update failed after transaction write",
			zap.String("bank_account_id", req.BankAccountID.String()),
			zap.Error(err))
	}

	if s.outbox != nil {
		event := events.Event{
			AssociationID: associationID,
			Type:          events.EventBankTransactionRecorded,
			Payload: events.BankTransactionPayload{
				TransactionID:   record.ID.String(),
				BankAccountID:   record.BankAccountID.String(),
				TransactionType: string(record.TransactionType),
			}.ToMap(),
			DedupeKey: "bank_txn:" + record.ID.String(),
		}
		if err := s.outbox.Publish(ctx, event); err != nil {
			s.log.Warn("transaction event publish failed",
				zap.String("transaction_id", record.ID.String()),
				zap.Error(err))
		}
	}
	return &record, nil
}

// UpdateAccountBalance recomputes one account's balance wholesale from
// the transaction log: credits (deposit, transfer) minus debits
// (withdrawal, payment, fee). The read and write-back run inside a
// single database transaction; concurrent writers for the same account
// are assumed absent outside it.
func (s *Service) UpdateAccountBalance(ctx context.Context, accountID snowflake.ID) (decimal.Decimal, error) {
	if accountID == 0 {
		return decimal.Zero, bankingdomain.ErrInvalidAccount
	}

	balance := decimal.Zero
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactions []bankingdomain.BankTransaction
		if err := tx.Where("bank_account_id = ?", accountID).Find(&transactions).Error; err != nil {
			return err
		}
		for _, record := range transactions {
			switch {
			case record.TransactionType.IsCredit():
				balance = balance.Add(record.Amount)
			case record.TransactionType.IsDebit():
				balance = balance.Sub(record.Amount)
			}
		}
		result := tx.Model(&bankingdomain.BankAccount{}).
			Where("id = ?", accountID).
			Updates(map[string]any{"balance": balance, "updated_at": s.clock.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return bankingdomain.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// ListAccounts returns the active accounts for an association.
func (s *Service) ListAccounts(ctx context.Context, associationID string) ([]bankingdomain.BankAccount, error) {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return nil, bankingdomain.ErrInvalidAssociation
	}
	var accounts []bankingdomain.BankAccount
	err := s.db.WithContext(ctx).
		Where("association_id = ? AND is_active = ?", associationID, true).
		Order("name").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListTransactions returns the association's transaction log, newest first.
func (s *Service) ListTransactions(ctx context.Context, associationID string) ([]bankingdomain.BankTransaction, error) {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return nil, bankingdomain.ErrInvalidAssociation
	}
	var transactions []bankingdomain.BankTransaction
	err := s.db.WithContext(ctx).
		Where("association_id = ?", associationID).
		Order("transaction_date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
