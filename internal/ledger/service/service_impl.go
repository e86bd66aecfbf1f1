package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/covenantworks/covenant/internal/clock"
	"github.com/covenantworks/covenant/internal/events"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
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

func NewService(p ServiceParam) ledgerdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("ledger.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		outbox: p.Outbox,
	}
}

// CreateJournalEntry writes a draft header and its lines as two
// sequential writes. When the lines write fails the header is deleted so
// no orphaned journal entry survives; the caller sees the original
// failure. Drafts may be unbalanced; balance is enforced at post time.
func (s *Service) CreateJournalEntry(ctx context.Context, req ledgerdomain.CreateJournalEntryRequest) (*ledgerdomain.JournalEntry, error) {
	associationID := strings.TrimSpace(req.AssociationID)
	if associationID == "" {
		return nil, ledgerdomain.ErrInvalidAssociation
	}
	if req.EntryDate.IsZero() {
		return nil, ledgerdomain.ErrInvalidEntryDate
	}
	if err := ledgerdomain.ValidateLines(req.Lines); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	header := ledgerdomain.JournalEntry{
		ID:            s.genID.Generate(),
		AssociationID: associationID,
		EntryDate:     req.EntryDate.UTC(),
		Reference:     strings.TrimSpace(req.Reference),
		Description:   strings.TrimSpace(req.Description),
		Status:        ledgerdomain.JournalStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.db.WithContext(ctx).Create(&header).Error; err != nil {
		return nil, err
	}

	lines := make([]ledgerdomain.LedgerEntry, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, ledgerdomain.LedgerEntry{
			ID:              s.genID.Generate(),
			AssociationID:   associationID,
			JournalEntryID:  header.ID,
			GLAccountID:     line.GLAccountID,
			TransactionDate: header.EntryDate,
			EntryType:       line.EntryType,
			Amount:          line.Amount,
			CreatedAt:       now,
		})
	}
	if err := s.db.WithContext(ctx).Create(&lines).Error; err != nil {
		if delErr := s.db.WithContext(ctx).
			Delete(&ledgerdomain.JournalEntry{}, "id = ?", header.ID).Error; delErr != nil {
			s.log.Error("compensating delete of journal header failed",
				zap.String("journal_entry_id", header.ID.String()),
				zap.Error(delErr))
		}
		return nil, err
	}

	return &header, nil
}

// PostJournalEntry flips a draft to posted. The stored lines are
// re-loaded and must balance; unbalanced entries are refused.
func (s *Service) PostJournalEntry(ctx context.Context, id snowflake.ID, postedBy string) error {
	var header ledgerdomain.JournalEntry
	if err := s.db.WithContext(ctx).First(&header, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ledgerdomain.ErrJournalNotFound
		}
		return err
	}
	if header.Status == ledgerdomain.JournalStatusPosted {
		return ledgerdomain.ErrAlreadyPosted
	}

	var stored []ledgerdomain.LedgerEntry
	if err := s.db.WithContext(ctx).
		Where("journal_entry_id = ?", header.ID).
		Find(&stored).Error; err != nil {
		return err
	}
	lines := make([]ledgerdomain.LineInput, 0, len(stored))
	for _, entry := range stored {
		lines = append(lines, ledgerdomain.LineInput{
			GLAccountID: entry.GLAccountID,
			EntryType:   entry.EntryType,
			Amount:      entry.Amount,
		})
	}
	if err := ledgerdomain.ValidateBalanced(lines); err != nil {
		return err
	}

	now := s.clock.Now()
	postedBy = strings.TrimSpace(postedBy)
	updates := map[string]any{
		"status":     ledgerdomain.JournalStatusPosted,
		"posted_at":  now,
		"updated_at": now,
	}
	if postedBy != "" {
		updates["posted_by"] = postedBy
	}
	if err := s.db.WithContext(ctx).
		Model(&ledgerdomain.JournalEntry{}).
		Where("id = ?", header.ID).
		Updates(updates).Error; err != nil {
		return err
	}

	if s.outbox != nil {
		event := events.Event{
			AssociationID: header.AssociationID,
			Type:          events.EventJournalEntryPosted,
			Payload: events.JournalEntryPayload{
				JournalEntryID: header.ID.String(),
				Reference:      header.Reference,
				PostedBy:       postedBy,
			}.ToMap(),
			DedupeKey: "journal:" + header.ID.String(),
		}
		if err := s.outbox.Publish(ctx, event); err != nil {
			s.log.Warn("journal posted event publish failed",
				zap.String("journal_entry_id", header.ID.String()),
				zap.Error(err))
		}
	}
	return nil
}

// ListGLAccounts returns the active chart of accounts for an association.
func (s *Service) ListGLAccounts(ctx context.Context, associationID string) ([]ledgerdomain.GLAccount, error) {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return nil, ledgerdomain.ErrInvalidAssociation
	}
	var accounts []ledgerdomain.GLAccount
	err := s.db.WithContext(ctx).
		Where("association_id = ? AND is_active = ?", associationID, true).
		Order("code").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
