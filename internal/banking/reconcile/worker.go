package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	BankSvc bankingdomain.Service
	Config  Config `optional:"true"`
}

// Worker periodically recomputes materialized account balances from the
// transaction log, correcting drift left by failed inline updates.
type Worker struct {
	db      *gorm.DB
	log     *zap.Logger
	bankSvc bankingdomain.Service
	cfg     Config
}

func NewWorker(p Params) *Worker {
	return &Worker{
		db:      p.DB,
		log:     p.Log.Named("banking.reconcile"),
		bankSvc: p.BankSvc,
		cfg:     p.Config.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := w.RunOnce(ctx); err != nil {
			w.log.Warn("balance reconcile run failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce recomputes balances for up to BatchSize active accounts.
// Per-account failures are logged and skipped.
func (w *Worker) RunOnce(ctx context.Context) error {
	if w.db == nil || w.bankSvc == nil {
		return errors.New("reconcile_worker_unavailable")
	}

	var accountIDs []snowflake.ID
	if err := w.db.WithContext(ctx).
		Model(&bankingdomain.BankAccount{}).
		Where("is_active = ?", true).
		Order("id").
		Limit(w.cfg.BatchSize).
		Pluck("id", &accountIDs).Error; err != nil {
		return err
	}

	for _, accountID := range accountIDs {
		if _, err := w.bankSvc.UpdateAccountBalance(ctx, accountID); err != nil {
			w.log.Warn("account reconcile failed",
				zap.String("bank_account_id", accountID.String()),
				zap.Error(err))
		}
	}
	return nil
}
