package posting

import (
	"context"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/pkg/logger"
)

// Kind selects which document family a retirement targets.
type Kind string

const (
	KindSale     Kind = "sale"
	KindPurchase Kind = "purchase"
)

// DeleteTransaction removes a posted document and its lines in one unit of
// work: lines first, then the parent. Returns NOT_FOUND when the parent does
// not exist; in that case nothing is touched.
//
// Stock effects of the document are NOT reversed. The on-hand level keeps the
// posted adjustment; reversal requires a compensating document.
func (e *Engine) DeleteTransaction(ctx context.Context, kind Kind, docID id.ID) error {
	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		switch kind {
		case KindSale:
			return e.sales.DeleteWithLines(ctx, docID)
		case KindPurchase:
			return e.purchases.DeleteWithLines(ctx, docID)
		default:
			return apperror.NewValidation("unknown document kind").
				WithDetail("kind", string(kind))
		}
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewInternal(err)
	}

	logger.Info(ctx, "transaction deleted", "kind", string(kind), "id", docID.String())
	return nil
}

// BulkDeleteTransactions removes all matching documents and their lines in
// one unit of work and returns how many documents were deleted. Unknown ids
// are silently ignored; an empty id list deletes nothing.
func (e *Engine) BulkDeleteTransactions(ctx context.Context, kind Kind, ids []id.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		switch kind {
		case KindSale:
			deleted, err = e.sales.BulkDeleteWithLines(ctx, ids)
		case KindPurchase:
			deleted, err = e.purchases.BulkDeleteWithLines(ctx, ids)
		default:
			err = apperror.NewValidation("unknown document kind").
				WithDetail("kind", string(kind))
		}
		return err
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return 0, err
		}
		return 0, apperror.NewInternal(err)
	}

	logger.Info(ctx, "transactions bulk deleted",
		"kind", string(kind),
		"requested", len(ids),
		"deleted", deleted,
	)
	return deleted, nil
}
