package purchase

import (
	"context"

	"ventapos/internal/core/id"
	"ventapos/internal/domain"
)

// Repository defines the interface for Purchase persistence.
type Repository interface {
	// Create inserts the parent record (without lines).
	Create(ctx context.Context, p *Purchase) error

	// SaveLines replaces all line rows for the document.
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	// GetByID retrieves the parent record without lines.
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)

	// GetLines retrieves all lines ordered by line number.
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)

	// List retrieves purchases with filtering and pagination.
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Purchase], error)

	// DeleteWithLines removes the document and its lines.
	// Returns NOT_FOUND if the parent does not exist.
	DeleteWithLines(ctx context.Context, docID id.ID) error

	// BulkDeleteWithLines removes matching documents and their lines,
	// returning how many parents were deleted. Unknown ids are ignored.
	BulkDeleteWithLines(ctx context.Context, ids []id.ID) (int64, error)
}
