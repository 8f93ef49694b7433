package complaint

import (
	"github.com/Masterminds/squirrel"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// applyFilter adds the conjunctive WHERE clauses and pagination from a
// ComplaintFilter to a select builder. Ordering is NOT applied here: every
// list read orders by created_at DESC as a hard contract, set at the query
// site.
func applyFilter(b squirrel.SelectBuilder, f domain.ComplaintFilter) squirrel.SelectBuilder {
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"c.status": *f.Status})
	}
	if f.CategoryID != nil {
		b = b.Where(squirrel.Eq{"c.category_id": *f.CategoryID})
	}
	if f.WardID != nil {
		b = b.Where(squirrel.Eq{"c.ward_id": *f.WardID})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.description": pattern},
			squirrel.ILike{"c.address": pattern},
		})
	}

	// Limit <= 0 means no cap; public callers clamp limit themselves.
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	return b
}
