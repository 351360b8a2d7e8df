package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/VladPetriv/busbooker/internal/service"
)

func applyLimitAndOffsetForStatement(stmt sq.SelectBuilder, paginationFilter *service.Pagination) sq.SelectBuilder {
	if paginationFilter == nil {
		return stmt
	}

	return stmt.
		Limit(uint64(paginationFilter.Limit)).
		Offset(uint64(paginationFilter.Offset()))
}
