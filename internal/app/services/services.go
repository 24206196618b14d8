package services

import (
	"strings"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// containsFold reports whether s contains substr, ignoring case
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// equalFold reports whether two strings are equal, ignoring case
func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// paginateWindow returns the [start, end) window for a slice of length n
func paginateWindow(n, page, pageSize int) (int, int) {
	return helpers.Paginate(n, page, pageSize)
}

// paginationInfo builds standard pagination metadata
func paginationInfo(total int64, page, pageSize int) dto.PaginationInfo {
	return helpers.NewPaginationInfo(total, page, pageSize)
}
