package dto

import (
	"net/http"
	"strconv"
	"strings"

	"pms/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// MaxLimit is the largest page a list endpoint returns.
const MaxLimit = 100

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positive(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0
	}

	return n
}

// FromRequest reads paging and sorting from the query string. Malformed numbers are
// ignored and limit is capped at MaxLimit. With paginate set, missing page and limit
// fall back to the package defaults.
func (q *QueryParams) FromRequest(r *http.Request, paginate bool) {
	values := r.URL.Query()

	if page := positive(values.Get(constant.RequestParamPage)); page > 0 {
		q.Page = page
	}

	if limit := positive(values.Get(constant.RequestParamLimit)); limit > 0 {
		q.Limit = min(limit, MaxLimit)
	}

	if sortBy := strings.TrimSpace(values.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !paginate {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// SortColumns maps public sort keys to SQL order expressions.
type SortColumns map[string]string

// ApplySort replaces SortBy with the whitelisted expression for the requested key.
// Unknown keys fall back to defaultKey; a missing direction falls back to defaultDir.
func (q *QueryParams) ApplySort(columns SortColumns, defaultKey, defaultDir string) {
	expr, ok := columns[q.SortBy]
	if !ok {
		expr = columns[defaultKey]
	}

	q.SortBy = expr

	if q.SortDir == "" {
		q.SortDir = defaultDir
	}
}
