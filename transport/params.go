package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/model"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
	validatorx "github.com/oleksandr-romashko/contacts-api/utils/validator"
)

// parsePagination resolves the skip/limit query parameters into a canonical
// pagination spec. Absent values fall back to defaults; out-of-range values
// are a caller error, never clamped.
func parsePagination(r *http.Request) (*model.Pagination, error) {
	page := &model.Pagination{Skip: 0, Limit: model.PaginationDefaultLimit}

	if raw := r.URL.Query().Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		page.Skip = n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		page.Limit = n
	}

	if err := validatorx.ValidateStruct(page); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return page, nil
}

// parseContactFilter reads the optional substring filters. An absent or
// empty parameter means "no constraint", not "match empty string".
func parseContactFilter(r *http.Request) *model.ContactFilter {
	q := r.URL.Query()
	return &model.ContactFilter{
		FirstName: q.Get("first_name"),
		LastName:  q.Get("last_name"),
		Email:     q.Get("email"),
	}
}

func parseContactID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	return id, nil
}
