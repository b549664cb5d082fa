package controllers

import (
	"net/http"
	"strings"

	"github.com/buildsetu/buildsetu-backend/api/validators"
	"github.com/buildsetu/buildsetu-backend/pkg/pagination"
)

func parseListParams(r *http.Request) (pagination.Params, error) {
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{
		Limit:  limit,
		Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
	}, nil
}
