package utils

import (
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const dateOnlyLayout = "2006-01-02"

func BuildPaginationRequest(r *http.Request) requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = constvars.AppDefaultPage
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.AppDefaultPageSize
	}
	if pageSize > constvars.AppMaxPageSize {
		pageSize = constvars.AppMaxPageSize
	}

	return requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// BuildDateRangeRequest reads the optional from/to query params. Both
// RFC3339 timestamps and plain dates are accepted; a plain "to" date covers
// the whole day.
func BuildDateRangeRequest(r *http.Request) (requests.DateRange, error) {
	var dateRange requests.DateRange

	from, err := ParseQueryTime(r.URL.Query().Get(constvars.URLQueryParamFrom), false)
	if err != nil {
		return dateRange, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamFrom)
	}
	to, err := ParseQueryTime(r.URL.Query().Get(constvars.URLQueryParamTo), true)
	if err != nil {
		return dateRange, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamTo)
	}

	dateRange.From = from
	dateRange.To = to
	return dateRange, nil
}

func ParseQueryTime(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.ParseInLocation(dateOnlyLayout, value, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}

func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateOnlyLayout, value, time.Local)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	return &parsed, nil
}

// DecodeAndValidate decodes a JSON body into dst and runs struct validation.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = ValidateStruct(dst)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
