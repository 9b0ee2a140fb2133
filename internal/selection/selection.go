// Package selection turns the loosely shaped bulk selections sent by the
// admin UI into canonical payloads and targets. Candidates that cannot be
// coerced into newsletter ids are dropped silently.
package selection

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Mode string

const (
	IdsMode     Mode = "ids"
	FiltersMode Mode = "filters"
)

// FilterParams is an opaque filter expression. It is copied and forwarded
// verbatim; only the registry layer interprets its keys.
type FilterParams map[string]any

type PayloadBody struct {
	Ids           []int64      `json:"ids,omitempty"`
	FilterParams  FilterParams `json:"filter_params,omitempty"`
	ExcludeIds    []int64      `json:"exclude_ids,omitempty"`
	ExpectedTotal *int         `json:"expected_total,omitempty"`
}

// Payload carries exactly one of the two field sets: ids when Mode is
// IdsMode, filter params plus exclusions plus expected total when Mode
// is FiltersMode.
type Payload struct {
	Mode Mode        `json:"mode"`
	Body PayloadBody `json:"body"`
}

// Normalize coerces id candidates into an ordered, duplicate free id
// list. Numbers and numeric strings that hold a positive integer are
// kept in first seen order; everything else contributes nothing.
func Normalize(candidates ...any) []int64 {

	ids := make([]int64, 0, len(candidates))
	seen := make(map[int64]struct{}, len(candidates))

	for _, candidate := range candidates {
		id, ok := coerceId(candidate)

		if !ok {
			continue
		}

		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// Resolve builds the canonical action payload from the two selection
// models the admin UI tracks. Ids are not cross checked against the
// filters; the caller picks the mode and the other model is ignored.
func Resolve(useFilters bool, filterParams FilterParams, totalMatched int, excludedIds []any, explicitIds []any) Payload {

	if !useFilters {
		return Payload{
			Mode: IdsMode,
			Body: PayloadBody{Ids: Normalize(explicitIds...)},
		}
	}

	expected := max(totalMatched, 0)

	return Payload{
		Mode: FiltersMode,
		Body: PayloadBody{
			FilterParams:  cloneParams(filterParams),
			ExcludeIds:    Normalize(excludedIds...),
			ExpectedTotal: &expected,
		},
	}
}

func coerceId(candidate any) (int64, bool) {

	switch v := candidate.(type) {
	case int:
		return int64(v), v > 0
	case int64:
		return v, v > 0
	case float64:
		return floatId(v)
	case json.Number:
		num, err := v.Float64()

		if err != nil {
			return 0, false
		}

		return floatId(num)
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)

		if err != nil {
			return 0, false
		}

		return floatId(num)
	}

	return 0, false
}

func floatId(num float64) (int64, bool) {

	if num <= 0 || num != math.Trunc(num) || math.IsInf(num, 0) {
		return 0, false
	}

	return int64(num), true
}

func cloneParams(params FilterParams) FilterParams {

	clone := make(FilterParams, len(params))

	for k, v := range params {
		clone[k] = v
	}

	return clone
}
