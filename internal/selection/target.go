package selection

import (
	"encoding/json"
	"errors"
)

// ErrNoActionableTarget is returned when neither filter params nor a
// non-empty id list can be derived from a raw selection.
var ErrNoActionableTarget = errors.New("no actionable target")

// Target is the tagged form of a bulk selection. Exactly one of the two
// concrete types is produced for any raw selection.
type Target interface {
	target()
}

type Explicit struct {
	Ids []int64
}

type Filtered struct {
	Params        FilterParams
	ExcludeIds    []int64
	ExpectedTotal *int
}

func (Explicit) target() {}
func (Filtered) target() {}

// DecodeTarget builds a Target from a raw selection. The selection may
// be an id array, a single id, or an object carrying filter_params,
// exclude_ids, expected_total and ids under either snake_case or
// camelCase keys. The snake_case spelling wins when both are present,
// and filter params win over ids.
func DecodeTarget(raw json.RawMessage) (Target, error) {

	if len(raw) == 0 {
		return nil, ErrNoActionableTarget
	}

	var obj map[string]json.RawMessage

	if err := json.Unmarshal(raw, &obj); err == nil {
		return targetFromObject(obj)
	}

	var list []any

	if err := json.Unmarshal(raw, &list); err == nil {
		return explicitTarget(Normalize(list...))
	}

	var scalar any

	if err := json.Unmarshal(raw, &scalar); err == nil {
		return explicitTarget(Normalize(scalar))
	}

	return nil, ErrNoActionableTarget
}

func targetFromObject(obj map[string]json.RawMessage) (Target, error) {

	params, hasParams := paramsField(obj, "filter_params", "filterParams")

	if hasParams {
		filtered := Filtered{
			Params:     params,
			ExcludeIds: Normalize(listField(obj, "exclude_ids", "excludeIds")...),
		}

		if total, ok := numberField(obj, "expected_total", "expectedTotal"); ok {
			filtered.ExpectedTotal = &total
		}

		return filtered, nil
	}

	return explicitTarget(Normalize(listField(obj, "ids")...))
}

func explicitTarget(ids []int64) (Target, error) {

	if len(ids) == 0 {
		return nil, ErrNoActionableTarget
	}

	return Explicit{Ids: ids}, nil
}

func rawField(obj map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {

	for _, key := range keys {
		if raw, ok := obj[key]; ok && string(raw) != "null" {
			return raw, true
		}
	}

	return nil, false
}

func paramsField(obj map[string]json.RawMessage, keys ...string) (FilterParams, bool) {

	raw, ok := rawField(obj, keys...)

	if !ok {
		return nil, false
	}

	params := FilterParams{}

	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, false
	}

	return params, true
}

func listField(obj map[string]json.RawMessage, keys ...string) []any {

	raw, ok := rawField(obj, keys...)

	if !ok {
		return nil
	}

	var list []any

	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var scalar any

	if err := json.Unmarshal(raw, &scalar); err == nil {
		return []any{scalar}
	}

	return nil
}

func numberField(obj map[string]json.RawMessage, keys ...string) (int, bool) {

	raw, ok := rawField(obj, keys...)

	if !ok {
		return 0, false
	}

	var num float64

	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, false
	}

	return int(num), true
}
