package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/dmitrijs2005/adboard/internal/common"
)

var (
	userPatchFields = []string{"name", "password"}
	adPatchFields   = []string{"title", "description"}
)

// ParseUserPatch decodes a PATCH /user body. Only "name" and "password" are
// accepted; any other key, a non-string value or a non-object body is a
// validation error.
func ParseUserPatch(body []byte) (UserPatch, error) {
	fields, err := decodePatch(body, userPatchFields)
	if err != nil {
		return UserPatch{}, err
	}
	p := UserPatch{Name: fields["name"], Password: fields["password"]}
	return p, p.Validate()
}

// ParseAdPatch decodes a PATCH /ads body restricted to "title" and "description".
func ParseAdPatch(body []byte) (AdPatch, error) {
	fields, err := decodePatch(body, adPatchFields)
	if err != nil {
		return AdPatch{}, err
	}
	p := AdPatch{Title: fields["title"], Description: fields["description"]}
	return p, p.Validate()
}

func decodePatch(body []byte, allowed []string) (map[string]*string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: request body is empty", common.ErrorValidation)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", common.ErrorValidation)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]*string, len(raw))
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return nil, fmt.Errorf("%w: field %q cannot be changed", common.ErrorValidation, k)
		}
		var s string
		if err := json.Unmarshal(raw[k], &s); err != nil {
			return nil, fmt.Errorf("%w: field %q must be a string", common.ErrorValidation, k)
		}
		fields[k] = &s
	}

	return fields, nil
}
