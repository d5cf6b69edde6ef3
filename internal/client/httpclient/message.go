package httpclient

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

var messageKeys = []string{"detail", "message", "error", "msg"}

// serverMessage extracts a human readable message from an error body.
// It understands {"detail": "..."}, {"message": "..."}, field errors such as
// {"name": ["already exists"]} and bare ["..."] lists. It returns "" when
// nothing usable is found.
func serverMessage(body []byte) string {
	var list []string
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) > 0 {
			return list[0]
		}
		return ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}

	for _, k := range messageKeys {
		if s := firstString(obj[k]); s != "" {
			return s
		}
	}

	if s := firstString(obj["non_field_errors"]); s != "" {
		return s
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s := firstString(obj[k]); s != "" {
			return fmt.Sprintf("%s: %s", k, s)
		}
	}
	return ""
}

func firstString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return strings.TrimSpace(list[0])
	}
	return ""
}
