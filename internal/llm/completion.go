package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// completion is what a vendor adapter extracts from its SDK response before
// schema handling, which is shared by every backend.
type completion struct {
	text      string
	truncated bool
	usage     Usage
	model     string
}

// response finishes c for a request with the given schema. A truncated
// structured reply cannot be valid JSON and fails with
// ErrMaxTokensExceeded; plain text replies are returned as a JSON string.
func (c completion) response(schema *Schema) (*Response, error) {
	stop := "end"
	if c.truncated {
		if schema != nil {
			return nil, &ErrMaxTokensExceeded{Content: json.RawMessage(c.text)}
		}
		stop = "max_tokens"
	}

	var content json.RawMessage
	if schema == nil {
		b, err := json.Marshal(c.text)
		if err != nil {
			return nil, fmt.Errorf("encode text: %w", err)
		}
		content = b
	} else {
		content = json.RawMessage(c.text)
		if err := validateResponse(schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Usage:      c.usage,
		Model:      c.model,
		StopReason: stop,
	}, nil
}

// statusError classifies a vendor API error by HTTP status. Anything that
// is not a rate limit is treated as the provider being unavailable.
func statusError(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a short alias to a vendor model ID. Unknown names are
// used as-is so full IDs keep working.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
