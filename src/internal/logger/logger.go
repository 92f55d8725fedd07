package logger

import (
	"log"
	"strings"

	"github.com/goccy/go-json"

	"github.com/api-sage/pension-payment-processor/src/internal/iin"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"channelkey":    {},
	"authorization": {},
}

// Identification numbers are kept partially visible so requests can still
// be correlated.
var identityKeys = map[string]struct{}{
	"iin":            {},
	"bin":            {},
	"actualpayerbin": {},
	"recipientbin":   {},
}

func Info(message string, fields Fields) {
	log.Printf("INFO %s %s", message, fieldsJSON(fields))
}

func Warn(message string, fields Fields) {
	log.Printf("WARN %s %s", message, fieldsJSON(fields))
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	log.Printf("ERROR %s %s", message, fieldsJSON(base))
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func fieldsJSON(fields Fields) string {
	if fields == nil {
		fields = Fields{}
	}

	sanitized := SanitizePayload(fields)
	b, err := json.Marshal(sanitized)
	if err != nil {
		return `{}`
	}

	return string(b)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			switch {
			case isKey(sensitiveKeys, key):
				out[key] = "******"
			case isKey(identityKeys, key):
				if s, ok := inner.(string); ok {
					out[key] = iin.Mask(s)
					continue
				}
				out[key] = sanitizeValue(inner)
			default:
				out[key] = sanitizeValue(inner)
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isKey(keys map[string]struct{}, key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	normalized = strings.ReplaceAll(normalized, "_", "")
	_, ok := keys[normalized]
	return ok
}
