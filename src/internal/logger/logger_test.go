package logger

import "testing"

func TestSanitizePayloadMasksSecretsAndIdentifiers(t *testing.T) {
	got := SanitizePayload(map[string]any{
		"channel_key": "PensionKey001",
		"iin":         "930420302182",
		"employees": []any{
			map[string]any{"iin": "680629300199", "lastName": "Узаков"},
		},
	})

	data, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", got)
	}
	if data["channel_key"] != "******" {
		t.Fatalf("expected channel key to be masked, got %v", data["channel_key"])
	}
	if data["iin"] != "********2182" {
		t.Fatalf("expected iin to keep last four digits, got %v", data["iin"])
	}

	employees := data["employees"].([]any)
	employee := employees[0].(map[string]any)
	if employee["iin"] != "********0199" {
		t.Fatalf("expected nested iin to be masked, got %v", employee["iin"])
	}
	if employee["lastName"] != "Узаков" {
		t.Fatalf("expected name to be kept, got %v", employee["lastName"])
	}
}

func TestSanitizePayloadNil(t *testing.T) {
	if got := SanitizePayload(nil); got != nil {
		t.Fatalf("expected nil payload, got %v", got)
	}
}
