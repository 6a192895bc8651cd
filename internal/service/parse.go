package service

import (
	"encoding/json"
	"strings"

	"essay_coach_backend/internal/model"
)

// ParseModelJSON extracts a JSON object from raw model output. Models
// occasionally wrap the body in a markdown code fence or pad it with
// prose, so parsing proceeds in three steps: strip fences, try the whole
// text, then fall back to the span between the first '{' and the last
// '}'. If nothing parses, the original text is returned inside the error
// value so it stays inspectable.
func ParseModelJSON(text string) (map[string]any, *model.ProviderError) {
	raw := strings.TrimSpace(text)

	if strings.HasPrefix(raw, "```") {
		lines := strings.Split(raw, "\n")
		if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "```") {
			lines = lines[:len(lines)-1]
		}
		raw = strings.Join(lines, "\n")
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err == nil {
			return out, nil
		}
	}

	return nil, &model.ProviderError{
		Message: "failed to parse JSON response from provider",
		RawText: text,
	}
}

// hintFor guesses a likely cause from the error text. Substring matching
// only; a hint is a suggestion for the user, not a diagnosis.
func hintFor(msg string) string {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "401") || strings.Contains(m, "unauthorized") ||
		strings.Contains(m, "api key") || strings.Contains(m, "api_key") ||
		strings.Contains(m, "auth"):
		return "check the provider API key configuration"
	case strings.Contains(m, "429") || strings.Contains(m, "quota") ||
		strings.Contains(m, "rate limit"):
		return "the provider quota or rate limit may be exhausted"
	case strings.Contains(m, "timeout") || strings.Contains(m, "deadline") ||
		strings.Contains(m, "connection") || strings.Contains(m, "no such host") ||
		strings.Contains(m, "proxy"):
		return "the provider endpoint may be unreachable; check network and proxy settings"
	default:
		return ""
	}
}

func mustJSON(v any) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(buf)
}

func providerError(err error) *model.ProviderError {
	return &model.ProviderError{
		Message: err.Error(),
		Hint:    hintFor(err.Error()),
	}
}
