package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const parseWarning = "AI response could not be parsed as valid JSON."

// CleanModelText strips the markdown code fences some models wrap their
// JSON output in. Idempotent: cleaning already-clean text is a no-op.
func CleanModelText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ParseAnswer cleans and parses raw model text into the two-key answer
// object. A JSON object missing either required key is a parse failure;
// partial shapes are not accepted.
func ParseAnswer(text string) (map[string]interface{}, error) {
	cleaned := CleanModelText(text)

	var answer map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &answer); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if answer == nil {
		return nil, errors.New("model output is not a JSON object")
	}
	if _, ok := answer["summary"]; !ok {
		return nil, errors.New(`model output missing "summary" key`)
	}
	if _, ok := answer["details"]; !ok {
		return nil, errors.New(`model output missing "details" key`)
	}

	return answer, nil
}
