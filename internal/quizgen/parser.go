package quizgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoPayload        = errors.New("no JSON array found in response")
	ErrMalformedPayload = errors.New("response is not a valid JSON array")
)

// ExtractArray takes the substring between the first '[' and the last ']',
// tolerating surrounding prose and markdown fences.
func ExtractArray(raw string) ([]json.RawMessage, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoPayload
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &items); err != nil {
		return nil, ErrMalformedPayload
	}

	return items, nil
}

func validateQuestion(item json.RawMessage) (*Question, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return nil, errors.New("item is not an object")
	}

	for _, key := range []string{"stem", "options", "answer"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("missing required field %q", key)
		}
	}

	var q Question
	if err := json.Unmarshal(fields["stem"], &q.Stem); err != nil {
		return nil, errors.New("stem must be a string")
	}
	if err := json.Unmarshal(fields["options"], &q.Options); err != nil || len(q.Options) != 4 {
		return nil, errors.New("options must be a list of 4 items")
	}
	if err := json.Unmarshal(fields["answer"], &q.Answer); err != nil {
		return nil, errors.New("answer must be an integer")
	}
	if q.Answer < 0 || q.Answer > 3 {
		return nil, fmt.Errorf("answer must be 0-3, got %d", q.Answer)
	}
	if raw, ok := fields["explanation"]; ok {
		_ = json.Unmarshal(raw, &q.Explanation)
	}

	return &q, nil
}
