package analysis

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

var errNotObject = errors.New("payload is not a JSON object")

// Parse locates the JSON object in a provider response and turns it into a
// fully validated TaskAnalysis. It fails only with *ParseError.
func Parse(raw string) (TaskAnalysis, error) {
	payload, err := extractObject(raw)
	if err != nil {
		return TaskAnalysis{}, err
	}
	return normalize(payload), nil
}

// extractObject tries the whole text, then a fenced block, then the first
// balanced brace-delimited substring that decodes.
func extractObject(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, &ParseError{Reason: "empty response"}
	}

	if obj, decoded, err := decodeObject(text); decoded {
		if err != nil {
			return nil, &ParseError{Reason: "direct decode", Err: err}
		}
		return obj, nil
	}

	if fenced, ok := stripFence(text); ok {
		if obj, decoded, err := decodeObject(fenced); decoded {
			if err != nil {
				return nil, &ParseError{Reason: "fenced block", Err: err}
			}
			return obj, nil
		}
	}

	for start := strings.IndexByte(text, '{'); start >= 0; {
		end := matchBrace(text, start)
		if end < 0 {
			break
		}
		if obj, decoded, err := decodeObject(text[start : end+1]); decoded && err == nil {
			return obj, nil
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	return nil, &ParseError{Reason: "no JSON object found"}
}

// decodeObject reports decoded=true when s is a single valid JSON value.
// err is set when that value is not an object.
func decodeObject(s string) (obj map[string]any, decoded bool, err error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false, nil
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		// trailing data after the first value
		return nil, false, nil
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, true, errNotObject
	}
	return obj, true, nil
}

func stripFence(text string) (string, bool) {
	idx := strings.Index(text, "```")
	if idx < 0 {
		return "", false
	}
	rest := text[idx+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		lang := strings.TrimSpace(rest[:nl])
		if lang == "" || strings.EqualFold(lang, "json") {
			rest = rest[nl+1:]
		}
	} else {
		rest = strings.TrimPrefix(rest, "json")
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// matchBrace returns the index of the brace closing the one at start,
// ignoring braces inside JSON strings, or -1.
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func normalize(payload map[string]any) TaskAnalysis {
	return TaskAnalysis{
		Priority:             normalizePriority(payload["priority"]),
		EstimatedTimeMinutes: normalizeMinutes(firstPresent(payload, "estimatedTime", "estimated_time", "estimatedTimeMinutes")),
		Tips:                 normalizeStrings(payload["tips"], MaxTips),
		Subtasks:             normalizeStrings(payload["subtasks"], MaxSubtasks),
	}
}

func firstPresent(payload map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := payload[k]; ok {
			return v
		}
	}
	return nil
}

func normalizePriority(v any) Priority {
	s, ok := v.(string)
	if !ok {
		return PriorityMedium
	}
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return PriorityMedium
}

func normalizeMinutes(v any) int {
	var f float64
	switch t := v.(type) {
	case json.Number:
		n, err := strconv.ParseFloat(t.String(), 64)
		if err != nil && !math.IsInf(n, 0) {
			return DefaultEstimatedMinutes
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if (err != nil && !math.IsInf(n, 0)) || math.IsNaN(n) {
			return DefaultEstimatedMinutes
		}
		f = n
	default:
		return DefaultEstimatedMinutes
	}

	switch {
	case f >= MaxEstimatedMinutes:
		return MaxEstimatedMinutes
	case f <= MinEstimatedMinutes:
		return MinEstimatedMinutes
	}
	return int(math.Round(f))
}

func normalizeStrings(v any, limit int) []string {
	out := make([]string, 0, limit)
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if len(out) == limit {
			break
		}
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
