package calendar

import "strings"

// inferRating extracts a single rating from a journal entry's content.
// Historical clients persisted the rating in several shapes, so strategies
// are tried in a strict order and the first hit wins:
//
//  1. a flat numeric "rating" field
//  2. a flat numeric "postGameRating" field
//  3. the mean of numeric "rating" fields inside a "questions" array
//  4. the mean of integer-parsable string values in an "answers" object
//     whose key contains "rating" or "score" (case-insensitive)
//  5. a numeric "rating" inside a "postgame" object
//
// Returns false when no strategy yields a rating.
func inferRating(content map[string]any) (float64, bool) {
	if r, ok := numeric(content["rating"]); ok {
		return r, true
	}
	if r, ok := numeric(content["postGameRating"]); ok {
		return r, true
	}
	if r, ok := questionsMean(content["questions"]); ok {
		return r, true
	}
	if r, ok := answersMean(content["answers"]); ok {
		return r, true
	}
	if postgame, ok := content["postgame"].(map[string]any); ok {
		if r, ok := numeric(postgame["rating"]); ok {
			return r, true
		}
	}
	return 0, false
}

// questionsMean averages the numeric "rating" fields of a questions array.
func questionsMean(v any) (float64, bool) {
	items, ok := v.([]any)
	if !ok {
		return 0, false
	}

	var sum float64
	var n int
	for _, item := range items {
		q, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if r, ok := numeric(q["rating"]); ok {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}

// answersMean averages integer-parsable string answers keyed by anything
// containing "rating" or "score". Only string values participate: a numeric
// answer under such a key belongs to a content shape no client ever wrote.
func answersMean(v any) (float64, bool) {
	answers, ok := v.(map[string]any)
	if !ok {
		return 0, false
	}

	var sum float64
	var n int
	for key, val := range answers {
		lower := strings.ToLower(key)
		if !strings.Contains(lower, "rating") && !strings.Contains(lower, "score") {
			continue
		}
		s, ok := val.(string)
		if !ok {
			continue
		}
		if r, ok := parseLeadingInt(s); ok {
			sum += float64(r)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}

// parseLeadingInt reads a leading base-10 integer from a string the way
// older clients did: skip leading whitespace, take an optional sign, then
// consume digits until the first non-digit. "8/10" parses as 8; "great"
// does not parse.
func parseLeadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}

	return n, true
}

// numeric extracts a float from the value types JSON decoding can produce.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
