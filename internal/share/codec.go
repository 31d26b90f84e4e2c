// Package share encodes score summaries into URL-safe tokens.
//
// Tokens are obfuscated, not signed: anyone can craft one, so decoded
// payloads are validated and sanitized but never trusted.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"flag-quiz-service/internal/domain"
)

// MaxScore is the largest score a token may carry.
const MaxScore = 999999

// QueryParam is the URL query parameter carrying the token.
const QueryParam = "data"

type wirePayload struct {
	Username string `json:"u"`
	Score    int    `json:"s"`
	Created  int64  `json:"t"`
	Total    int    `json:"total"`
	Elapsed  int    `json:"time"`
}

// SanitizeUsername truncates to domain.DisplayNameMaxLength runes, removes
// markup-sensitive characters and collapses whitespace.
func SanitizeUsername(username string) string {
	name := domain.TrimDisplayName(username)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '\'', '"', '&':
			return -1
		}
		return r
	}, name)
	return strings.Join(strings.Fields(name), " ")
}

// Encode builds a token for the given result. A total below score is raised
// to score and negative elapsed time is clamped to zero.
func Encode(username string, score, total, elapsedSeconds int, now time.Time) (string, error) {
	if score < 0 || score > MaxScore {
		return "", fmt.Errorf("score %d out of range [0, %d]", score, MaxScore)
	}
	if total < score {
		total = score
	}
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	raw, err := json.Marshal(wirePayload{
		Username: SanitizeUsername(username),
		Score:    score,
		Created:  now.UnixMilli(),
		Total:    total,
		Elapsed:  elapsedSeconds,
	})
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode. Any structural or range violation yields
// domain.ErrInvalidToken; there is no partial result.
func Decode(token string) (domain.SharePayload, error) {
	raw, err := decodeBase64(strings.TrimSpace(token))
	if err != nil {
		return domain.SharePayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.SharePayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	var username string
	if err := unmarshalString(fields["u"], &username); err != nil {
		return domain.SharePayload{}, fmt.Errorf("%w: username must be a string", domain.ErrInvalidToken)
	}

	score, ok := integer(fields["s"])
	if !ok || score < 0 || score > MaxScore {
		return domain.SharePayload{}, fmt.Errorf("%w: score out of range", domain.ErrInvalidToken)
	}

	total := score
	if v, ok := integer(fields["total"]); ok {
		if v < score {
			return domain.SharePayload{}, fmt.Errorf("%w: total below score", domain.ErrInvalidToken)
		}
		total = v
	}

	payload := domain.SharePayload{
		Username: SanitizeUsername(username),
		Score:    int(score),
		Total:    int(total),
	}

	if v, ok := integer(fields["time"]); ok {
		if v < 0 {
			return domain.SharePayload{}, fmt.Errorf("%w: negative elapsed time", domain.ErrInvalidToken)
		}
		elapsed := int(v)
		payload.ElapsedSeconds = &elapsed
	}
	if ms, ok := integer(fields["t"]); ok && ms > 0 {
		payload.CreatedAt = time.UnixMilli(ms).UTC()
	}
	return payload, nil
}

// URL appends the token to baseURL as the data query parameter.
func URL(baseURL, token string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse share base url: %w", err)
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodeBase64 accepts URL-safe and standard alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("empty token")
	}
	encodings := []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		out, err := enc.DecodeString(s)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// unmarshalString rejects anything but a JSON string, including null.
func unmarshalString(raw json.RawMessage, v *string) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return fmt.Errorf("not a string")
	}
	return json.Unmarshal(raw, v)
}

// maxSafeInteger keeps decoded numbers exactly representable as float64.
const maxSafeInteger = 1<<53 - 1

// integer reads a finite, integral JSON number.
func integer(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int64(f), true
}
