// Package describe fetches how a sign is formed from a generative text model.
//
// Every provider makes exactly one attempt per call; callers decide whether to
// retry.
package describe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"signassist/internal/domain"
)

var (
	// ErrEmptyTerm is returned for terms that are blank after trimming.
	ErrEmptyTerm = errors.New("empty search term")
	// ErrMalformedResponse is returned when a reply lacks either field.
	ErrMalformedResponse = errors.New("malformed description response")
	// ErrNoDescription is returned when the model has no sensible answer for the term.
	ErrNoDescription = errors.New("no description available")
	// ErrMissingAPIKey is returned when a hosted provider has no key configured.
	ErrMissingAPIKey = errors.New("missing API key")
)

// Fetcher looks up the description of the sign for a term.
type Fetcher interface {
	FetchDescription(ctx context.Context, term string) (domain.SignDescription, error)
}

const systemPrompt = `You are an American Sign Language tutor.
Given an English word or short phrase, explain how to sign it in ASL.
Reply with a JSON object with exactly two string fields:
"handShape": the hand shape(s) and where the hands start,
"movement": how the hands move to complete the sign.
Keep each field to one or two plain sentences.
If the input has no ASL sign or is not a word, reply {"error": "no sign"}.`

func userPrompt(term string) string {
	return fmt.Sprintf("How do I sign %q in ASL?", strings.TrimSpace(term))
}

// checkTerm trims term and rejects blanks.
func checkTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptyTerm
	}
	return term, nil
}

type wireDescription struct {
	HandShape      string `json:"handShape"`
	HandShapeSnake string `json:"hand_shape"`
	Movement       string `json:"movement"`
	Error          string `json:"error"`
}

// ParseDescription turns a model reply into a SignDescription. It accepts a
// JSON object (optionally inside a ``` fence) or "Hand shape: ..." /
// "Movement: ..." labeled lines.
func ParseDescription(raw string) (domain.SignDescription, error) {
	text := stripFence(strings.TrimSpace(raw))
	if text == "" {
		return domain.SignDescription{}, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	var desc domain.SignDescription
	if strings.HasPrefix(text, "{") {
		var w wireDescription
		if err := json.Unmarshal([]byte(text), &w); err != nil {
			return domain.SignDescription{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		desc.HandShape = w.HandShape
		if desc.HandShape == "" {
			desc.HandShape = w.HandShapeSnake
		}
		desc.Movement = w.Movement
		if w.Error != "" && desc.IsZero() {
			return domain.SignDescription{}, fmt.Errorf("%w: %s", ErrNoDescription, w.Error)
		}
	} else {
		desc = parseLabeled(text)
	}

	desc.HandShape = strings.TrimSpace(desc.HandShape)
	desc.Movement = strings.TrimSpace(desc.Movement)

	if isPlaceholder(desc.HandShape) && isPlaceholder(desc.Movement) {
		return domain.SignDescription{}, ErrNoDescription
	}
	if desc.HandShape == "" || desc.Movement == "" ||
		isPlaceholder(desc.HandShape) || isPlaceholder(desc.Movement) {
		return domain.SignDescription{}, fmt.Errorf("%w: need both hand shape and movement", ErrMalformedResponse)
	}
	return desc, nil
}

func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	// Drop the info string ("json") after the opening fence, whether it
	// sits on its own line or shares the line with the payload.
	if first, rest, ok := strings.Cut(text, "\n"); ok && !strings.ContainsAny(first, "{[:") {
		text = rest
	} else if i := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }); i > 0 && fenceTags[strings.ToLower(text[:i])] {
		text = text[i:]
	}
	return strings.TrimSpace(text)
}

var fenceTags = map[string]bool{"json": true, "text": true, "txt": true, "markdown": true, "md": true}

func parseLabeled(text string) domain.SignDescription {
	var desc domain.SignDescription
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.Trim(key, " \t*#-_"))
		key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
		value = strings.Trim(strings.TrimSpace(value), "*")
		switch key {
		case "handshape", "shape":
			desc.HandShape = value
		case "movement", "motion":
			desc.Movement = value
		}
	}
	return desc
}

func isPlaceholder(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unknown", "n/a", "na", "none":
		return true
	}
	return false
}
