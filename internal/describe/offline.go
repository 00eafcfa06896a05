package describe

import (
	"context"
	"fmt"
	"strings"

	"signassist/internal/domain"
)

// offlineSigns covers the default suggestion words.
var offlineSigns = map[string]domain.SignDescription{
	"hello": {
		HandShape: "Flat B hand, fingers together and thumb tucked, index finger side touching the temple.",
		Movement:  "Move the hand outward and away from the head, like a small salute.",
	},
	"thank you": {
		HandShape: "Flat B hand with the fingertips touching the chin, palm facing you.",
		Movement:  "Move the hand forward and slightly down toward the person you are thanking.",
	},
	"yes": {
		HandShape: "S hand (a closed fist) held in front of the shoulder, palm facing out.",
		Movement:  "Bend the wrist up and down a couple of times, like a head nodding.",
	},
	"no": {
		HandShape: "Index and middle fingers extended together above the thumb, palm facing out.",
		Movement:  "Snap the two fingers down to meet the thumb, usually twice.",
	},
	"help": {
		HandShape: "Dominant hand in an A shape (thumb up) resting on the flat, upturned palm of the other hand.",
		Movement:  "Lift both hands up together a short distance.",
	},
	"family": {
		HandShape: "Both hands in F shapes, thumb and index tips touching, palms facing out.",
		Movement:  "Circle both hands outward and around until the pinkies meet with palms facing you.",
	},
	"love": {
		HandShape: "Both hands in S shapes (fists), wrists crossed over the chest.",
		Movement:  "Press the crossed arms against the chest as if giving a hug.",
	},
}

// OfflineFetcher answers from a built-in table. Terms outside it fail with
// ErrNoDescription.
type OfflineFetcher struct{}

// NewOfflineFetcher returns a fetcher that never touches the network.
func NewOfflineFetcher() *OfflineFetcher {
	return &OfflineFetcher{}
}

// FetchDescription implements Fetcher.
func (f *OfflineFetcher) FetchDescription(ctx context.Context, term string) (domain.SignDescription, error) {
	term, err := checkTerm(term)
	if err != nil {
		return domain.SignDescription{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.SignDescription{}, err
	}
	desc, ok := offlineSigns[cacheKey(term)]
	if !ok {
		return domain.SignDescription{}, fmt.Errorf("%w: %q is not in the offline table", ErrNoDescription, term)
	}
	return desc, nil
}

// OfflineTerms lists the terms the offline table knows.
func OfflineTerms() []string {
	terms := make([]string, 0, len(offlineSigns))
	for t := range offlineSigns {
		terms = append(terms, t)
	}
	return terms
}

func cacheKey(term string) string {
	return strings.ToLower(strings.Join(strings.Fields(term), " "))
}
