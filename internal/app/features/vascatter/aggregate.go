// internal/app/features/vascatter/aggregate.go
package vascatter

import (
	"fmt"
	"math"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/hovertext"
	"github.com/dalemusser/stratamood/internal/domain/models"
)

// Marker sizing: a lone sample renders at sizeBase; each doubling of the
// member count adds sizeStep so dense coordinates stay readable.
const (
	sizeBase = 10.0
	sizeStep = 6.0
)

type coordKey struct {
	valence, arousal float64
}

// Aggregate collapses samples sharing an exact coordinate pair into
// bubbles, preserving first-seen order. Every input sample lands in
// exactly one bubble, so bubble counts always sum to len(points).
func Aggregate(points []metricsapi.VAPoint) []Bubble {
	index := make(map[coordKey]int, len(points))
	bubbles := make([]Bubble, 0, len(points))

	for _, p := range points {
		key := coordKey{p.Valence, p.Arousal}
		i, ok := index[key]
		if !ok {
			i = len(bubbles)
			index[key] = i
			bubbles = append(bubbles, Bubble{
				Valence: p.Valence,
				Arousal: p.Arousal,
				Hover:   describe(p),
				Color:   models.ColorFor(p.PrimaryEmotion),
				Members: []MemberID{},
			})
		}
		bubbles[i].Count++
		bubbles[i].Members = append(bubbles[i].Members, MemberID{
			EntryID:   p.EntryID,
			SessionID: p.SessionID,
			Timestamp: p.Timestamp,
		})
	}

	for i := range bubbles {
		b := &bubbles[i]
		b.Size = markerSize(b.Count)
		if b.Count > 1 {
			b.Hover = fmt.Sprintf("%s (+%d more)", b.Hover, b.Count-1)
		}
	}
	return bubbles
}

// markerSize grows sub-linearly so a hundred-member bubble does not
// swallow the canvas.
func markerSize(count int) float64 {
	return sizeBase + sizeStep*math.Log2(1+float64(count))
}

// describe renders the first member's hover line from its emotion labels
// and activity tags, sanitized for embedding in hover templates.
func describe(p metricsapi.VAPoint) string {
	parts := []string{p.PrimaryEmotion}
	if p.SecondaryEmotion != "" {
		parts = append(parts, p.SecondaryEmotion)
	}
	parts = append(parts, p.ActivityTags...)
	return hovertext.Join(parts)
}
