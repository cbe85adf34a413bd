package entityextract

import (
	"context"
	"regexp"

	"reserva_bot/pkg/clients/ner"

	log "github.com/sirupsen/logrus"
)

// Slot labels produced by the pattern overlays. The NER model keeps its own
// generic labels (CARDINAL, MISC, ...) alongside these.
const (
	LabelNumPersonas = "NUM_PERSONAS"
	LabelTime        = "TIME"
	LabelDate        = "DATE"

	// LabelCardinal is the generic NER number label consulted as a party-size
	// fallback when the explicit pattern did not fire
	LabelCardinal = "CARDINAL"

	// repeatSeparator joins multiple NER mentions under the same label
	repeatSeparator = " | "
)

// EntitySet maps a label to its extracted text. Repeated NER labels are
// joined with repeatSeparator, newest last.
type EntitySet map[string]string

var (
	// "para 2 personas", "mesa para 4", "3 pax"
	numPersonasPattern = regexp.MustCompile(`(?i)\b(?:para\s+)?(\d{1,2})\s*(?:personas|pers|pax)?\b`)
	// "20:00", "9:30", "21h15", "21"
	timePattern = regexp.MustCompile(`\b([01]?\d|2[0-3])[:hH]?([0-5]\d)?\b`)
	// "10/10", "10-10-2025"
	datePattern = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)\b`)
)

// Analyzer is the external NER model: text in, labeled spans out
type Analyzer interface {
	Analyze(ctx context.Context, text string) ([]ner.Entity, error)
}

// Extractor merges NER output with the pattern overlays
type Extractor struct {
	analyzer Analyzer
}

// NewExtractor creates an extractor on top of an NER model
func NewExtractor(analyzer Analyzer) *Extractor {
	return &Extractor{analyzer: analyzer}
}

// Extract runs NER over the utterance and then applies the pattern overlays.
// Overlay keys are written unconditionally: an explicit pattern match always
// wins over whatever the NER model put under the same label.
func (e *Extractor) Extract(ctx context.Context, utterance string) (EntitySet, error) {
	entities := EntitySet{}

	ents, err := e.analyzer.Analyze(ctx, utterance)
	if err != nil {
		return nil, err
	}
	for _, ent := range ents {
		if existing, ok := entities[ent.Label]; ok {
			entities[ent.Label] = existing + repeatSeparator + ent.Text
		} else {
			entities[ent.Label] = ent.Text
		}
	}

	applyOverlays(entities, utterance)

	log.Debugf("Extract: %q -> %v", utterance, entities)
	return entities, nil
}

// applyOverlays writes the pattern-derived labels into the entity set
func applyOverlays(entities EntitySet, utterance string) {
	if match := numPersonasPattern.FindStringSubmatch(utterance); match != nil {
		entities[LabelNumPersonas] = match[1]
	}

	dateSpan := datePattern.FindStringIndex(utterance)
	if dateSpan != nil {
		entities[LabelDate] = utterance[dateSpan[0]:dateSpan[1]]
	}

	if h, mm, ok := matchTime(utterance, dateSpan); ok {
		entities[LabelTime] = h + ":" + mm
	}
}

// matchTime scans for an hour mention, ignoring candidates inside the date
// span ("10/10" is a date, not ten o'clock). A match carrying explicit
// minutes is preferred over a bare hour, so "para 3 ... a las 19:30"
// resolves to 19:30 and not to the party size. Other stray numbers still
// match; the pattern is context-free and keeps that known limitation.
func matchTime(utterance string, dateSpan []int) (h, mm string, ok bool) {
	matches := timePattern.FindAllStringSubmatchIndex(utterance, -1)

	firstBare := -1
	for i, m := range matches {
		if dateSpan != nil && m[0] >= dateSpan[0] && m[1] <= dateSpan[1] {
			continue
		}
		if m[4] >= 0 { // minutes group matched
			return utterance[m[2]:m[3]], utterance[m[4]:m[5]], true
		}
		if firstBare < 0 {
			firstBare = i
		}
	}

	if firstBare < 0 {
		return "", "", false
	}

	// no explicit minutes anywhere: first bare hour, minutes default to 00
	m := matches[firstBare]
	return utterance[m[2]:m[3]], "00", true
}
