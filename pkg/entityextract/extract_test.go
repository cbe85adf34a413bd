package entityextract

import (
	"context"
	"testing"

	"reserva_bot/pkg/clients/ner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyzer returns canned NER spans
type stubAnalyzer struct {
	ents []ner.Entity
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string) ([]ner.Entity, error) {
	return s.ents, nil
}

func extract(t *testing.T, analyzer Analyzer, utterance string) EntitySet {
	t.Helper()
	entities, err := NewExtractor(analyzer).Extract(context.Background(), utterance)
	require.NoError(t, err)
	return entities
}

func TestExtract_FullReservationUtterance(t *testing.T) {
	entities := extract(t, &stubAnalyzer{}, "Reserva para 3 el 10/10 a las 19:30")

	assert.Equal(t, "3", entities[LabelNumPersonas])
	assert.Equal(t, "10/10", entities[LabelDate])
	assert.Equal(t, "19:30", entities[LabelTime])
}

func TestExtract_PartySizeVariants(t *testing.T) {
	cases := map[string]string{
		"para 2 personas":  "2",
		"mesa para 4":      "4",
		"4 pax":            "4",
		"somos 12 pers":    "12",
		"PARA 5 PERSONAS":  "5",
		"una mesa para 10": "10",
	}
	for utterance, want := range cases {
		entities := extract(t, &stubAnalyzer{}, utterance)
		assert.Equal(t, want, entities[LabelNumPersonas], "utterance: %s", utterance)
	}
}

func TestExtract_TimeVariants(t *testing.T) {
	cases := map[string]string{
		"a las 20:00": "20:00",
		"a las 9:30":  "9:30",
		"a las 21h15": "21:15",
		"a las 21":     "21:00", // missing minutes default to 00
	}
	for utterance, want := range cases {
		entities := extract(t, &stubAnalyzer{}, utterance)
		assert.Equal(t, want, entities[LabelTime], "utterance: %s", utterance)
	}
}

func TestExtract_DateVariants(t *testing.T) {
	cases := map[string]string{
		"el 10/10":      "10/10",
		"el 1-12":       "1-12",
		"el 10/10/2025": "10/10/2025",
		"el 31-12-25":   "31-12-25",
	}
	for utterance, want := range cases {
		entities := extract(t, &stubAnalyzer{}, utterance)
		assert.Equal(t, want, entities[LabelDate], "utterance: %s", utterance)
	}
}

func TestExtract_DateAloneIsNotATime(t *testing.T) {
	entities := extract(t, &stubAnalyzer{}, "el 10/10")

	assert.Equal(t, "10/10", entities[LabelDate])
	_, ok := entities[LabelTime]
	assert.False(t, ok, "a bare date must not fill the time label")
}

func TestExtract_NoMatchLeavesLabelsUnset(t *testing.T) {
	entities := extract(t, &stubAnalyzer{}, "hola buenas tardes")

	_, ok := entities[LabelNumPersonas]
	assert.False(t, ok)
	_, ok = entities[LabelDate]
	assert.False(t, ok)
	_, ok = entities[LabelTime]
	assert.False(t, ok)
}

func TestExtract_NerLabelsMerged(t *testing.T) {
	analyzer := &stubAnalyzer{ents: []ner.Entity{
		{Label: "LOC", Text: "Madrid"},
		{Label: "PER", Text: "Ana"},
		{Label: "PER", Text: "Luis"},
		{Label: "PER", Text: "Eva"},
	}}
	entities := extract(t, analyzer, "cena con Ana, Luis y Eva en Madrid")

	assert.Equal(t, "Madrid", entities["LOC"])
	assert.Equal(t, "Ana | Luis | Eva", entities["PER"])
}

func TestExtract_OverlayOverwritesNerLabel(t *testing.T) {
	analyzer := &stubAnalyzer{ents: []ner.Entity{
		{Label: LabelTime, Text: "por la noche"},
	}}
	entities := extract(t, analyzer, "reserva a las 20:00")

	// the explicit pattern wins over the NER span under the same label
	assert.Equal(t, "20:00", entities[LabelTime])
}

func TestExtract_NerCardinalSurvivesAsFallbackSource(t *testing.T) {
	analyzer := &stubAnalyzer{ents: []ner.Entity{
		{Label: LabelCardinal, Text: "cuatro"},
	}}
	entities := extract(t, analyzer, "una mesa para cuatro")

	assert.Equal(t, "cuatro", entities[LabelCardinal])
	_, ok := entities[LabelNumPersonas]
	assert.False(t, ok, "no digits present, the explicit pattern must not fire")
}
