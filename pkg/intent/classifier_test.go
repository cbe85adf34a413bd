package intent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEncoder maps fixed texts to fixed vectors
type stubEncoder struct {
	vectors map[string][]float64
}

func (s *stubEncoder) GetTextEmbedding(_ context.Context, text string) ([]float64, error) {
	vec, ok := s.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vec, nil
}

func (s *stubEncoder) GetTextEmbeddingBatch(ctx context.Context, texts []string) ([][]float64, error) {
	result := make([][]float64, 0, len(texts))
	for _, text := range texts {
		vec, err := s.GetTextEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}
		result = append(result, vec)
	}
	return result, nil
}

func testCatalog() Catalog {
	return Catalog{
		{Name: IntentSaludo, Examples: []string{"hola", "buenas"}},
		{Name: IntentReservarMesa, Examples: []string{"quiero reservar una mesa"}},
	}
}

func testEncoder() *stubEncoder {
	return &stubEncoder{vectors: map[string][]float64{
		"hola":                     {1, 0, 0},
		"buenas":                   {0.9, 0.1, 0},
		"quiero reservar una mesa": {0, 1, 0},
		"muy buenas":               {0.95, 0.05, 0},
		"una mesa por favor":       {0.1, 0.9, 0},
		"xyzzy":                    {0, 0, 1},
		"ambiguo":                  {1, 1, 0},
	}}
}

func TestClassify_BestIntent(t *testing.T) {
	ctx := context.Background()
	classifier, err := NewClassifier(ctx, testEncoder(), testCatalog(), 0.55)
	require.NoError(t, err)

	res, err := classifier.Classify(ctx, "muy buenas")
	require.NoError(t, err)
	assert.Equal(t, IntentSaludo, res.Intent)
	assert.Greater(t, res.Confidence, 0.55)

	res, err = classifier.Classify(ctx, "una mesa por favor")
	require.NoError(t, err)
	assert.Equal(t, IntentReservarMesa, res.Intent)
}

func TestClassify_FallbackBelowThreshold(t *testing.T) {
	ctx := context.Background()
	classifier, err := NewClassifier(ctx, testEncoder(), testCatalog(), 0.55)
	require.NoError(t, err)

	// orthogonal to every example: max similarity 0 < 0.55
	res, err := classifier.Classify(ctx, "xyzzy")
	require.NoError(t, err)
	assert.Equal(t, IntentFallback, res.Intent)
	assert.InDelta(t, 0.0, res.Confidence, 1e-9)
}

func TestClassify_TieKeepsFirstDeclaredIntent(t *testing.T) {
	ctx := context.Background()
	catalog := Catalog{
		{Name: IntentSaludo, Examples: []string{"hola"}},
		{Name: IntentReservarMesa, Examples: []string{"quiero reservar una mesa"}},
	}
	classifier, err := NewClassifier(ctx, testEncoder(), catalog, 0.55)
	require.NoError(t, err)

	// "ambiguo" is equidistant from both examples
	res, err := classifier.Classify(ctx, "ambiguo")
	require.NoError(t, err)
	assert.Equal(t, IntentSaludo, res.Intent)
}

func TestClassify_EmptyExampleSetSkipped(t *testing.T) {
	ctx := context.Background()
	catalog := Catalog{
		{Name: IntentNegacion, Examples: nil},
		{Name: IntentSaludo, Examples: []string{"hola"}},
	}
	classifier, err := NewClassifier(ctx, testEncoder(), catalog, 0.55)
	require.NoError(t, err)

	res, err := classifier.Classify(ctx, "hola")
	require.NoError(t, err)
	assert.Equal(t, IntentSaludo, res.Intent)
}

func TestNewClassifier_EncoderFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	enc := &stubEncoder{vectors: map[string][]float64{}}

	_, err := NewClassifier(ctx, enc, testCatalog(), 0.55)
	require.Error(t, err)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Len(t, catalog, 8)
	for _, it := range catalog {
		assert.NotEmpty(t, it.Examples, "intent %s has no examples", it.Name)
	}
	// declared order is a contract: it decides similarity ties
	assert.Equal(t, IntentSaludo, catalog[0].Name)
	assert.Equal(t, IntentReservarMesa, catalog[2].Name)
}
