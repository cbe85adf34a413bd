package intent

import (
	"context"

	"reserva_bot/pkg/clients/embedding"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultSimilarityThreshold is the minimum cosine similarity an intent
	// must reach; below it the utterance resolves to fallback
	DefaultSimilarityThreshold = 0.55
)

// Encoder is the external embedding model: text in, vector out
type Encoder interface {
	GetTextEmbedding(ctx context.Context, text string) ([]float64, error)
	GetTextEmbeddingBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Classifier resolves an utterance to the intent whose example set contains
// the nearest embedding, or to fallback below the threshold
type Classifier struct {
	encoder   Encoder
	catalog   Catalog
	threshold float64
	// refs[i] holds the precomputed example vectors of catalog[i]
	refs [][][]float64
}

// NewClassifier precomputes the example embeddings for the whole catalog.
// An encoding failure here is a fatal dependency failure: without the
// embedding model no turn can be classified.
func NewClassifier(ctx context.Context, encoder Encoder, catalog Catalog, threshold float64) (*Classifier, error) {
	if threshold == 0 {
		threshold = DefaultSimilarityThreshold
	}

	c := &Classifier{
		encoder:   encoder,
		catalog:   catalog,
		threshold: threshold,
		refs:      make([][][]float64, len(catalog)),
	}

	for i, it := range catalog {
		if len(it.Examples) == 0 {
			continue
		}
		vectors, err := encoder.GetTextEmbeddingBatch(ctx, it.Examples)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to embed examples for intent %s", it.Name)
		}
		c.refs[i] = vectors
	}

	log.Infof("Intent classifier ready: %d intents, threshold=%.2f", len(catalog), threshold)
	return c, nil
}

// Classify scores an utterance against every intent and returns the best
// match. Ties keep the first intent in catalog order. Below the threshold the
// result is IntentFallback with the observed maximum similarity.
func (c *Classifier) Classify(ctx context.Context, utterance string) (*Result, error) {
	inputVec, err := c.encoder.GetTextEmbedding(ctx, utterance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to embed utterance")
	}

	maxSim := -1.0
	bestIntent := ""
	for i, it := range c.catalog {
		if len(c.refs[i]) == 0 {
			continue
		}
		sim := embedding.MaxCosineSimilarity(inputVec, c.refs[i])
		if sim > maxSim {
			maxSim = sim
			bestIntent = it.Name
		}
	}

	if maxSim < c.threshold {
		log.Debugf("Classify fallback: best=%s sim=%.3f threshold=%.2f", bestIntent, maxSim, c.threshold)
		return &Result{Intent: IntentFallback, Confidence: maxSim}, nil
	}

	log.Debugf("Classify: intent=%s sim=%.3f", bestIntent, maxSim)
	return &Result{Intent: bestIntent, Confidence: maxSim}, nil
}
