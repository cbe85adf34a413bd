package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"reserva_bot/config"
	redisclient "reserva_bot/pkg/clients/redis"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	log "github.com/sirupsen/logrus"
)

const (
	// MaxBatchSize is the maximum number of texts per request
	MaxBatchSize = 64
	// MaxRetries is the maximum number of retries per batch
	MaxRetries = 3
	// LRUCacheCapacity is the in-process cache capacity
	LRUCacheCapacity = 5000

	// redisKeyPrefix namespaces cached vectors in the optional second-level cache
	redisKeyPrefix = "embedding:"
	redisCacheTTL  = 24 * time.Hour
)

var (
	instance *Client
	once     sync.Once
	initErr  error
)

// Client is the embedding model client
type Client struct {
	client     openai.Client
	modelName  string
	cache      *LRUCache                // in-process embedding cache
	redisCache *redisclient.RedisClient // optional second-level cache, may be nil
	metrics    *Metrics                 // usage counters
}

// Metrics holds usage counters
type Metrics struct {
	IngestCount      int64         // texts sent to the model
	QueryCount       int64         // batch calls
	EmbeddingLatency time.Duration // total embedding time
	mu               sync.Mutex
}

// GetInstance returns the embedding client singleton
func GetInstance() (*Client, error) {
	once.Do(func() {
		cfg := config.GetInstance()

		apiKey := cfg.GetString(config.EmbeddingConfigKeyAPIKey)
		if apiKey == "" {
			apiKey = os.Getenv("EMBEDDING_API_KEY")
		}
		if apiKey == "" {
			initErr = fmt.Errorf("%s is required", config.EmbeddingConfigKeyAPIKey)
			return
		}

		modelName := cfg.GetString(config.EmbeddingConfigKeyModelName)
		if modelName == "" {
			initErr = fmt.Errorf("%s is required", config.EmbeddingConfigKeyModelName)
			return
		}

		baseURL := cfg.GetString(config.EmbeddingConfigKeyBaseURL)

		opts := []option.RequestOption{
			option.WithAPIKey(apiKey),
		}

		// A custom base_url targets any OpenAI-compatible embedding server
		if baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}

		client := openai.NewClient(opts...)

		instance = &Client{
			client:     client,
			modelName:  modelName,
			cache:      NewLRUCache(LRUCacheCapacity),
			redisCache: redisclient.GetInstance(),
			metrics:    &Metrics{},
		}
	})

	return instance, initErr
}

// GetTextEmbedding returns the embedding vector for a single text (cached)
func (c *Client) GetTextEmbedding(ctx context.Context, text string) ([]float64, error) {
	embeddings, err := c.GetTextEmbeddingBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}

	return embeddings[0], nil
}

// GetTextEmbeddingBatch returns embedding vectors for a batch of texts,
// with batch splitting, retry and two cache levels
func (c *Client) GetTextEmbeddingBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("texts cannot be empty")
	}

	c.metrics.mu.Lock()
	c.metrics.QueryCount++
	c.metrics.mu.Unlock()

	startTime := time.Now()
	defer func() {
		c.metrics.mu.Lock()
		c.metrics.EmbeddingLatency += time.Since(startTime)
		c.metrics.mu.Unlock()
	}()

	// Collect the texts that miss both cache levels
	type textWithIndex struct {
		text  string
		index int
	}
	needRequest := make([]textWithIndex, 0)
	result := make([][]float64, len(texts))
	cacheHits := 0

	for i, text := range texts {
		if cached, ok := c.cache.Get(text); ok {
			result[i] = cached
			cacheHits++
			continue
		}
		if cached, ok := c.getFromRedis(ctx, text); ok {
			c.cache.Put(text, cached)
			result[i] = cached
			cacheHits++
			continue
		}
		needRequest = append(needRequest, textWithIndex{text: text, index: i})
	}

	if len(needRequest) == 0 {
		log.Debugf("All embeddings retrieved from cache (count: %d)", len(texts))
		return result, nil
	}

	allEmbeddings := make([][]float64, len(texts))
	for i := 0; i < len(needRequest); i += MaxBatchSize {
		end := i + MaxBatchSize
		if end > len(needRequest) {
			end = len(needRequest)
		}

		batch := needRequest[i:end]
		batchTexts := make([]string, len(batch))
		for j, item := range batch {
			batchTexts[j] = item.text
		}

		embeddings, err := c.getTextEmbeddingBatchWithRetry(ctx, batchTexts)
		if err != nil {
			return nil, fmt.Errorf("failed to get embeddings for batch %d-%d: %w", i, end, err)
		}

		for j, item := range batch {
			if j < len(embeddings) {
				allEmbeddings[item.index] = embeddings[j]
				c.cache.Put(item.text, embeddings[j])
				c.putToRedis(ctx, item.text, embeddings[j])
			}
		}
	}

	for i := range texts {
		if result[i] == nil {
			result[i] = allEmbeddings[i]
		}
	}

	log.Debugf("Embedding batch completed: total=%d, cache_hits=%d, requests=%d",
		len(texts), cacheHits, len(needRequest))

	c.metrics.mu.Lock()
	c.metrics.IngestCount += int64(len(needRequest))
	c.metrics.mu.Unlock()

	return result, nil
}

// getTextEmbeddingBatchWithRetry retries a batch with exponential backoff
func (c *Client) getTextEmbeddingBatchWithRetry(ctx context.Context, texts []string) ([][]float64, error) {
	var lastErr error

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			// 1s, 2s, 4s
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			log.Warnf("Retrying embedding request (attempt %d/%d) after %v", attempt+1, MaxRetries, backoff)
			time.Sleep(backoff)
		}

		embeddings, err := c.getTextEmbeddingBatchOnce(ctx, texts)
		if err == nil {
			return embeddings, nil
		}

		lastErr = err
		log.Errorf("Embedding request failed (attempt %d/%d): %v", attempt+1, MaxRetries, err)
	}

	return nil, fmt.Errorf("failed after %d retries: %w", MaxRetries, lastErr)
}

// getTextEmbeddingBatchOnce performs a single batch call
func (c *Client) getTextEmbeddingBatchOnce(ctx context.Context, texts []string) ([][]float64, error) {
	input := openai.EmbeddingNewParamsInputUnion{
		OfArrayOfStrings: texts,
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.modelName),
		Input: input,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	result := make([][]float64, 0, len(resp.Data))
	for _, item := range resp.Data {
		result = append(result, item.Embedding)
	}

	return result, nil
}

// getFromRedis checks the optional second-level cache
func (c *Client) getFromRedis(ctx context.Context, text string) ([]float64, bool) {
	if c.redisCache == nil {
		return nil, false
	}

	data, err := c.redisCache.Get(ctx, redisKeyPrefix+text).Bytes()
	if err != nil {
		return nil, false
	}

	var vec []float64
	if err := json.Unmarshal(data, &vec); err != nil {
		log.Warnf("Failed to decode cached embedding: %v", err)
		return nil, false
	}
	return vec, true
}

// putToRedis stores a vector in the optional second-level cache
func (c *Client) putToRedis(ctx context.Context, text string, vec []float64) {
	if c.redisCache == nil {
		return
	}

	data, err := json.Marshal(vec)
	if err != nil {
		return
	}
	if err := c.redisCache.Set(ctx, redisKeyPrefix+text, data, redisCacheTTL).Err(); err != nil {
		log.Warnf("Failed to cache embedding in redis: %v", err)
	}
}

// GetMetrics returns a copy of the usage counters
func (c *Client) GetMetrics() Metrics {
	c.metrics.mu.Lock()
	defer c.metrics.mu.Unlock()
	return Metrics{
		IngestCount:      c.metrics.IngestCount,
		QueryCount:       c.metrics.QueryCount,
		EmbeddingLatency: c.metrics.EmbeddingLatency,
	}
}
