package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"reserva_bot/config"
	"reserva_bot/pkg/clients/httptool"

	"github.com/pkg/errors"
)

const (
	clientNameNer = "ner_model"

	entsPath = "/ents"
)

// Client calls the external NER model sidecar.
// The model itself is a black box: text in, labeled spans out.
type Client struct {
	config *Config
	hc     *httptool.HTTPClient
}

var (
	instance *Client
	once     sync.Once
)

// GetInstance returns the NER client singleton
func GetInstance() *Client {
	once.Do(func() {
		conf := &Config{
			Addr:    config.GetInstance().GetString(config.NerConfigKeyAddr),
			Timeout: config.GetInstance().GetIntOrDefault(config.NerConfigKeyTimeout, 10),
		}
		if conf.Addr == "" {
			panic(fmt.Sprintf("%s is required", config.NerConfigKeyAddr))
		}

		instance = newClient(conf)
	})
	return instance
}

// NewClient creates a client with explicit options
func NewClient(opts ...Option) *Client {
	conf := DefaultConfig()
	for _, opt := range opts {
		opt(conf)
	}
	return newClient(conf)
}

func newClient(conf *Config) *Client {
	return &Client{
		config: conf,
		hc:     httptool.NewHTTPClient(conf.Addr, clientNameNer, time.Second*time.Duration(conf.Timeout), nil),
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Ents []Entity `json:"ents"`
}

// Analyze runs the NER model over one utterance and returns all recognized
// spans in model order. The caller owns label merging.
func (c *Client) Analyze(ctx context.Context, text string) ([]Entity, error) {
	respBody, err := c.hc.PostJSONWithContext(ctx, entsPath, &analyzeRequest{Text: text})
	if err != nil {
		return nil, errors.Wrapf(err, "%s analyze failed", clientNameNer)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrapf(err, "%s response decode failed", clientNameNer)
	}

	return parsed.Ents, nil
}
