package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"essay-assess/internal/cache"
	"essay-assess/internal/config"
	"essay-assess/internal/domain"
	"essay-assess/internal/logger"
	"essay-assess/internal/util"

	"github.com/tmc/langchaingo/embeddings"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultEmbeddingTTL = 168 * time.Hour

// OpenAIEmbeddingService implements the domain.EmbeddingService interface
// using OpenAI, with a Redis-backed cache and singleflight so concurrent
// requests for the same text trigger a single API call.
type OpenAIEmbeddingService struct {
	embedder embeddings.Embedder
	cache    domain.Cache
	config   *config.Config
	sfGroup  singleflight.Group
}

// NewOpenAIEmbeddingService creates a new OpenAIEmbeddingService.
func NewOpenAIEmbeddingService(apiKey, modelName string, cache domain.Cache, cfg *config.Config) (*OpenAIEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "text-embedding-ada-002"
	}
	if cfg == nil {
		return nil, fmt.Errorf("config instance cannot be nil for OpenAIEmbeddingService")
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI LLM client for embedder: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder from OpenAI LLM: %w", err)
	}

	return &OpenAIEmbeddingService{
		embedder: embedder,
		cache:    cache,
		config:   cfg,
	}, nil
}

// Generate creates an embedding for the given text, consulting the cache
// first. Embeddings are gob-encoded in the cache; corrupt entries fall
// through to regeneration.
func (s *OpenAIEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	cacheKey := cache.GenerateCacheKey("embedding", "openai", util.HashString(text))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var embedding []float32
			if decodeErr := gob.NewDecoder(bytes.NewReader([]byte(cached))).Decode(&embedding); decodeErr == nil {
				return embedding, nil
			} else {
				logger.Get().Warn("Failed to decode cached embedding, regenerating",
					zap.Error(decodeErr), zap.String("cacheKey", cacheKey))
			}
		} else if err != domain.ErrCacheMiss {
			logger.Get().Error("Embedding cache read failed",
				zap.Error(err), zap.String("cacheKey", cacheKey))
		}
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		raw, fetchErr := s.embedder.EmbedQuery(ctx, text)
		if fetchErr != nil {
			return nil, fmt.Errorf("failed to generate embedding using OpenAI: %w", fetchErr)
		}
		if raw == nil {
			return nil, fmt.Errorf("received nil embedding from OpenAI without error")
		}

		embedding := make([]float32, len(raw))
		for i, v := range raw {
			embedding[i] = float32(v)
		}

		if s.cache != nil {
			var buffer bytes.Buffer
			if encodeErr := gob.NewEncoder(&buffer).Encode(embedding); encodeErr != nil {
				logger.Get().Error("Failed to encode embedding for caching", zap.Error(encodeErr))
				return embedding, nil
			}
			ttl := s.config.ParseTTLStringOrDefault(s.config.CacheTTLs.Embedding, defaultEmbeddingTTL)
			if setErr := s.cache.Set(ctx, cacheKey, buffer.String(), ttl); setErr != nil {
				logger.Get().Error("Failed to cache embedding",
					zap.Error(setErr), zap.String("cacheKey", cacheKey))
			}
		}
		return embedding, nil
	})
	if err != nil {
		return nil, err
	}

	if embedding, ok := res.([]float32); ok {
		return embedding, nil
	}
	return nil, fmt.Errorf("unexpected type from singleflight.Do for openai embedding: %T", res)
}
