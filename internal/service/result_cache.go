package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"essay-assess/internal/cache"
	"essay-assess/internal/domain"
	"essay-assess/internal/logger"
	"essay-assess/internal/util"

	"go.uber.org/zap"
)

const DefaultResultCacheExpiration = 24 * time.Hour

// ResultCacheService defines the interface for assessment result caching.
// Results for one question live in a single hash, one field per distinct
// (answer, maxMarks) pair, so invalidating a question is one Delete.
type ResultCacheService interface {
	GetResultFromCache(ctx context.Context, questionKey, studentAnswer string, maxMarks float64) (*domain.AssessmentResult, error)
	PutResultToCache(ctx context.Context, questionKey, studentAnswer string, maxMarks float64, result *domain.AssessmentResult) error
	InvalidateQuestion(ctx context.Context, questionKey string) error
}

// resultCacheServiceImpl implements ResultCacheService on domain.Cache.
type resultCacheServiceImpl struct {
	cache      domain.Cache
	expiration time.Duration
}

// NewResultCacheService creates a new ResultCacheService. A nil cache is
// tolerated: every method becomes a no-op miss, so callers never have to
// branch on whether caching is configured.
func NewResultCacheService(c domain.Cache, expiration time.Duration) ResultCacheService {
	if expiration <= 0 {
		expiration = DefaultResultCacheExpiration
	}
	return &resultCacheServiceImpl{
		cache:      c,
		expiration: expiration,
	}
}

func resultCacheKey(questionKey string) string {
	return cache.GenerateCacheKey("assessment", "result", util.HashString(questionKey))
}

// resultCacheField identifies one assessment inside the question hash.
// maxMarks is part of the identity because totalScore depends on it.
func resultCacheField(studentAnswer string, maxMarks float64) string {
	return util.HashString(fmt.Sprintf("%s\x00%g", studentAnswer, maxMarks))
}

// GetResultFromCache returns the cached result, or (nil, nil) on a miss.
func (s *resultCacheServiceImpl) GetResultFromCache(ctx context.Context, questionKey, studentAnswer string, maxMarks float64) (*domain.AssessmentResult, error) {
	if s.cache == nil {
		return nil, nil
	}

	key := resultCacheKey(questionKey)
	raw, err := s.cache.HGet(ctx, key, resultCacheField(studentAnswer, maxMarks))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, nil
		}
		logger.Get().Error("ResultCacheService: HGet failed", zap.Error(err), zap.String("key", key))
		return nil, err
	}

	var result domain.AssessmentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		logger.Get().Warn("ResultCacheService: failed to unmarshal cached result",
			zap.Error(err), zap.String("key", key))
		return nil, nil
	}

	logger.Get().Debug("ResultCacheService: cache hit", zap.String("key", key))
	return &result, nil
}

// PutResultToCache stores an assessment result and refreshes the hash TTL.
func (s *resultCacheServiceImpl) PutResultToCache(ctx context.Context, questionKey, studentAnswer string, maxMarks float64, result *domain.AssessmentResult) error {
	if s.cache == nil || result == nil {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("ResultCacheService: failed to marshal result for caching", zap.Error(err))
		return err
	}

	key := resultCacheKey(questionKey)
	if err := s.cache.HSet(ctx, key, resultCacheField(studentAnswer, maxMarks), string(payload)); err != nil {
		logger.Get().Error("ResultCacheService: HSet failed", zap.Error(err), zap.String("key", key))
		return err
	}
	if err := s.cache.Expire(ctx, key, s.expiration); err != nil {
		logger.Get().Error("ResultCacheService: failed to set expiration", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// InvalidateQuestion drops every cached result for a question. Called when
// the question's reference answer changes.
func (s *resultCacheServiceImpl) InvalidateQuestion(ctx context.Context, questionKey string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, resultCacheKey(questionKey))
}
