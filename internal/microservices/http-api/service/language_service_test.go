package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLanguageDetector struct {
	mock.Mock
}

func (m *MockLanguageDetector) DetectLanguage(ctx context.Context, acceptLanguage string) (int, error) {
	args := m.Called(ctx, acceptLanguage)
	return args.Int(0), args.Error(1)
}

type MockLanguageCache struct {
	mock.Mock
}

func (m *MockLanguageCache) Get(ctx context.Context, acceptLanguage string) (int, bool, error) {
	args := m.Called(ctx, acceptLanguage)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockLanguageCache) Set(ctx context.Context, acceptLanguage string, languageID int) error {
	args := m.Called(ctx, acceptLanguage, languageID)
	return args.Error(0)
}

func TestResolve_NumericHeader(t *testing.T) {
	detector := new(MockLanguageDetector)
	resolver := NewLanguageResolver(detector, nil)

	id, err := resolver.Resolve(context.Background(), " 140 ", "es-ES")
	require.NoError(t, err)
	assert.Equal(t, 140, id)
	detector.AssertNotCalled(t, "DetectLanguage", mock.Anything, mock.Anything)
}

func TestResolve_BadHeader(t *testing.T) {
	resolver := NewLanguageResolver(new(MockLanguageDetector), nil)

	for _, header := range []string{"", "english", "-3", "0"} {
		_, err := resolver.Resolve(context.Background(), header, "")
		assert.Equal(t, KindBadRequest, KindOf(err), "header %q", header)
	}
}

func TestResolve_NullInvokesDetector(t *testing.T) {
	detector := new(MockLanguageDetector)
	detector.On("DetectLanguage", mock.Anything, "de-DE,de;q=0.9").Return(47, nil).Once()

	id, err := NewLanguageResolver(detector, nil).Resolve(context.Background(), "null", "de-DE,de;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, 47, id)
	detector.AssertExpectations(t)
}

func TestResolve_DetectorFailure(t *testing.T) {
	detector := new(MockLanguageDetector)
	detector.On("DetectLanguage", mock.Anything, "fr").Return(0, errors.New("function unreachable")).Once()

	_, err := NewLanguageResolver(detector, nil).Resolve(context.Background(), "null", "fr")
	assert.Equal(t, KindInvocation, KindOf(err))
}

func TestResolve_CacheHit(t *testing.T) {
	detector := new(MockLanguageDetector)
	cache := new(MockLanguageCache)
	cache.On("Get", mock.Anything, "es").Return(140, true, nil).Once()

	id, err := NewLanguageResolver(detector, cache).Resolve(context.Background(), "null", "es")
	require.NoError(t, err)
	assert.Equal(t, 140, id)
	detector.AssertNotCalled(t, "DetectLanguage", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestResolve_CacheMissStoresDetection(t *testing.T) {
	detector := new(MockLanguageDetector)
	cache := new(MockLanguageCache)
	cache.On("Get", mock.Anything, "es").Return(0, false, nil).Once()
	detector.On("DetectLanguage", mock.Anything, "es").Return(140, nil).Once()
	cache.On("Set", mock.Anything, "es", 140).Return(nil).Once()

	id, err := NewLanguageResolver(detector, cache).Resolve(context.Background(), "null", "es")
	require.NoError(t, err)
	assert.Equal(t, 140, id)
	detector.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestResolve_CacheErrorsAreNotFatal(t *testing.T) {
	detector := new(MockLanguageDetector)
	cache := new(MockLanguageCache)
	cache.On("Get", mock.Anything, "es").Return(0, false, errors.New("redis down")).Once()
	detector.On("DetectLanguage", mock.Anything, "es").Return(140, nil).Once()
	cache.On("Set", mock.Anything, "es", 140).Return(errors.New("redis down")).Once()

	id, err := NewLanguageResolver(detector, cache).Resolve(context.Background(), "null", "es")
	require.NoError(t, err)
	assert.Equal(t, 140, id)
}

func TestResolve_NullWithoutAcceptLanguage(t *testing.T) {
	detector := new(MockLanguageDetector)
	cache := new(MockLanguageCache)

	for _, accept := range []string{"", "   "} {
		_, err := NewLanguageResolver(detector, cache).Resolve(context.Background(), "null", accept)
		assert.Equal(t, KindInvocation, KindOf(err))
		assert.ErrorIs(t, err, ErrMissingAcceptLanguage)
	}
	detector.AssertNotCalled(t, "DetectLanguage", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
