package alert

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherResult struct {
	rainfall float64
	err      error
}

// stubWeather отдает заготовленные результаты, последний повторяется
type stubWeather struct {
	mu      sync.Mutex
	results []weatherResult
	calls   int
	called  chan struct{}
}

func newStubWeather(results ...weatherResult) *stubWeather {
	return &stubWeather{
		results: results,
		called:  make(chan struct{}, 16),
	}
}

func (w *stubWeather) CurrentRainfall(context.Context) (float64, error) {
	w.mu.Lock()
	idx := w.calls
	if idx >= len(w.results) {
		idx = len(w.results) - 1
	}
	res := w.results[idx]
	w.calls++
	w.mu.Unlock()

	w.called <- struct{}{}
	return res.rainfall, res.err
}

func (w *stubWeather) callCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls
}

type stubPublisher struct {
	mu     sync.Mutex
	events []AlertEvent
	err    error
}

func (p *stubPublisher) PublishAlert(_ context.Context, event AlertEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *stubPublisher) published() []AlertEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]AlertEvent(nil), p.events...)
}

func newTestService(weather WeatherProvider, publisher Publisher, clock clockwork.Clock) *Service {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewService(weather, publisher, logger, observability.NewMetricsForTesting(), clock, Options{
		PollInterval:  300 * time.Second,
		RetryInterval: 60 * time.Second,
		CacheTTL:      600 * time.Second,
		FetchTimeout:  5 * time.Second,
	})
}

func waitCalled(t *testing.T, w *stubWeather) {
	t.Helper()
	select {
	case <-w.called:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for weather fetch")
	}
}

func TestClassifyRainfall(t *testing.T) {
	tests := []struct {
		rainfall   float64
		wantRisk   string
		wantAction string
	}{
		{25, "extreme", "Evacuate immediately from flood-prone areas"},
		{20.1, "extreme", "Evacuate immediately from flood-prone areas"},
		{20, "high", "Prepare evacuation plans and monitor conditions"},
		{15, "high", "Prepare evacuation plans and monitor conditions"},
		{10, "moderate", "Monitor weather conditions closely"},
		{7, "moderate", "Monitor weather conditions closely"},
		{5, "low", "Normal monitoring"},
		{3, "low", "Normal monitoring"},
		{0, "low", "Normal monitoring"},
	}
	for _, tt := range tests {
		forecast := ClassifyRainfall(tt.rainfall)
		assert.Equal(t, tt.wantRisk, forecast.Risk, "rainfall %v", tt.rainfall)
		assert.Equal(t, tt.wantAction, forecast.Action, "rainfall %v", tt.rainfall)
	}
}

func TestIterate_BelowThresholdDoesNotBroadcast(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 10})
	publisher := &stubPublisher{}
	svc := newTestService(weather, publisher, clockwork.NewFakeClock())

	require.NoError(t, svc.iterate())
	assert.Empty(t, publisher.published())
}

func TestIterate_AboveThresholdBroadcastsHigh(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 10.1})
	publisher := &stubPublisher{}
	svc := newTestService(weather, publisher, clockwork.NewFakeClock())

	require.NoError(t, svc.iterate())

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "flood_warning", events[0].Type)
	assert.Equal(t, "high", events[0].Severity)
	assert.Equal(t, "Prepare evacuation plans", events[0].Recommendation)
	assert.Equal(t, "Heavy rainfall detected: 10.1mm/h", events[0].Message)
}

func TestIterate_ExtremeRainfall(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 25})
	publisher := &stubPublisher{}
	svc := newTestService(weather, publisher, clockwork.NewFakeClock())

	require.NoError(t, svc.iterate())

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "extreme", events[0].Severity)
	assert.Equal(t, "Evacuate immediately", events[0].Recommendation)
}

func TestIterate_ExactExtremeBoundaryStaysHigh(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 20})
	publisher := &stubPublisher{}
	svc := newTestService(weather, publisher, clockwork.NewFakeClock())

	require.NoError(t, svc.iterate())

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "high", events[0].Severity)
}

func TestIterate_PublisherError(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 15})
	publisher := &stubPublisher{err: errors.New("redis down")}
	svc := newTestService(weather, publisher, clockwork.NewFakeClock())

	require.Error(t, svc.iterate())
}

func TestGetRainfallData_FreshCacheIsNotRefetched(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 8})
	clock := clockwork.NewFakeClock()
	svc := newTestService(weather, &stubPublisher{}, clock)

	// Кэш пуст: первое чтение выполняет запрос
	data, err := svc.GetRainfallData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.0, data.RainLastHour)
	assert.Equal(t, "moderate", data.Forecast.Risk)
	require.NotNil(t, data.LastUpdated)
	assert.Equal(t, 1, weather.callCount())

	// Внутри окна свежести повторного запроса нет
	clock.Advance(599 * time.Second)
	data, err = svc.GetRainfallData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.0, data.RainLastHour)
	assert.Equal(t, 1, weather.callCount())
}

func TestGetRainfallData_StaleCacheRefetches(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 8}, weatherResult{rainfall: 12})
	clock := clockwork.NewFakeClock()
	svc := newTestService(weather, &stubPublisher{}, clock)

	_, err := svc.GetRainfallData(context.Background())
	require.NoError(t, err)

	clock.Advance(601 * time.Second)
	data, err := svc.GetRainfallData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.0, data.RainLastHour)
	assert.Equal(t, "high", data.Forecast.Risk)
	assert.Equal(t, 2, weather.callCount())
}

func TestGetRainfallData_FallsBackToCacheOnFetchError(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 8}, weatherResult{err: errors.New("api down")})
	clock := clockwork.NewFakeClock()
	svc := newTestService(weather, &stubPublisher{}, clock)

	_, err := svc.GetRainfallData(context.Background())
	require.NoError(t, err)
	firstUpdate := clock.Now()

	clock.Advance(601 * time.Second)
	data, err := svc.GetRainfallData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.0, data.RainLastHour)
	require.NotNil(t, data.LastUpdated)
	assert.True(t, data.LastUpdated.Equal(firstUpdate))
}

func TestGetRainfallData_NeverPopulated(t *testing.T) {
	weather := newStubWeather(weatherResult{err: errors.New("api down")})
	svc := newTestService(weather, &stubPublisher{}, clockwork.NewFakeClock())

	data, err := svc.GetRainfallData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, data.RainLastHour)
	assert.Equal(t, "low", data.Forecast.Risk)
	assert.Nil(t, data.LastUpdated)
}

func TestRunLoop_SurvivesProviderErrors(t *testing.T) {
	weather := newStubWeather(weatherResult{err: errors.New("api down")}, weatherResult{rainfall: 12.5})
	publisher := &stubPublisher{}
	clock := clockwork.NewFakeClock()
	svc := newTestService(weather, publisher, clock)

	svc.Start()
	defer svc.Stop()

	waitCalled(t, weather)
	clock.BlockUntil(1)
	// После ошибки цикл ждет укороченный интервал повтора
	clock.Advance(60 * time.Second)

	waitCalled(t, weather)
	clock.BlockUntil(1)

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, "high", events[0].Severity)
	assert.Equal(t, 2, weather.callCount())
}

func TestStartIsIdempotent(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 3})
	clock := clockwork.NewFakeClock()
	svc := newTestService(weather, &stubPublisher{}, clock)

	svc.Start()
	svc.Start()
	defer svc.Stop()

	waitCalled(t, weather)
	clock.BlockUntil(1)

	// Второй Start не поднимает второй цикл
	assert.Equal(t, 1, weather.callCount())
}

func TestStopTerminatesLoop(t *testing.T) {
	weather := newStubWeather(weatherResult{rainfall: 3})
	clock := clockwork.NewFakeClock()
	svc := newTestService(weather, &stubPublisher{}, clock)

	svc.Start()
	waitCalled(t, weather)
	clock.BlockUntil(1)
	svc.Stop()

	before := weather.callCount()
	clock.Advance(900 * time.Second)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, weather.callCount())
}
