package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/flood_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	// Порог рассылки оповещения, строго больше
	alertThresholdMM = 10
	// Выше этого значения severity становится extreme
	extremeThresholdMM = 20

	stopGracePeriod = 5 * time.Second
)

// WeatherProvider определяет контракт источника данных об осадках
type WeatherProvider interface {
	CurrentRainfall(ctx context.Context) (float64, error)
}

// Publisher определяет контракт рассылки оповещений
type Publisher interface {
	PublishAlert(ctx context.Context, event AlertEvent) error
}

// RainfallSource определяет контракт чтения кэшированных данных об осадках
type RainfallSource interface {
	GetRainfallData(ctx context.Context) (*RainfallData, error)
}

// Options - интервалы работы сервиса мониторинга
type Options struct {
	PollInterval  time.Duration // пауза между успешными итерациями
	RetryInterval time.Duration // пауза после ошибки итерации
	CacheTTL      time.Duration // окно свежести кэша для GetRainfallData
	FetchTimeout  time.Duration // таймаут одного запроса к провайдеру
}

// Service - фоновый монитор осадков с кэшем последнего наблюдения.
// Единственный писатель кэша - фоновый цикл и синхронный дозапрос;
// читатели получают согласованную пару (значение, метка времени).
type Service struct {
	weather   WeatherProvider
	publisher Publisher
	logger    *logrus.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	opts      Options

	mu             sync.RWMutex
	latestRainfall float64
	lastUpdated    time.Time // нулевое значение - кэш не заполнен

	runMu   sync.Mutex
	running bool
	stopCh  chan struct{}
	done    chan struct{}
}

func NewService(weather WeatherProvider, publisher Publisher, logger *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock, opts Options) *Service {
	return &Service{
		weather:   weather,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
		opts:      opts,
	}
}

// Start запускает фоновый цикл мониторинга, повторный вызов - no-op
func (s *Service) Start() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	s.metrics.MonitorRunning.Set(1)

	go s.run(s.stopCh, s.done)
	s.logger.Info("Alert service started")
}

// Stop сигнализирует циклу о завершении и ждет его выхода, но не дольше 5 секунд
func (s *Service) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if !s.running {
		return
	}
	close(s.stopCh)

	select {
	case <-s.done:
	case <-time.After(stopGracePeriod):
		s.logger.Warn("Alert service loop did not stop within grace period")
	}

	s.running = false
	s.metrics.MonitorRunning.Set(0)
	s.logger.Info("Alert service stopped")
}

// run - основной цикл: запрос осадков, обновление кэша, рассылка оповещений.
// Ошибка итерации не завершает цикл, только сокращает паузу до повтора.
func (s *Service) run(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		sleep := s.opts.PollInterval
		if err := s.iterate(); err != nil {
			s.logger.WithError(err).Error("Alert service error")
			sleep = s.opts.RetryInterval
		}

		select {
		case <-stopCh:
			return
		case <-s.clock.After(sleep):
		}
	}
}

func (s *Service) iterate() error {
	rainfall, err := s.fetchAndStore(context.Background())
	if err != nil {
		return err
	}
	s.logger.Infof("Current rainfall: %vmm/h", rainfall)

	if rainfall > alertThresholdMM {
		if err := s.broadcast(rainfall); err != nil {
			return fmt.Errorf("broadcast alert: %w", err)
		}
	}
	return nil
}

// fetchAndStore запрашивает осадки и атомарно обновляет пару (значение, метка)
func (s *Service) fetchAndStore(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	rainfall, err := s.weather.CurrentRainfall(ctx)
	if err != nil {
		s.metrics.WeatherFetches.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("fetch rainfall: %w", err)
	}

	s.mu.Lock()
	s.latestRainfall = rainfall
	s.lastUpdated = s.clock.Now()
	s.mu.Unlock()

	s.metrics.WeatherFetches.WithLabelValues("success").Inc()
	s.metrics.RainfallLevel.Set(rainfall)
	return rainfall, nil
}

func (s *Service) broadcast(rainfall float64) error {
	severity := "high"
	recommendation := "Prepare evacuation plans"
	if rainfall > extremeThresholdMM {
		severity = "extreme"
		recommendation = "Evacuate immediately"
	}

	event := AlertEvent{
		Type:           "flood_warning",
		Message:        fmt.Sprintf("Heavy rainfall detected: %vmm/h", rainfall),
		Severity:       severity,
		Timestamp:      s.clock.Now(),
		Recommendation: recommendation,
	}

	if err := s.publisher.PublishAlert(context.Background(), event); err != nil {
		return err
	}
	s.metrics.AlertsPublished.Inc()
	s.logger.WithFields(logrus.Fields{
		"severity": severity,
		"rainfall": rainfall,
	}).Info("Flood warning broadcast")
	return nil
}

// GetRainfallData возвращает кэшированные осадки с классификацией риска.
// Если кэш старше окна свежести или не заполнен, выполняется синхронный
// дозапрос с таймаутом; при его неудаче возвращается последнее кэшированное значение.
func (s *Service) GetRainfallData(ctx context.Context) (*RainfallData, error) {
	s.mu.RLock()
	rainfall, updated := s.latestRainfall, s.lastUpdated
	s.mu.RUnlock()

	if updated.IsZero() || s.clock.Since(updated) > s.opts.CacheTTL {
		if _, err := s.fetchAndStore(ctx); err != nil {
			s.logger.WithError(err).Warn("On-demand rainfall fetch failed, falling back to cached value")
		}
		s.mu.RLock()
		rainfall, updated = s.latestRainfall, s.lastUpdated
		s.mu.RUnlock()
	}

	data := &RainfallData{
		RainLastHour: rainfall,
		Forecast:     ClassifyRainfall(rainfall),
	}
	if !updated.IsZero() {
		t := updated
		data.LastUpdated = &t
	}
	return data, nil
}
