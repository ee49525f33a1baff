package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Координаты Ченнаи - фиксированная точка мониторинга осадков
const (
	MonitorLat = 13.0827
	MonitorLon = 80.2707
)

// Client запрашивает текущие осадки у OpenWeatherMap
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

func NewClient(apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		logger:  logger,
	}
}

// CurrentRainfall возвращает осадки за последний час (мм) в точке мониторинга.
// Отсутствующий API-ключ не фатален: пишется предупреждение, осадки считаются нулевыми.
func (c *Client) CurrentRainfall(ctx context.Context) (float64, error) {
	if c.apiKey == "" {
		c.logger.Warn("No OpenWeatherMap API key configured")
		return 0, nil
	}

	params := url.Values{
		"lat":   {fmt.Sprintf("%.4f", MonitorLat)},
		"lon":   {fmt.Sprintf("%.4f", MonitorLon)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("openweathermap API error: status %d: %s", resp.StatusCode, body)
	}

	var weatherResp response
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	// Объект rain отсутствует при сухой погоде
	return weatherResp.Rain.OneHour, nil
}

// OpenWeatherMap API response types.

type response struct {
	Rain rain `json:"rain"`
}

type rain struct {
	OneHour float64 `json:"1h"`
}
