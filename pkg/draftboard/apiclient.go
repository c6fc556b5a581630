package draftboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// APIClient HTTP реализация AvailabilityClient поверх сервиса бронирования
type APIClient struct {
	baseURL    string
	workerID   int64
	httpClient *http.Client
}

// NewAPIClient создает клиент доступности для аутентифицированного мастера
func NewAPIClient(baseURL string, workerID int64, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:  baseURL,
		workerID: workerID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type weekResponse struct {
	WorkerID int64 `json:"workerId"`
	Slots    []struct {
		ID     int64  `json:"id"`
		Day    string `json:"day"`
		Label  string `json:"label"`
		Status string `json:"status"`
	} `json:"slots"`
}

// FetchWeek запрашивает полную неделю мастера, включая принятые слоты
func (c *APIClient) FetchWeek(ctx context.Context) ([]WeekSlot, error) {
	url := fmt.Sprintf("%s/api/v1/availability/mine", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("X-User-ID", strconv.FormatInt(c.workerID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var week weekResponse
	if err := json.NewDecoder(resp.Body).Decode(&week); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}

	slots := make([]WeekSlot, 0, len(week.Slots))
	for _, s := range week.Slots {
		slots = append(slots, WeekSlot{
			ID:     s.ID,
			Day:    s.Day,
			Label:  s.Label,
			Status: s.Status,
		})
	}

	return slots, nil
}

// SubmitWeek отправляет всю неделю целиком
func (c *APIClient) SubmitWeek(ctx context.Context, week map[string][]string) error {
	url := fmt.Sprintf("%s/api/v1/availability", c.baseURL)

	payload, err := json.Marshal(week)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", strconv.FormatInt(c.workerID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
