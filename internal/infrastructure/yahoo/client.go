package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/address-navigator/internal/config"
	"github.com/address-navigator/internal/domain"
	"github.com/address-navigator/internal/domain/repository"
)

// Фиксированные параметры запроса поиска по индексу
const (
	paramOutput  = "json"
	paramResults = "15"
	paramDetail  = "full"
)

// maxErrorBodySize - сколько байт тела ошибочного ответа попадает в лог
const maxErrorBodySize = 512

type client struct {
	httpClient *http.Client
	searchURL  string
	appID      string
	logger     *zap.Logger
}

// NewYahooClient создает новый клиент для Yahoo API поиска по почтовому индексу
func NewYahooClient(cfg *config.YahooAPIConfig, logger *zap.Logger) repository.AddressLookupRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.GetRequestTimeout(),
		},
		searchURL: cfg.GetZipcodeSearchURL(),
		appID:     cfg.AppID,
		logger:    logger,
	}
}

// SearchZipcode ищет адреса по почтовому индексу.
// Ошибки не пробрасываются: при сбое пишется warn и возвращается nil.
func (c *client) SearchZipcode(ctx context.Context, zipcode string) *domain.ZipcodeSearchResponse {
	query := url.Values{}
	query.Set("output", paramOutput)
	query.Set("results", paramResults)
	query.Set("detail", paramDetail)
	query.Set("query", zipcode)

	var body domain.ZipcodeSearchResult
	statusCode, err := c.get(ctx, c.searchURL, query, &body)
	if err != nil {
		c.logger.Warn("Zipcode search API call failed",
			zap.String("zipcode", zipcode),
			zap.Error(err))
		return nil
	}

	return &domain.ZipcodeSearchResponse{
		StatusCode: statusCode,
		Body:       &body,
	}
}

// get выполняет GET-запрос с appId и декодирует JSON-ответ в out,
// логируя начало, окончание и время выполнения.
func (c *client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) (int, error) {
	responseType := reflect.TypeOf(out).String()

	c.logger.Info(">>>>> Yahoo API request started",
		zap.String("endpoint", endpoint),
		zap.String("response_type", responseType),
		zap.String("query", query.Encode()))

	reqURL, err := c.buildURL(endpoint, query)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return resp.StatusCode, fmt.Errorf("yahoo API error: status %d, body: %s", resp.StatusCode, string(errBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Info("<<<<< Yahoo API request finished",
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		zap.String("endpoint", endpoint),
		zap.String("response_type", responseType),
		zap.String("query", query.Encode()),
		zap.Int("status_code", resp.StatusCode))

	return resp.StatusCode, nil
}

// buildURL добавляет к endpoint параметры запроса и обязательный appId.
// appId не попадает в логируемые параметры.
func (c *client) buildURL(endpoint string, query url.Values) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("appId", c.appID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
