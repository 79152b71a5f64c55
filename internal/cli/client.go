package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/gridbones/internal/domain"
	"github.com/shaiso/gridbones/internal/grid"
	"github.com/shaiso/gridbones/internal/telemetry"
)

// DefaultBaseURL — адрес API grid-сервиса по умолчанию.
const DefaultBaseURL = "https://api.smartsheet.com/2.0"

// --- API response wrappers ---

// indexResponse — конверт index-листингов сервиса.
type indexResponse struct {
	Data json.RawMessage `json:"data"`
}

// errorResponse — конверт ошибки сервиса.
type errorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

// APIError — не-2xx ответ сервиса.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: HTTP %d", e.StatusCode)
}

// --- Client ---

// Client — HTTP-клиент grid-сервиса.
//
// Токен непрозрачен: клиент только подставляет его в заголовок
// Authorization. Ошибки транспорта и не-2xx статусы фатальны для
// операции и никогда не ретраятся автоматически.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient создаёт клиент для API.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.Default(),
	}
}

// --- Sheets ---

// ListSheets возвращает index-листинг всех доступных таблиц.
func (c *Client) ListSheets() ([]domain.SheetRef, error) {
	var refs []domain.SheetRef
	err := c.list("/sheets", &refs)
	return refs, err
}

// GetSheet возвращает таблицу целиком: колонки и строки.
func (c *Client) GetSheet(sheetID int64) (*domain.Sheet, error) {
	var sheet domain.Sheet
	if err := c.get(fmt.Sprintf("/sheets/%d", sheetID), &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// ListColumns возвращает схему колонок таблицы.
func (c *Client) ListColumns(sheetID int64) ([]domain.Column, error) {
	var columns []domain.Column
	err := c.list(fmt.Sprintf("/sheets/%d/columns", sheetID), &columns)
	return columns, err
}

// AddRows добавляет строки в таблицу. Ответ сервиса возвращается
// как есть — вызывающий печатает его пользователю.
func (c *Client) AddRows(sheetID int64, rows []grid.RowInsert) (json.RawMessage, error) {
	return c.send(http.MethodPost, fmt.Sprintf("/sheets/%d/rows", sheetID), rows)
}

// UpdateRows обновляет существующие строки таблицы.
func (c *Client) UpdateRows(sheetID int64, rows []grid.RowUpdate) (json.RawMessage, error) {
	return c.send(http.MethodPut, fmt.Sprintf("/sheets/%d/rows", sheetID), rows)
}

// --- Contacts ---

// ListContacts возвращает адресную книгу сервиса.
func (c *Client) ListContacts() ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := c.list("/contacts", &contacts)
	return contacts, err
}

// --- HTTP helpers ---

// get выполняет GET и декодирует тело ответа в result.
func (c *Client) get(path string, result any) error {
	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// list выполняет GET и разворачивает конверт {"data": [...]}.
func (c *Client) list(path string, result any) error {
	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var ir indexResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	// Пустой листинг сервис может прислать без ключа data.
	if len(ir.Data) == 0 || string(ir.Data) == "null" {
		return nil
	}
	return json.Unmarshal(ir.Data, result)
}

// send выполняет запрос с телом и возвращает сырой ответ сервиса.
func (c *Client) send(method, path string, body any) (json.RawMessage, error) {
	resp, err := c.do(method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return raw, nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if method == http.MethodGet {
		// Пагинацией клиент не управляет: листинги всегда целиком.
		params := url.Values{"includeAll": {"true"}}
		u = u + "?" + params.Encode()
	}

	req, err := http.NewRequest(method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	telemetry.WithRequestID(c.log, requestID).Debug("api request",
		"method", method, "url", u)

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
		apiErr.Code = er.ErrorCode
		apiErr.Message = er.Message
	}
	return apiErr
}
