package checkbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

const (
	productionAPIURL = "https://api.checkbox.ua/api/v1"
	sandboxAPIURL    = "https://dev-api.checkbox.ua/api/v1"

	shiftOpened = "OPENED"

	// re-authenticate when the cached token has less than this left
	tokenExpiryMargin = time.Minute
)

type Config struct {
	Login          string
	Password       string
	LicenseKey     string
	CashRegisterID string
	Production     bool
	APIURL         string
}

type Client struct {
	login          string
	password       string
	licenseKey     string
	cashRegisterID string
	baseURL        string
	httpClient     *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.APIURL
	if baseURL == "" {
		if cfg.Production {
			baseURL = productionAPIURL
		} else {
			baseURL = sandboxAPIURL
		}
	}

	return &Client{
		login:          cfg.Login,
		password:       cfg.Password,
		licenseKey:     cfg.LicenseKey,
		cashRegisterID: cfg.CashRegisterID,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	TokenType   string `json:"token_type"`
}

type shiftResponse struct {
	ID             string `json:"id"`
	Serial         int64  `json:"serial"`
	Status         string `json:"status"`
	OpenedAt       string `json:"opened_at"`
	ClosedAt       string `json:"closed_at"`
	CashRegisterID string `json:"cash_register_id"`
}

type receiptResponse struct {
	ID         string `json:"id"`
	Serial     int64  `json:"serial"`
	Status     string `json:"status"`
	FiscalCode string `json:"fiscal_code"`
	FiscalDate string `json:"fiscal_date"`
	TotalSum   int64  `json:"total_sum"`
	ReceiptURL string `json:"receipt_url"`
}

type receiptGood struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Cost     int64  `json:"cost"`
	Tax      []int  `json:"tax"`
}

type receiptPayment struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

type receiptDelivery struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type receiptRequest struct {
	Goods    []receiptGood    `json:"goods"`
	Payments []receiptPayment `json:"payments"`
	Delivery *receiptDelivery `json:"delivery,omitempty"`
	OrderID  string           `json:"order_id,omitempty"`
}

// authenticate refreshes the cashier token when it is within a minute of
// expiry. Checkbox reports expires_at in epoch milliseconds.
func (c *Client) authenticate() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpiryMargin)) {
		return c.accessToken, nil
	}

	body, _ := json.Marshal(map[string]string{
		"login":    c.login,
		"password": c.password,
	})
	response, err := c.httpClient.Post(c.baseURL+"/cashier/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("checkbox signin: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("checkbox authentication failed: %s", readAPIError(response.Body, response.Status))
	}

	var auth authResponse
	if err := json.NewDecoder(response.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("decoding signin response: %w", err)
	}

	c.accessToken = auth.AccessToken
	c.tokenExpiry = time.UnixMilli(auth.ExpiresAt)
	return c.accessToken, nil
}

func (c *Client) request(method, path string, payload interface{}, out interface{}) error {
	token, err := c.authenticate()
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-License-Key", c.licenseKey)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("checkbox %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("checkbox api error: %s", readAPIError(response.Body, response.Status))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}

func (c *Client) CurrentShift() (*domain.Shift, error) {
	var shifts struct {
		Results []shiftResponse `json:"results"`
	}
	if err := c.request(http.MethodGet, "/shifts", nil, &shifts); err != nil {
		return nil, err
	}

	for _, shift := range shifts.Results {
		if shift.Status == shiftOpened {
			return toDomainShift(&shift), nil
		}
	}
	return nil, nil
}

func (c *Client) OpenShift() (*domain.Shift, error) {
	var shift shiftResponse
	if err := c.request(http.MethodPost, "/shifts", map[string]string{}, &shift); err != nil {
		return nil, err
	}
	return toDomainShift(&shift), nil
}

func (c *Client) CloseShift() (*domain.Shift, error) {
	current, err := c.CurrentShift()
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNoOpenShift
	}

	var shift shiftResponse
	if err := c.request(http.MethodPost, "/shifts/"+current.ID+"/close", map[string]string{}, &shift); err != nil {
		return nil, err
	}
	return toDomainShift(&shift), nil
}

// CreateSaleReceipt issues a sale receipt, transparently opening a shift
// when none is open. Checkbox rejects receipts outside a shift and a failed
// payment over an operational gap is worse than the implicit open.
func (c *Client) CreateSaleReceipt(req *domain.SaleReceiptRequest) (*domain.ProviderReceipt, error) {
	return c.createReceipt("/receipts/sell", req)
}

// CreateReturnReceipt issues a return receipt, with the same shift auto-open
// behavior as CreateSaleReceipt.
func (c *Client) CreateReturnReceipt(req *domain.SaleReceiptRequest) (*domain.ProviderReceipt, error) {
	return c.createReceipt("/receipts/return", req)
}

func (c *Client) createReceipt(path string, req *domain.SaleReceiptRequest) (*domain.ProviderReceipt, error) {
	if err := c.ensureOpenShift(); err != nil {
		return nil, err
	}

	payload := toReceiptRequest(req)
	var receipt receiptResponse
	if err := c.request(http.MethodPost, path, payload, &receipt); err != nil {
		return nil, err
	}

	raw, _ := json.Marshal(receipt)
	return &domain.ProviderReceipt{
		ID:         receipt.ID,
		Serial:     receipt.Serial,
		Status:     receipt.Status,
		FiscalCode: receipt.FiscalCode,
		FiscalDate: receipt.FiscalDate,
		TotalSum:   receipt.TotalSum,
		ReceiptURL: receipt.ReceiptURL,
		Raw:        string(raw),
	}, nil
}

func (c *Client) ensureOpenShift() error {
	shift, err := c.CurrentShift()
	if err != nil {
		return err
	}
	if shift != nil {
		return nil
	}

	if _, err := c.OpenShift(); err != nil {
		// two callers can race past the check above; the loser gets an
		// "already opened" rejection and the shift is usable anyway
		if strings.Contains(strings.ToLower(err.Error()), "already") {
			shift, checkErr := c.CurrentShift()
			if checkErr == nil && shift != nil {
				return nil
			}
		}
		return err
	}
	return nil
}

func toDomainShift(shift *shiftResponse) *domain.Shift {
	return &domain.Shift{
		ID:             shift.ID,
		Serial:         shift.Serial,
		Status:         shift.Status,
		CashRegisterID: shift.CashRegisterID,
		OpenedAt:       shift.OpenedAt,
		ClosedAt:       shift.ClosedAt,
	}
}

func toReceiptRequest(req *domain.SaleReceiptRequest) *receiptRequest {
	goods := make([]receiptGood, len(req.Goods))
	for i, good := range req.Goods {
		goods[i] = receiptGood{
			Code:     good.Code,
			Name:     good.Name,
			Price:    good.Price,
			Quantity: good.Quantity,
			Cost:     good.Cost,
			Tax:      good.Tax,
		}
	}

	payments := make([]receiptPayment, len(req.Payments))
	for i, payment := range req.Payments {
		payments[i] = receiptPayment{Type: payment.Type, Value: payment.Value}
	}

	payload := &receiptRequest{
		Goods:    goods,
		Payments: payments,
		OrderID:  req.OrderID,
	}
	if req.Delivery != nil && (req.Delivery.Email != "" || req.Delivery.Phone != "") {
		payload.Delivery = &receiptDelivery{Email: req.Delivery.Email, Phone: req.Delivery.Phone}
	}
	return payload
}

func readAPIError(body io.Reader, fallback string) string {
	var apiError struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&apiError); err == nil && apiError.Message != "" {
		return apiError.Message
	}
	return fallback
}
