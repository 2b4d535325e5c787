package liqpay

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yaovidiy/e-commerce-cms/internal/domain"
)

const defaultAPIURL = "https://www.liqpay.ua/api/"

type Config struct {
	PublicKey  string
	PrivateKey string
	Sandbox    bool
	ResultURL  string
	ServerURL  string
	APIURL     string
}

type Client struct {
	publicKey  string
	privateKey string
	sandbox    bool
	resultURL  string
	serverURL  string
	apiURL     string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		sandbox:    cfg.Sandbox,
		resultURL:  cfg.ResultURL,
		serverURL:  cfg.ServerURL,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// requestPayload - LiqPay API v3 request body, base64-encoded and signed
type requestPayload struct {
	Version     int         `json:"version"`
	PublicKey   string      `json:"public_key"`
	Action      string      `json:"action"`
	Amount      json.Number `json:"amount,omitempty"`
	Currency    string      `json:"currency,omitempty"`
	Description string      `json:"description,omitempty"`
	OrderID     string      `json:"order_id"`
	Sandbox     int         `json:"sandbox,omitempty"`
	ResultURL   string      `json:"result_url,omitempty"`
	ServerURL   string      `json:"server_url,omitempty"`
	Email       string      `json:"email,omitempty"`
	Phone       string      `json:"phone,omitempty"`
}

type statusPayload struct {
	Status         string      `json:"status"`
	PaymentID      int64       `json:"payment_id"`
	OrderID        string      `json:"order_id"`
	Amount         json.Number `json:"amount"`
	Currency       string      `json:"currency"`
	ErrCode        string      `json:"err_code"`
	ErrDescription string      `json:"err_description"`
}

// sign computes base64(sha1(private_key + data + private_key)), the
// signature scheme LiqPay uses for both requests and callbacks.
func (c *Client) sign(data string) string {
	digest := sha1.Sum([]byte(c.privateKey + data + c.privateKey))
	return base64.StdEncoding.EncodeToString(digest[:])
}

func (c *Client) encode(payload *requestPayload) (data, signature string, err error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}
	data = base64.StdEncoding.EncodeToString(body)
	return data, c.sign(data), nil
}

func (c *Client) CreateCheckout(req *domain.CheckoutRequest) (*domain.Checkout, error) {
	payload := &requestPayload{
		Version:     3,
		PublicKey:   c.publicKey,
		Action:      "pay",
		Amount:      json.Number(FormatAmount(req.Amount)),
		Currency:    "UAH",
		Description: req.Description,
		OrderID:     req.OrderNumber,
		ResultURL:   c.resultURL,
		ServerURL:   c.serverURL,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if c.sandbox {
		payload.Sandbox = 1
	}

	data, signature, err := c.encode(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding checkout request: %w", err)
	}

	return &domain.Checkout{
		RedirectURL: fmt.Sprintf("%s3/checkout?data=%s&signature=%s",
			c.apiURL, url.QueryEscape(data), url.QueryEscape(signature)),
		Data:      data,
		Signature: signature,
	}, nil
}

func (c *Client) ParseWebhook(data, signature string) *domain.GatewayStatus {
	expected := c.sign(data)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var payload statusPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	return toGatewayStatus(&payload, raw)
}

func (c *Client) QueryStatus(orderNumber string) (*domain.GatewayStatus, error) {
	payload := &requestPayload{
		Version:   3,
		PublicKey: c.publicKey,
		Action:    "status",
		OrderID:   orderNumber,
	}

	raw, err := c.request(payload)
	if err != nil {
		return nil, err
	}

	var status statusPayload
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}

	return toGatewayStatus(&status, raw), nil
}

func (c *Client) Refund(orderNumber string, amount int64) (*domain.RefundResult, error) {
	payload := &requestPayload{
		Version:   3,
		PublicKey: c.publicKey,
		Action:    "refund",
		OrderID:   orderNumber,
		Amount:    json.Number(FormatAmount(amount)),
	}

	raw, err := c.request(payload)
	if err != nil {
		return nil, err
	}

	var status statusPayload
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decoding refund response: %w", err)
	}

	// LiqPay acks an accepted refund with "reversed" or "success";
	// anything else is a business-level rejection, not a transport error
	return &domain.RefundResult{
		Ok:             status.Status == "reversed" || status.Status == "success",
		Status:         status.Status,
		ErrCode:        status.ErrCode,
		ErrDescription: status.ErrDescription,
		Raw:            string(raw),
	}, nil
}

func (c *Client) request(payload *requestPayload) ([]byte, error) {
	data, signature, err := c.encode(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", payload.Action, err)
	}

	form := url.Values{}
	form.Set("data", data)
	form.Set("signature", signature)

	response, err := c.httpClient.PostForm(c.apiURL+"request", form)
	if err != nil {
		return nil, fmt.Errorf("liqpay %s request: %w", payload.Action, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("liqpay %s request returned status %d", payload.Action, response.StatusCode)
	}

	return body, nil
}

func toGatewayStatus(payload *statusPayload, raw []byte) *domain.GatewayStatus {
	var amount int64
	if payload.Amount != "" {
		if minor, err := ParseAmount(payload.Amount.String()); err == nil {
			amount = minor
		} else if f, ferr := strconv.ParseFloat(payload.Amount.String(), 64); ferr == nil {
			// provider occasionally sends more precision than two places
			amount = int64(f*100 + 0.5)
		}
	}

	return &domain.GatewayStatus{
		OrderNumber:    payload.OrderID,
		Status:         payload.Status,
		PaymentID:      payload.PaymentID,
		Amount:         amount,
		Currency:       payload.Currency,
		ErrCode:        payload.ErrCode,
		ErrDescription: payload.ErrDescription,
		Raw:            string(raw),
	}
}
