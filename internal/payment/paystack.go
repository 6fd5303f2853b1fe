package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
)

// ErrGatewayRejected is returned when the gateway answers with status=false.
var ErrGatewayRejected = errors.New("payment gateway rejected request")

// PaystackClient talks to the Paystack transaction API.
type PaystackClient struct {
	http      *fiber.Client
	secretKey string
	baseURL   string
	timeout   time.Duration
}

// NewPaystackClient builds a client from config.
func NewPaystackClient(cfg config.PaymentConfig) *PaystackClient {
	return &PaystackClient{
		http:      &fiber.Client{},
		secretKey: cfg.SecretKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout(),
	}
}

type paystackEnvelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type paystackInitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type paystackVerifyData struct {
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
	Amount          int64      `json:"amount"`
	Currency        string     `json:"currency"`
	PaidAt          *time.Time `json:"paid_at"`
	GatewayResponse string     `json:"gateway_response"`
}

// Initialize creates a transaction and returns the hosted checkout URL.
func (c *PaystackClient) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	body := fiber.Map{
		"email":     req.Email,
		"amount":    req.Amount,
		"reference": req.Reference,
	}
	if req.CallbackURL != "" {
		body["callback_url"] = req.CallbackURL
	}
	if len(req.Metadata) > 0 {
		body["metadata"] = req.Metadata
	}

	agent := c.http.Post(c.baseURL + "/transaction/initialize")
	agent.JSON(body)

	var out paystackEnvelope[paystackInitializeData]
	if err := c.do(ctx, agent, &out); err != nil {
		return nil, fmt.Errorf("initialize transaction: %w", err)
	}
	return &InitializeResult{
		AuthorizationURL: out.Data.AuthorizationURL,
		AccessCode:       out.Data.AccessCode,
		Reference:        out.Data.Reference,
	}, nil
}

// Verify fetches the state of a transaction by reference.
func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	agent := c.http.Get(c.baseURL + "/transaction/verify/" + url.PathEscape(reference))

	var out paystackEnvelope[paystackVerifyData]
	if err := c.do(ctx, agent, &out); err != nil {
		return nil, fmt.Errorf("verify transaction %s: %w", reference, err)
	}
	return &VerifyResult{
		Reference:       out.Data.Reference,
		Status:          mapPaystackStatus(out.Data.Status),
		Amount:          out.Data.Amount,
		Currency:        out.Data.Currency,
		PaidAt:          out.Data.PaidAt,
		GatewayResponse: out.Data.GatewayResponse,
	}, nil
}

type statusEnvelope interface {
	ok() (bool, string)
}

func (e *paystackEnvelope[T]) ok() (bool, string) {
	return e.Status, e.Message
}

func (c *PaystackClient) do(ctx context.Context, agent *fiber.Agent, out statusEnvelope) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(agent)
		return err
	}

	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.secretKey)
	agent.Timeout(c.timeoutFor(ctx))

	code, body, errs := agent.Struct(out)
	if code >= fiber.StatusBadRequest {
		if ok, msg := out.ok(); !ok && msg != "" {
			return fmt.Errorf("%w: %s (status %d)", ErrGatewayRejected, msg, code)
		}
		return fmt.Errorf("%w: status %d: %s", ErrGatewayRejected, code, truncate(body, 200))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if ok, msg := out.ok(); !ok {
		return fmt.Errorf("%w: %s", ErrGatewayRejected, msg)
	}
	return nil
}

func (c *PaystackClient) timeoutFor(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return c.timeout
	}
	if remaining := time.Until(deadline); remaining < c.timeout {
		return remaining
	}
	return c.timeout
}

func mapPaystackStatus(status string) domain.PaymentStatus {
	switch strings.ToLower(status) {
	case "success":
		return domain.PaymentStatusSuccess
	case "failed", "reversed":
		return domain.PaymentStatusFailed
	case "abandoned":
		return domain.PaymentStatusAbandoned
	default:
		return domain.PaymentStatusPending
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
