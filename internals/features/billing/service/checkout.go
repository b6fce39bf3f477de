package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	studentModel "praiativa_backend/internals/features/students/model"
)

/* =========================================================
   Contrato do provedor de checkout
========================================================= */

// CheckoutRequest é o payload normalizado enviado ao provedor.
// amount sempre em centavos (unidade mínima da moeda).
type CheckoutRequest struct {
	Amount       int64                       `json:"amount"`
	Currency     string                      `json:"currency"`
	Description  string                      `json:"description"`
	InstructorID int                         `json:"instructor_id"`
	Students     []studentModel.StudentModel `json:"students"`
	PaymentType  string                      `json:"payment_type"`
	DueDate      string                      `json:"due_date"`
	IssueDate    string                      `json:"issue_date"`
}

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CheckoutProvider cria UMA sessão de checkout por chamada.
// Sem retry local: retries são responsabilidade do chamador/provedor.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error)
}

// CheckoutError: a chamada externa falhou ou a resposta veio sem URL.
// Reason é a mensagem exibível; Detail vai só para o log.
type CheckoutError struct {
	Reason string
	Detail string
}

func (e *CheckoutError) Error() string {
	if e.Reason == "" {
		return "falha ao criar sessão de cobrança"
	}
	return e.Reason
}

/* =========================================================
   Cliente HTTP (edge function create-payment)
========================================================= */

type edgeErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type EdgeCheckoutClient struct {
	URL    string
	Key    string
	Client *http.Client
}

func NewEdgeCheckoutClient(url, key string) *EdgeCheckoutClient {
	return &EdgeCheckoutClient{
		URL:    url,
		Key:    key,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *EdgeCheckoutClient) CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return CheckoutResponse{}, &CheckoutError{Detail: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return CheckoutResponse{}, &CheckoutError{Detail: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.Key != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Key)
	}

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return CheckoutResponse{}, &CheckoutError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return CheckoutResponse{}, &CheckoutError{Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb edgeErrorBody
		_ = json.Unmarshal(body, &eb)
		return CheckoutResponse{}, &CheckoutError{
			Reason: eb.Error,
			Detail: fmt.Sprintf("status=%d details=%s", resp.StatusCode, eb.Details),
		}
	}

	var out CheckoutResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return CheckoutResponse{}, &CheckoutError{Detail: "resposta inválida do provedor: " + err.Error()}
	}
	return out, nil
}
