package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEdgeCheckoutClient_Sucesso(t *testing.T) {
	var got CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("esperava POST, veio %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type errado: %s", ct)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer chave-teste" {
			t.Errorf("Authorization errado: %s", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("payload inválido: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CheckoutResponse{URL: "https://pay/x", SessionID: "cs_123"})
	}))
	defer srv.Close()

	client := NewEdgeCheckoutClient(srv.URL, "chave-teste")
	resp, err := client.CreateSession(context.Background(), CheckoutRequest{
		Amount:      10050,
		Currency:    "brl",
		Description: "Surf - Ana",
		PaymentType: "pix",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.URL != "https://pay/x" || resp.SessionID != "cs_123" {
		t.Fatalf("resposta errada: %+v", resp)
	}
	if got.Amount != 10050 || got.Currency != "brl" {
		t.Fatalf("payload enviado errado: %+v", got)
	}
}

func TestEdgeCheckoutClient_ErroComCorpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(edgeErrorBody{Error: "Valor inválido", Details: "amount must be positive"})
	}))
	defer srv.Close()

	client := NewEdgeCheckoutClient(srv.URL, "")
	_, err := client.CreateSession(context.Background(), CheckoutRequest{})
	var ce *CheckoutError
	if !errors.As(err, &ce) {
		t.Fatalf("esperava CheckoutError, veio %v", err)
	}
	if ce.Reason != "Valor inválido" {
		t.Fatalf("razão exibível errada: %q", ce.Reason)
	}
	if ce.Error() != "Valor inválido" {
		t.Fatalf("Error() deve expor a razão: %q", ce.Error())
	}
}

func TestEdgeCheckoutClient_ErroSemCorpoParseavel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := NewEdgeCheckoutClient(srv.URL, "")
	_, err := client.CreateSession(context.Background(), CheckoutRequest{})
	var ce *CheckoutError
	if !errors.As(err, &ce) {
		t.Fatalf("esperava CheckoutError, veio %v", err)
	}
	// sem razão do provedor, a mensagem genérica segura o usuário
	if ce.Error() != "falha ao criar sessão de cobrança" {
		t.Fatalf("mensagem genérica errada: %q", ce.Error())
	}
}

func TestEdgeCheckoutClient_RespostaInvalida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	client := NewEdgeCheckoutClient(srv.URL, "")
	_, err := client.CreateSession(context.Background(), CheckoutRequest{})
	var ce *CheckoutError
	if !errors.As(err, &ce) {
		t.Fatalf("esperava CheckoutError, veio %v", err)
	}
}
