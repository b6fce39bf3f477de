package service

import (
	"context"
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Gateway alternativo: Midtrans Snap
========================================================= */

// SnapCheckoutProvider adapta o Snap ao contrato CheckoutProvider:
// token ⇒ session_id, redirect_url ⇒ url.
type SnapCheckoutProvider struct {
	client snap.Client
}

func NewSnapCheckoutProvider(serverKey string, useProduction bool) *SnapCheckoutProvider {
	p := &SnapCheckoutProvider{}
	if useProduction {
		p.client.New(serverKey, midtrans.Production)
	} else {
		p.client.New(serverKey, midtrans.Sandbox)
	}
	return p
}

func (p *SnapCheckoutProvider) CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	orderID := fmt.Sprintf("COBRANCA-%d", time.Now().UnixNano())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Price: req.Amount,
				Qty:   1,
				Name:  truncate(req.Description, 50),
			},
		},
	}

	resp, err := p.client.CreateTransaction(snapReq)
	if err != nil {
		return CheckoutResponse{}, &CheckoutError{Detail: err.Error()}
	}
	if resp.RedirectURL == "" {
		return CheckoutResponse{}, &CheckoutError{Detail: "snap sem redirect_url"}
	}
	return CheckoutResponse{URL: resp.RedirectURL, SessionID: resp.Token}, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
