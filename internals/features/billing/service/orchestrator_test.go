package service

import (
	"context"
	"errors"
	"testing"

	instructorModel "praiativa_backend/internals/features/instructors/model"
	studentModel "praiativa_backend/internals/features/students/model"
)

// fakeProvider registra a última requisição e devolve resposta/erro fixos.
type fakeProvider struct {
	calls int
	last  CheckoutRequest
	resp  CheckoutResponse
	err   error
}

func (f *fakeProvider) CreateSession(_ context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	f.calls++
	f.last = req
	return f.resp, f.err
}

func newTestService(p CheckoutProvider) *BillingService {
	// DB nil: auditoria é pulada, o fluxo de cobrança não depende dela
	return NewBillingService(nil, p, "edge")
}

func TestCreateBillingSession_DatasFaltando(t *testing.T) {
	fake := &fakeProvider{resp: CheckoutResponse{URL: "https://pay/x", SessionID: "s1"}}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{Nome: "Ana", Valor: "80"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7, Atividade: "Surf"}

	casos := []struct{ emissao, vencimento string }{
		{"", "2026-09-10"},
		{"2026-08-30", ""},
		{"   ", "2026-09-10"},
		{"", ""},
	}
	for i, c := range casos {
		_, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, c.emissao, c.vencimento, "pix")
		if !errors.Is(err, ErrMissingDates) {
			t.Fatalf("caso %d: esperava ErrMissingDates, veio %v", i, err)
		}
	}
	if fake.calls != 0 {
		t.Fatalf("provedor não podia ter sido chamado, foi %d vez(es)", fake.calls)
	}
}

func TestCreateBillingSession_ValorInvalidoAntesDoProvedor(t *testing.T) {
	fake := &fakeProvider{resp: CheckoutResponse{URL: "https://pay/x", SessionID: "s1"}}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{Nome: "Ana", Valor: "abc"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7}

	_, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, "2026-08-30", "2026-09-10", "pix")
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("esperava ErrInvalidAmount, veio %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("provedor não podia ter sido chamado, foi %d vez(es)", fake.calls)
	}
}

// Datas ausentes vencem valor inválido: a primeira pré-condição ganha.
func TestCreateBillingSession_OrdemDasPrecondicoes(t *testing.T) {
	fake := &fakeProvider{}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{Nome: "Ana", Valor: "abc"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7}

	_, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, "", "", "pix")
	if !errors.Is(err, ErrMissingDates) {
		t.Fatalf("esperava ErrMissingDates antes de ErrInvalidAmount, veio %v", err)
	}
}

func TestCreateBillingSession_Sucesso(t *testing.T) {
	fake := &fakeProvider{resp: CheckoutResponse{URL: "https://pay/x", SessionID: "s1"}}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{AlunoID: 11, Nome: "Ana", Valor: "80", Atividade: "Surf"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7, Atividade: "Canoa"}

	result, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, "2026-08-30", "2026-09-10", "boleto")
	if err != nil {
		t.Fatal(err)
	}

	if fake.calls != 1 {
		t.Fatalf("esperava 1 chamada ao provedor, foram %d", fake.calls)
	}
	req := fake.last
	if req.Amount != 8000 {
		t.Fatalf("esperava 8000 centavos, veio %d", req.Amount)
	}
	if req.Currency != "brl" {
		t.Fatalf("esperava brl, veio %s", req.Currency)
	}
	if req.Description != "Surf - Ana" {
		t.Fatalf("descrição errada: %s", req.Description)
	}
	if req.InstructorID != 7 {
		t.Fatalf("instructor_id errado: %d", req.InstructorID)
	}
	if len(req.Students) != 1 || req.Students[0].AlunoID != 11 {
		t.Fatal("payload deve carregar o registro do aluno")
	}
	if req.IssueDate != "2026-08-30" || req.DueDate != "2026-09-10" {
		t.Fatalf("datas repassadas erradas: %s / %s", req.IssueDate, req.DueDate)
	}

	if result.SessionID != "s1" || result.URL != "https://pay/x" {
		t.Fatalf("resultado errado: %+v", result)
	}
	if result.Resumo.Valor != "80.00" {
		t.Fatalf("resumo com valor errado: %s", result.Resumo.Valor)
	}
	if result.Resumo.DataEmissao != "2026-08-30" || result.Resumo.DataVencimento != "2026-09-10" {
		t.Fatalf("resumo deve repassar as datas sem mutação: %+v", result.Resumo)
	}
}

// Aluno sem atividade herda a do instrutor na descrição.
func TestCreateBillingSession_AtividadeDoInstrutor(t *testing.T) {
	fake := &fakeProvider{resp: CheckoutResponse{URL: "https://pay/x", SessionID: "s1"}}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{Nome: "Ana", Valor: "80"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7, Atividade: "Canoa"}

	if _, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, "2026-08-30", "2026-09-10", "pix"); err != nil {
		t.Fatal(err)
	}
	if fake.last.Description != "Canoa - Ana" {
		t.Fatalf("descrição errada: %s", fake.last.Description)
	}
}

func TestCreateBillingSession_ErroDoProvedor(t *testing.T) {
	fake := &fakeProvider{err: &CheckoutError{Reason: "Stripe recusou", Detail: "status=400"}}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{Nome: "Ana", Valor: "80"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7}

	_, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, "2026-08-30", "2026-09-10", "pix")
	var ce *CheckoutError
	if !errors.As(err, &ce) {
		t.Fatalf("esperava CheckoutError, veio %v", err)
	}
	if ce.Reason != "Stripe recusou" {
		t.Fatalf("razão não preservada: %q", ce.Reason)
	}
}

func TestCreateBillingSession_RespostaSemURL(t *testing.T) {
	fake := &fakeProvider{resp: CheckoutResponse{SessionID: "s1"}}
	svc := newTestService(fake)
	aluno := studentModel.StudentModel{Nome: "Ana", Valor: "80"}
	instrutor := instructorModel.InstructorModel{InstrutorID: 7}

	_, err := svc.CreateBillingSession(context.Background(), aluno, instrutor, "2026-08-30", "2026-09-10", "pix")
	var ce *CheckoutError
	if !errors.As(err, &ce) {
		t.Fatalf("resposta sem url tem que virar CheckoutError, veio %v", err)
	}
}
