package service

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	studentModel "praiativa_backend/internals/features/students/model"
)

func floatPtr(f float64) *float64 { return &f }

func TestResolveAmount_PreferenciaMensalidade(t *testing.T) {
	aluno := studentModel.StudentModel{
		Valor:            "999.99",
		ValorMensalidade: floatPtr(120.5),
	}
	got, err := ResolveAmount(aluno)
	if err != nil {
		t.Fatal(err)
	}
	if got.StringFixed(2) != "120.50" {
		t.Fatalf("esperava 120.50, veio %s", got.StringFixed(2))
	}
}

func TestResolveAmount_FallbackValorString(t *testing.T) {
	aluno := studentModel.StudentModel{Valor: " 100.50 "}
	got, err := ResolveAmount(aluno)
	if err != nil {
		t.Fatal(err)
	}
	if ToMinorUnits(got) != 10050 {
		t.Fatalf("esperava 10050 centavos, veio %d", ToMinorUnits(got))
	}
}

func TestResolveAmount_Invalidos(t *testing.T) {
	casos := []studentModel.StudentModel{
		{Valor: ""},
		{Valor: "   "},
		{Valor: "cem reais"},
		{ValorMensalidade: floatPtr(math.NaN())},
		{ValorMensalidade: floatPtr(math.Inf(1))},
	}
	for i, aluno := range casos {
		if _, err := ResolveAmount(aluno); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("caso %d: esperava ErrInvalidAmount, veio %v", i, err)
		}
	}
}

func TestToMinorUnits_Arredondamento(t *testing.T) {
	casos := []struct {
		in   string
		want int64
	}{
		{"100.50", 10050},
		{"80", 8000},
		{"49.999", 5000}, // meio centavo para cima
		{"49.994", 4999}, // abaixo do meio, para baixo
		{"0.005", 1},     // metade longe do zero
	}
	for _, c := range casos {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := ToMinorUnits(d); got != c.want {
			t.Fatalf("%s: esperava %d centavos, veio %d", c.in, c.want, got)
		}
	}
}
