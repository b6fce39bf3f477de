package service

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	studentModel "praiativa_backend/internals/features/students/model"
)

// ResolveAmount aplica a regra de fallback do valor do aluno:
// valor_mensalidade (numérico) tem preferência; senão, valor (string decimal).
// Resolvido uma única vez na borda; o resto do fluxo só vê o decimal.
func ResolveAmount(aluno studentModel.StudentModel) (decimal.Decimal, error) {
	if aluno.ValorMensalidade != nil {
		v := *aluno.ValorMensalidade
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		return decimal.NewFromFloat(v), nil
	}

	s := strings.TrimSpace(aluno.Valor)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// ToMinorUnits converte reais para centavos inteiros, arredondando para o
// centavo mais próximo (metade para longe do zero). Aritmética decimal,
// sem drift de float binário — float32/float64 não garantem exatidão aqui.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
