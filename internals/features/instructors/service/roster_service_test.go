package service

import (
	"errors"
	"testing"

	instructorModel "praiativa_backend/internals/features/instructors/model"
	studentModel "praiativa_backend/internals/features/students/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestResolveRoster_SelectedNil(t *testing.T) {
	alunos := []studentModel.StudentModel{{Nome: "Ana"}}
	got := ResolveRoster(nil, alunos, nil)
	if got == nil {
		t.Fatal("esperava slice vazio, veio nil")
	}
	if len(got) != 0 {
		t.Fatalf("esperava roster vazio, veio %d alunos", len(got))
	}
}

func TestResolveRoster_MatchPorNumero(t *testing.T) {
	instrutor := instructorModel.InstructorModel{InstrutorID: 7, InstrutorNumero: "21999990000"}
	alunos := []studentModel.StudentModel{
		{Nome: "Ana", NumeroInstrutor: strPtr("21999990000")},
		{Nome: "Bea", NumeroInstrutor: strPtr("21888880000")},
	}
	got := ResolveRoster([]instructorModel.InstructorModel{instrutor}, alunos, &instrutor)
	if len(got) != 1 || got[0].Nome != "Ana" {
		t.Fatalf("esperava só Ana, veio %v", nomes(got))
	}
}

func TestResolveRoster_MatchPorContatoLegado(t *testing.T) {
	instrutor := instructorModel.InstructorModel{InstrutorID: 3}
	alunos := []studentModel.StudentModel{
		{Nome: "Ana", ContatoInstrutor: intPtr(3)},
		{Nome: "Bea", ContatoInstrutor: intPtr(9)},
	}
	got := ResolveRoster([]instructorModel.InstructorModel{instrutor}, alunos, &instrutor)
	if len(got) != 1 || got[0].Nome != "Ana" {
		t.Fatalf("esperava só Ana, veio %v", nomes(got))
	}
}

// Cadastro incompleto (numero vazio dos dois lados) não pode fundir rosters.
func TestResolveRoster_NumeroVazioNuncaCasa(t *testing.T) {
	instrutor := instructorModel.InstructorModel{InstrutorID: 1, InstrutorNumero: ""}
	alunos := []studentModel.StudentModel{
		{Nome: "Ana", NumeroInstrutor: strPtr("")},
		{Nome: "Bea", NumeroInstrutor: strPtr("   ")},
		{Nome: "Cris"}, // sem chave nenhuma
	}
	got := ResolveRoster([]instructorModel.InstructorModel{instrutor}, alunos, &instrutor)
	if len(got) != 0 {
		t.Fatalf("chave vazia casou: %v", nomes(got))
	}
}

func TestResolveRoster_OrDasChaves(t *testing.T) {
	instrutor := instructorModel.InstructorModel{InstrutorID: 7, InstrutorNumero: "21999990000"}
	alunos := []studentModel.StudentModel{
		{Nome: "Ana", NumeroInstrutor: strPtr("21999990000")},                   // casa pela string
		{Nome: "Bea", ContatoInstrutor: intPtr(3)},                              // instrutor errado
		{Nome: "Cris", ContatoInstrutor: intPtr(7)},                             // casa pela FK legada
		{Nome: "Dani", NumeroInstrutor: strPtr(" 21999990000 ")},                // casa com trim
		{Nome: "Edu", NumeroInstrutor: strPtr(""), ContatoInstrutor: intPtr(7)}, // numero vazio, FK casa
	}
	got := ResolveRoster([]instructorModel.InstructorModel{instrutor}, alunos, &instrutor)
	want := []string{"Ana", "Cris", "Dani", "Edu"}
	if len(got) != len(want) {
		t.Fatalf("esperava %v, veio %v", want, nomes(got))
	}
	for i, n := range want {
		if got[i].Nome != n {
			t.Fatalf("ordem do banco não preservada: esperava %v, veio %v", want, nomes(got))
		}
	}
}

func TestUpdateDefaultPrice_ValorVazio(t *testing.T) {
	// db nil prova que a validação vem antes de qualquer acesso ao banco
	err := UpdateDefaultPrice(nil, 1, "   ")
	if !errors.Is(err, ErrEmptyPrice) {
		t.Fatalf("esperava ErrEmptyPrice, veio %v", err)
	}
}

func nomes(alunos []studentModel.StudentModel) []string {
	out := make([]string, 0, len(alunos))
	for _, a := range alunos {
		out = append(out, a.Nome)
	}
	return out
}
