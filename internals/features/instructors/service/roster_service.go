package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	instructorModel "praiativa_backend/internals/features/instructors/model"
	studentModel "praiativa_backend/internals/features/students/model"
)

var ErrEmptyPrice = errors.New("informe o novo valor padrão")

// StoreError envolve falhas de leitura/escrita contra o banco.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

/* =========================================================
   Roster Resolver
========================================================= */

// ResolveRoster devolve, na ordem recebida do banco, os alunos vinculados ao
// instrutor selecionado. Função pura: nenhum I/O, nenhuma mutação.
//
// Um aluno pertence ao roster quando QUALQUER uma das chaves casa:
//   - numero_instrutor == instrutor_numero (ambos não vazios), ou
//   - contato_instrutor == instrutor_id (chave numérica legada).
//
// Chave string vazia nunca casa: cadastros incompletos não podem
// fundir rosters de instrutores distintos.
func ResolveRoster(instructors []instructorModel.InstructorModel, students []studentModel.StudentModel, selected *instructorModel.InstructorModel) []studentModel.StudentModel {
	if selected == nil {
		return []studentModel.StudentModel{}
	}

	roster := make([]studentModel.StudentModel, 0, len(students))
	for _, aluno := range students {
		if StudentBelongsTo(aluno, *selected) {
			roster = append(roster, aluno)
		}
	}
	return roster
}

// StudentBelongsTo aplica o OR das duas chaves de vínculo.
func StudentBelongsTo(aluno studentModel.StudentModel, instrutor instructorModel.InstructorModel) bool {
	numero := strings.TrimSpace(instrutor.InstrutorNumero)
	if numero != "" && aluno.NumeroInstrutor != nil && strings.TrimSpace(*aluno.NumeroInstrutor) == numero {
		return true
	}
	if aluno.ContatoInstrutor != nil && *aluno.ContatoInstrutor == instrutor.InstrutorID {
		return true
	}
	return false
}

/* =========================================================
   Default price update
========================================================= */

// UpdateDefaultPrice valida antes de encostar no banco: valor vazio nem
// chega a gerar UPDATE. A mudança de preço não afeta vínculo, só exibição;
// o chamador re-resolve o roster depois.
func UpdateDefaultPrice(db *gorm.DB, instructorID int, newPrice string) error {
	if strings.TrimSpace(newPrice) == "" {
		return ErrEmptyPrice
	}

	res := db.Model(&instructorModel.InstructorModel{}).
		Where("instrutor_id = ?", instructorID).
		Update("valor", newPrice)
	if res.Error != nil {
		return &StoreError{Op: "update valor", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &StoreError{Op: "update valor", Err: gorm.ErrRecordNotFound}
	}
	return nil
}
