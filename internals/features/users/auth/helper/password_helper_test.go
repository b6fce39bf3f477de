package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "segredo123" {
		t.Fatal("hash não pode ser a senha em claro")
	}
	if err := CheckPasswordHash(hash, "segredo123"); err != nil {
		t.Fatalf("senha correta rejeitada: %v", err)
	}
	if err := CheckPasswordHash(hash, "outra"); err == nil {
		t.Fatal("senha errada aceita")
	}
}

func TestValidateRegisterInput(t *testing.T) {
	casos := []struct {
		nome                           string
		email, password, nomeC, contato string
		wantErr                        bool
	}{
		{"ok", "ana@praiativa.com.br", "segredo", "Ana", "21999990000", false},
		{"email invalido", "ana@", "segredo", "Ana", "21999990000", true},
		{"senha curta", "ana@praiativa.com.br", "123", "Ana", "21999990000", true},
		{"sem nome", "ana@praiativa.com.br", "segredo", "", "21999990000", true},
		{"sem contato", "ana@praiativa.com.br", "segredo", "Ana", "", true},
	}
	for _, c := range casos {
		err := ValidateRegisterInput(c.email, c.password, c.nomeC, c.contato)
		if (err != nil) != c.wantErr {
			t.Fatalf("%s: err=%v, wantErr=%v", c.nome, err, c.wantErr)
		}
	}
}
