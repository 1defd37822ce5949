package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"alice@example.com", false},
		{"a.b+c@sub.example.fr", false},
		{"", true},
		{"pas-un-email", true},
		{"manque@domaine", true},
		{"@example.com", true},
	}
	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) erreur = %v, wantErr = %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("password123"); err != nil {
		t.Errorf("ValidatePassword() erreur = %v pour un mot de passe valide", err)
	}
	if err := ValidatePassword("court"); err == nil {
		t.Error("ValidatePassword() devrait refuser un mot de passe de moins de 8 caractères")
	}
	if err := ValidatePassword(""); err == nil {
		t.Error("ValidatePassword() devrait refuser un mot de passe vide")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("nom", "Dupont"); err != nil {
		t.Errorf("ValidateName() erreur = %v pour un nom valide", err)
	}
	if err := ValidateName("nom", "D"); err == nil {
		t.Error("ValidateName() devrait refuser un nom d'un seul caractère")
	}
	if err := ValidateName("prénom", "  "); err == nil {
		t.Error("ValidateName() devrait refuser un prénom composé d'espaces")
	}
}
