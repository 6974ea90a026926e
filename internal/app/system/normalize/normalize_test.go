package normalize

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"École Française", "ecole francaise"},
		{"  Jóvenes Norte  ", "jovenes norte"},
		{"MIÉRCOLES", "miercoles"},
		{"Años", "anos"},
		{"plain", "plain"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Fold(tt.input)
			if got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Edad Mínima", "edadminima"},
		{"edad_minima", "edadminima"},
		{"EdadMinima", "edadminima"},
		{"Categoría", "categoria"},
		{"Tipo Grupo", "tipogrupo"},
		{"Dirigido a", "dirigidoa"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Key(tt.input)
			if got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ana Pérez", "Ana Pérez"},
		{"  Ana   Pérez  ", "Ana Pérez"},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"lunes", "Lunes", true},
		{"LUNES", "Lunes", true},
		{"miercoles", "Miércoles", true},
		{"MIÉRCOLES", "Miércoles", true},
		{"Sabado", "Sábado", true},
		{" domingo ", "Domingo", true},
		{"monday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Day(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Day(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestModality(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Presencial", "Presencial", true},
		{"presencial (templo)", "Presencial", true},
		{"ZOOM", "Virtual", true},
		{"virtual", "Virtual", true},
		{"Teams meeting", "Virtual", true},
		{"online", "Virtual", true},
		{"Híbrido", "Híbrido", true},
		{"hibrido", "Híbrido", true},
		{"Mixto", "Híbrido", true},
		{"salon", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Modality(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Modality(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
