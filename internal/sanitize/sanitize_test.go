package sanitize

import (
	"strings"
	"testing"
	"unicode"
)

func TestDocPrefix(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "short name passes through camel-cased",
			path:     "banco quimica.pdf",
			expected: "BancoQuimica",
		},
		{
			name:     "accents folded and punctuation stripped",
			path:     "Lectura Critica - Sesión 11!.pdf",
			expected: "LectCritSesi",
		},
		{
			name:     "long name with many significant words abbreviates to 3 chars each",
			path:     "LECTURA CRITICA JUAN CAMILO.pdf",
			expected: "LecCriJuaCam",
		},
		{
			name:     "only the first four significant words contribute",
			path:     "ciencias naturales ejercicios resueltos volumen segundo.pdf",
			expected: "CieNatEjeRes",
		},
		{
			name:     "path components ignored",
			path:     "/tmp/archivos/examen.pdf",
			expected: "Examen",
		},
		{
			name:     "symbols only falls back",
			path:     "!!!.pdf",
			expected: "PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DocPrefix(tt.path)
			if result != tt.expected {
				t.Errorf("DocPrefix(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestBankLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "spaces collapse into camel case",
			input:    "banco de preguntas",
			expected: "BancoDePregunta", // truncated at 15
		},
		{
			name:     "short label kept",
			input:    "icfes 2024",
			expected: "Icfes2024",
		},
		{
			name:     "empty input falls back",
			input:    "",
			expected: "BancoPreguntas",
		},
		{
			name:     "only punctuation falls back",
			input:    "¡¿?!",
			expected: "BancoPreguntas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BankLabel(tt.input)
			if result != tt.expected {
				t.Errorf("BankLabel(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFolderPrefix(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "folder name cleaned",
			path:     "/home/user/S11-C primera sesión _",
			expected: "S11CPrimeraSesion",
		},
		{
			name:     "trailing slash ignored",
			path:     "imagenes lectura/",
			expected: "ImagenesLectura",
		},
		{
			name:     "unusable name falls back",
			path:     "///",
			expected: "Carpeta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FolderPrefix(tt.path)
			if result != tt.expected {
				t.Errorf("FolderPrefix(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}

// Tokens must stay within their bound, never come back empty, and be
// stable for the same input.
func TestTokenProperties(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"Lectura Critica - Sesión 11!",
		"   --- ___   ",
		"UN NOMBRE EXTREMADAMENTE LARGO PARA UN DOCUMENTO DE PRUEBA",
		"ñandú año señal",
		"123 456 789",
	}

	for _, in := range inputs {
		first := Token(in, 15, "Fallback")
		second := Token(in, 15, "Fallback")

		if first != second {
			t.Errorf("Token(%q) not deterministic: %q vs %q", in, first, second)
		}
		if first == "" {
			t.Errorf("Token(%q) returned empty string", in)
		}
		if len([]rune(first)) > 15 {
			t.Errorf("Token(%q) = %q exceeds limit 15", in, first)
		}
		for _, r := range first {
			if unicode.IsSpace(r) {
				t.Errorf("Token(%q) = %q contains whitespace", in, first)
			}
		}
		if strings.ContainsAny(first, "!¡¿?.-") {
			t.Errorf("Token(%q) = %q contains punctuation", in, first)
		}
	}
}
