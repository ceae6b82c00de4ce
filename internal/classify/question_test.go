package classify

import "testing"

func TestIdentifyQuestion(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "section numbering with header",
			text:     "1.21 Pregunta 21",
			expected: "Pregunta_21",
		},
		{
			name:     "plain header",
			text:     "Pregunta 7\nElija la respuesta correcta",
			expected: "Pregunta_7",
		},
		{
			name:     "last header wins",
			text:     "Pregunta 3 dice una cosa\nmientras Pregunta 9 dice otra",
			expected: "Pregunta_9",
		},
		{
			name:     "collapsed whitespace",
			text:     "texto Pregunta21 texto",
			expected: "Pregunta_21",
		},
		{
			name:     "case insensitive",
			text:     "PREGUNTA 14",
			expected: "Pregunta_14",
		},
		{
			name:     "line numbering convention",
			text:     "introduccion\n1.33\nresto del texto",
			expected: "Pregunta_33",
		},
		{
			name:     "numeric fallback keeps last in-range number",
			text:     "el experimento uso 12 gramos y despues 38 mililitros",
			expected: "Pregunta_38",
		},
		{
			name:     "numbers out of range are ignored",
			text:     "en el año 1999 hubo 87 casos",
			expected: "Pregunta_Desconocida",
		},
		{
			name:     "no evidence at all",
			text:     "sin contenido numerico",
			expected: "Pregunta_Desconocida",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "Pregunta_Desconocida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IdentifyQuestion(tt.text)
			if result != tt.expected {
				t.Errorf("IdentifyQuestion(%q) = %q, want %q", tt.text, result, tt.expected)
			}
		})
	}
}

// The cascade must prefer the section-numbered form over looser patterns
// even when both appear.
func TestIdentifyQuestionPriority(t *testing.T) {
	text := "Pregunta 5 es la anterior\n1.22 Pregunta 22\nmas texto"
	if got := IdentifyQuestion(text); got != "Pregunta_22" {
		t.Errorf("IdentifyQuestion() = %q, want Pregunta_22", got)
	}
}
