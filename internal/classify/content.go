package classify

import (
	"strings"

	"github.com/eduextract/bancoimg/models"
)

// ScientificKeywords is the vocabulary that marks surrounding text as
// scientific content. It is exported so callers can substitute or extend
// the list without touching the classification logic.
var ScientificKeywords = []string{
	"química", "física", "biología", "fórmula", "ecuación",
	"gráfico", "tabla", "diagrama", "elemento", "molécula",
	"átomo", "reacción", "experimento", "laboratorio", "ácido",
	"base", "ph", "temperatura", "presión", "volumen", "masa",
	"velocidad", "aceleración", "fuerza", "energía",
}

// ClassifyContent decides whether the text around an image suggests
// scientific content (formulas, charts, lab material) via case-insensitive
// substring membership. Total: always returns one of the two categories.
func ClassifyContent(text string) models.ContentCategory {
	return ClassifyContentWith(text, ScientificKeywords)
}

// ClassifyContentWith runs the membership test against a caller-supplied
// vocabulary.
func ClassifyContentWith(text string, keywords []string) models.ContentCategory {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return models.CategoryScientific
		}
	}
	return models.CategoryGeneral
}
