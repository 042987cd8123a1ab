package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for category and article form fields.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 500
	maxContentLen     = 100_000
	maxVideoURLLen    = 500
)

// validateCategory checks category form inputs and returns the first error found.
func validateCategory(title, description string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "O título é obrigatório."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "O título é muito longo (máximo 200 caracteres)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "A descrição é muito longa (máximo 500 caracteres)."
	}
	return ""
}

// validateArticle checks article form inputs and returns the first error
// found. The category selection is checked here before any write happens.
func validateArticle(title, description, content, categoryID, videoURL string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "O título é obrigatório."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "O título é muito longo (máximo 200 caracteres)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "A descrição é muito longa (máximo 500 caracteres)."
	}
	if strings.TrimSpace(content) == "" {
		return "O conteúdo é obrigatório."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "O conteúdo é muito longo (máximo 100.000 caracteres)."
	}
	if strings.TrimSpace(categoryID) == "" {
		return "Selecione uma categoria."
	}
	if utf8.RuneCountInString(videoURL) > maxVideoURLLen {
		return "A URL do vídeo é muito longa (máximo 500 caracteres)."
	}
	return ""
}
