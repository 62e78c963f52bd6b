// Package i18n provides internationalization support for the carton service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.unauthorized":             "Unauthorized",
			"error.api_key_required":         "API key is required",
			"error.invalid_api_key":          "Invalid API key",
			"error.forbidden":                "Forbidden",
			"error.not_found":                "Not found",
			"error.box_not_found":            "Box not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.conflict":                 "Conflict",
			"error.validation.items":         "items: at least one item with a positive quantity is required",
			"error.validation.dimensions":    "dimensions: length, width and height must be positive",
			"error.validation.feedback_rule": "feedback rule: items or combo_signature required, correction only on fits=false",
			"error.validation.efficiency":    "packing_efficiency: must be greater than 0 and at most 1",
			"error.catalog_unavailable":      "Carton catalog is temporarily unavailable",
			"error.timeout":                  "Request timeout",

			// Success messages
			"success.box_recommended":    "Carton recommendation completed successfully",
			"success.feedback_recorded":  "Feedback recorded successfully",
			"success.box_created":        "Box created successfully",
			"success.box_updated":        "Box updated successfully",
			"success.box_deleted":        "Box deleted successfully",
			"success.efficiency_updated": "Packing efficiency updated successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":          "Requisição inválida",
			"error.invalid_request_body":     "Corpo da requisição inválido",
			"error.internal_error":           "Ocorreu um erro inesperado",
			"error.unauthorized":             "Não autorizado",
			"error.api_key_required":         "Chave de API é obrigatória",
			"error.invalid_api_key":          "Chave de API inválida",
			"error.forbidden":                "Proibido",
			"error.not_found":                "Não encontrado",
			"error.box_not_found":            "Caixa não encontrada",
			"error.rate_limit_exceeded":      "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                 "Conflito",
			"error.validation.items":         "items: é necessário pelo menos um item com quantidade positiva",
			"error.validation.dimensions":    "dimensões: comprimento, largura e altura devem ser positivos",
			"error.validation.feedback_rule": "regra de feedback: items ou combo_signature obrigatório, correção apenas com fits=false",
			"error.validation.efficiency":    "packing_efficiency: deve ser maior que 0 e no máximo 1",
			"error.catalog_unavailable":      "Catálogo de caixas temporariamente indisponível",
			"error.timeout":                  "Tempo limite da requisição excedido",

			// Success messages
			"success.box_recommended":    "Recomendação de caixa concluída com sucesso",
			"success.feedback_recorded":  "Feedback registrado com sucesso",
			"success.box_created":        "Caixa criada com sucesso",
			"success.box_updated":        "Caixa atualizada com sucesso",
			"success.box_deleted":        "Caixa removida com sucesso",
			"success.efficiency_updated": "Eficiência de embalagem atualizada com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":          "Ongeldig verzoek",
			"error.invalid_request_body":     "Ongeldige aanvraag body",
			"error.internal_error":           "Er is een onverwachte fout opgetreden",
			"error.unauthorized":             "Niet geautoriseerd",
			"error.api_key_required":         "API-sleutel is vereist",
			"error.invalid_api_key":          "Ongeldige API-sleutel",
			"error.forbidden":                "Verboden",
			"error.not_found":                "Niet gevonden",
			"error.box_not_found":            "Doos niet gevonden",
			"error.rate_limit_exceeded":      "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                 "Conflict",
			"error.validation.items":         "items: minstens één item met een positieve hoeveelheid is vereist",
			"error.validation.dimensions":    "afmetingen: lengte, breedte en hoogte moeten positief zijn",
			"error.validation.feedback_rule": "feedbackregel: items of combo_signature vereist, correctie alleen bij fits=false",
			"error.validation.efficiency":    "packing_efficiency: moet groter dan 0 en hoogstens 1 zijn",
			"error.catalog_unavailable":      "Dozencatalogus is tijdelijk niet beschikbaar",
			"error.timeout":                  "Time-out van verzoek",

			// Success messages
			"success.box_recommended":    "Doosaanbeveling succesvol voltooid",
			"success.feedback_recorded":  "Feedback succesvol geregistreerd",
			"success.box_created":        "Doos succesvol aangemaakt",
			"success.box_updated":        "Doos succesvol bijgewerkt",
			"success.box_deleted":        "Doos succesvol verwijderd",
			"success.efficiency_updated": "Verpakkingsefficiëntie succesvol bijgewerkt",
		},
	}
}
