// Package i18n provides internationalization support for the packaging service.
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
		// Fallback to default locale
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
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
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
			"error.invalid_request":                  "Invalid request",
			"error.invalid_request_body":             "Invalid request body",
			"error.internal_error":                   "An unexpected error occurred",
			"error.not_found":                        "Not found",
			"error.rate_limit_exceeded":              "Too many requests, please try again later",
			"error.timeout":                          "Request timeout",
			"error.validation.requested_base_units":  "requested_base_units: must not be negative",
			"error.validation.items":                 "items: each entry needs a product and a non-negative quantity",
			"error.validation.pallet_id":             "pallet_id: is required",
			"error.packaging_not_found":              "Packaging type not found for this product",
			"error.no_base_unit":                     "Product has no single base unit packaging defined",
			"error.no_feasible_pallet":               "No available pallet can carry this load",

			// Success messages
			"success.stock_consolidated": "Stock consolidation completed successfully",
			"success.pick_planned":       "Pick plan computed successfully",
			"success.pallets_selected":   "Pallet selection completed successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":                  "Requisição inválida",
			"error.invalid_request_body":             "Corpo da requisição inválido",
			"error.internal_error":                   "Ocorreu um erro inesperado",
			"error.not_found":                        "Não encontrado",
			"error.rate_limit_exceeded":              "Muitas requisições, tente novamente mais tarde",
			"error.timeout":                          "Tempo de requisição esgotado",
			"error.validation.requested_base_units":  "requested_base_units: não pode ser negativo",
			"error.validation.items":                 "items: cada entrada precisa de um produto e quantidade não negativa",
			"error.validation.pallet_id":             "pallet_id: é obrigatório",
			"error.packaging_not_found":              "Tipo de embalagem não encontrado para este produto",
			"error.no_base_unit":                     "Produto sem embalagem de unidade base definida",
			"error.no_feasible_pallet":               "Nenhum palete disponível suporta esta carga",

			// Success messages
			"success.stock_consolidated": "Consolidação de estoque concluída com sucesso",
			"success.pick_planned":       "Plano de separação calculado com sucesso",
			"success.pallets_selected":   "Seleção de paletes concluída com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":                  "Ongeldig verzoek",
			"error.invalid_request_body":             "Ongeldige aanvraag body",
			"error.internal_error":                   "Er is een onverwachte fout opgetreden",
			"error.not_found":                        "Niet gevonden",
			"error.rate_limit_exceeded":              "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":                          "Time-out van verzoek",
			"error.validation.requested_base_units":  "requested_base_units: mag niet negatief zijn",
			"error.validation.items":                 "items: elke regel vereist een product en een niet-negatieve hoeveelheid",
			"error.validation.pallet_id":             "pallet_id: is verplicht",
			"error.packaging_not_found":              "Verpakkingstype niet gevonden voor dit product",
			"error.no_base_unit":                     "Product heeft geen enkele basisverpakking gedefinieerd",
			"error.no_feasible_pallet":               "Geen beschikbare pallet kan deze lading dragen",

			// Success messages
			"success.stock_consolidated": "Voorraadconsolidatie succesvol afgerond",
			"success.pick_planned":       "Pickplan succesvol berekend",
			"success.pallets_selected":   "Palletselectie succesvol afgerond",
		},
	}
}
