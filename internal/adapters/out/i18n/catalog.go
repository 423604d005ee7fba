// Package i18n provides the message catalog backing customer notifications.
// The catalog resolves a message key and locale hint to human-readable text,
// falling back through the default locale down to English.
package i18n

import "strings"

const fallbackLocale = "en"

// messages holds notification texts per locale per message key.
var messages = map[string]map[string]string{
	"en": {
		"msg_order_accepted":    "Your order has been accepted!",
		"msg_cooking_completed": "Your order is ready to pick up!",
	},
	"ja": {
		"msg_order_accepted":    "ご注文を承りました！",
		"msg_cooking_completed": "ご注文の準備ができました！",
	},
	"es": {
		"msg_order_accepted":    "¡Su pedido ha sido aceptado!",
		"msg_cooking_completed": "¡Su pedido está listo para recoger!",
	},
}

// Catalog translates notification message keys. Implements
// ports.MessageLocalizer.
type Catalog struct {
	defaultLocale string
}

// NewCatalog creates a catalog with the given default locale. The default is
// used when the requested locale has no translations.
func NewCatalog(defaultLocale string) *Catalog {
	return &Catalog{defaultLocale: normalize(defaultLocale)}
}

// Translate resolves a message key for the given locale. Unknown locales fall
// back to the catalog default, then to English. An unknown key is returned
// as-is so the notification still carries a usable text.
func (c *Catalog) Translate(key, locale string) string {
	for _, lng := range []string{normalize(locale), c.defaultLocale, fallbackLocale} {
		if texts, ok := messages[lng]; ok {
			if text, ok := texts[key]; ok {
				return text
			}
		}
	}
	return key
}

// normalize reduces a locale tag to its language subtag, e.g. "en-US" to "en".
func normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}
