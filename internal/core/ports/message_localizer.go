package ports

// MessageLocalizer resolves a message key and locale to translated text.
// Implementations are pure lookups with locale fallback; the resolved text
// is interpolated into customer notifications.
type MessageLocalizer interface {
	// Translate returns the text for key in the given locale, falling back
	// to the implementation's default when the locale or key is unknown.
	Translate(key, locale string) string
}
