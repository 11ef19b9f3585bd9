package main

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// NewLocalizer builds a localizer for the given BCP 47 tag, falling back to
// English for messages the locale does not translate.
func NewLocalizer(locale string) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFiles, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", entry.Name(), err)
		}
	}

	return i18n.NewLocalizer(bundle, locale, "en"), nil
}
