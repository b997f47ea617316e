// Package i18n renders message keys in the visitor's language.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the available languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.French}

// Translator resolves Accept-Language headers and renders message keys.
// Keys without a translation render as themselves.
type Translator struct {
	matcher  language.Matcher
	catalog  catalog.Catalog
	printers map[language.Tag]*message.Printer
}

// New builds a Translator over the bundled catalog.
func New() (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := b.SetString(language.English, e.key, e.en); err != nil {
			return nil, fmt.Errorf("catalog en %s: %w", e.key, err)
		}
		if err := b.SetString(language.French, e.key, e.fr); err != nil {
			return nil, fmt.Errorf("catalog fr %s: %w", e.key, err)
		}
	}

	t := &Translator{
		matcher:  language.NewMatcher(Supported),
		catalog:  b,
		printers: make(map[language.Tag]*message.Printer, len(Supported)),
	}
	for _, tag := range Supported {
		t.printers[tag] = message.NewPrinter(tag, message.Catalog(b))
	}
	return t, nil
}

// Match picks the supported language closest to an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, _ := t.matcher.Match(tags...)
	return Supported[idx]
}

// Translate renders key in lang.
func (t *Translator) Translate(lang language.Tag, key string) string {
	p, ok := t.printers[lang]
	if !ok {
		p = t.printers[Supported[0]]
	}
	return p.Sprintf(key)
}

// Has reports whether key is in the catalog.
func (t *Translator) Has(key string) bool {
	_, ok := index[key]
	return ok
}

type entry struct {
	key string
	en  string
	fr  string
}

var index = func() map[string]struct{} {
	m := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		m[e.key] = struct{}{}
	}
	return m
}()
