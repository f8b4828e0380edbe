package i18n

import "embed"

// LocaleFS holds one YAML file per supported language, each a flat
// key -> text mapping.
//
//go:embed locales/*.yaml
var LocaleFS embed.FS
