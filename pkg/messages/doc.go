// Package messages provides per-language message catalogs for the
// validation package.
//
// Templates live in one file per language, named after the language code
// (en.yaml, de.yaml, pt-BR.json). Nested maps are flattened into dotted keys,
// so the file
//
//	validation:
//	  is_null: "ist leer"
//	  smaller_than: "kleiner als {0}"
//
// provides the keys validation.is_null and validation.smaller_than, which
// match the validation.Key* constants. Placeholders are positional.
//
// # Usage
//
//	bundle, err := messages.Default(ctx)
//	if err != nil {
//		return err
//	}
//
//	v := validation.New(rules, validation.WithCatalog(bundle.Catalog("de-AT")))
//
// Catalog picks the closest available language ("de-AT" resolves to "de").
// Keys missing in that language fall back to the default language and then
// to validation.DefaultCatalog.
//
// # Configuration
//
// LoadConfig reads VALIDATION_MESSAGES_DIR and VALIDATION_DEFAULT_LANGUAGE
// from the environment (and an optional .env file); FromConfig turns the
// result into a Bundle.
package messages
