package messages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fluentval/pkg/validation"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// Option configures a Bundle.
type Option func(*Bundle)

// WithDefaultLanguage sets the language used when a requested language is
// not available or lacks a key.
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) {
		if lang != "" {
			b.defaultLang = lang
		}
	}
}

// WithLogger sets the logger. Missing keys are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Bundle holds message templates for several languages. It is immutable
// after construction and safe for concurrent use.
type Bundle struct {
	templates   map[string]map[string]string
	langs       []string
	defaultLang string
	matcher     language.Matcher
	logger      *slog.Logger
}

// New creates a bundle from already flattened templates keyed by language.
func New(templates map[string]map[string]string, opts ...Option) (*Bundle, error) {
	b := &Bundle{
		templates:   make(map[string]map[string]string, len(templates)),
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	if len(templates) == 0 {
		return nil, ErrNoTranslations
	}

	for lang, tmpl := range templates {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%q: %w", lang, err))
		}
		code := tag.String()
		if b.templates[code] == nil {
			b.templates[code] = make(map[string]string, len(tmpl))
		}
		for k, v := range tmpl {
			b.templates[code][k] = v
		}
	}

	if tag, err := language.Parse(b.defaultLang); err == nil {
		b.defaultLang = tag.String()
	}

	b.langs = make([]string, 0, len(b.templates))
	for lang := range b.templates {
		b.langs = append(b.langs, lang)
	}
	slices.Sort(b.langs)

	// The matcher falls back to its first tag, so the default goes first.
	tags := []language.Tag{language.Make(b.defaultLang)}
	for _, lang := range b.langs {
		if lang != b.defaultLang {
			tags = append(tags, language.Make(lang))
		}
	}
	b.matcher = language.NewMatcher(tags)

	b.logger.Debug("message bundle loaded", "languages", b.langs, "default", b.defaultLang)
	return b, nil
}

// Load reads every *.yaml, *.yml and *.json file in the root of fsys. The
// file name without extension is the language code ("de.yaml" → "de").
// Files in the same language are merged; later files win on duplicate keys.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	templates := make(map[string]map[string]string)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		parser := parserFor(name)
		if parser == nil {
			continue
		}

		lang := strings.TrimSuffix(name, path.Ext(name))
		flat, err := loadFile(fsys, name, parser)
		if err != nil {
			return nil, err
		}
		if templates[lang] == nil {
			templates[lang] = make(map[string]string, len(flat))
		}
		for k, v := range flat {
			templates[lang][k] = v
		}
	}

	return New(templates, opts...)
}

// LoadDir is Load for a directory on disk.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*Bundle, error) {
	return Load(ctx, os.DirFS(dir), opts...)
}

func loadFile(fsys fs.FS, name string, parser Parser) (map[string]string, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, errors.Join(ErrNoTranslations, fmt.Errorf("file %q is empty", name))
	}

	data, err := parser.Parse(content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}

	flat := make(map[string]string)
	if err := flatten("", data, flat); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return flat, nil
}

// Languages returns the available language codes, sorted.
func (b *Bundle) Languages() []string {
	return slices.Clone(b.langs)
}

// DefaultLanguage returns the fallback language code.
func (b *Bundle) DefaultLanguage() string {
	return b.defaultLang
}

// Match returns the available language that best serves the preferred
// languages, given in priority order. Unknown or unparsable preferences
// resolve to the default language.
func (b *Bundle) Match(preferred ...string) string {
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return b.defaultLang
	}

	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.defaultLang
	}
	if idx == 0 {
		return b.defaultLang
	}
	return b.matchedLang(idx)
}

// matchedLang maps a matcher index back to a language code, mirroring the
// tag order built in New.
func (b *Bundle) matchedLang(idx int) string {
	i := 0
	for _, lang := range b.langs {
		if lang == b.defaultLang {
			continue
		}
		i++
		if i == idx {
			return lang
		}
	}
	return b.defaultLang
}

// Catalog returns a catalog for the best match of lang. It implements
// validation.Catalog.
func (b *Bundle) Catalog(lang string) *Catalog {
	return &Catalog{bundle: b, lang: b.Match(lang)}
}

// Lookup returns the raw template for key in lang without fallbacks.
func (b *Bundle) Lookup(lang, key string) (string, bool) {
	tmpl, ok := b.templates[lang][key]
	return tmpl, ok
}

// Catalog renders messages in one language of a Bundle.
type Catalog struct {
	bundle *Bundle
	lang   string
}

var _ validation.Catalog = (*Catalog)(nil)

// Message resolves key in the catalog language, then the bundle default
// language, then the built-in English templates.
func (c *Catalog) Message(key string, args ...any) string {
	if tmpl, ok := c.bundle.Lookup(c.lang, key); ok {
		return validation.Format(tmpl, args...)
	}
	if tmpl, ok := c.bundle.Lookup(c.bundle.defaultLang, key); ok {
		c.bundle.logger.Debug("message missing in language, using default",
			"lang", c.lang, "key", key)
		return validation.Format(tmpl, args...)
	}
	c.bundle.logger.Debug("message missing in bundle", "lang", c.lang, "key", key)
	return validation.DefaultCatalog().Message(key, args...)
}

// Language returns the language the catalog resolves messages in.
func (c *Catalog) Language() string {
	return c.lang
}
