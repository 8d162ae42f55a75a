// Package langdetect classifies contract text into a supported language code.
// Detection is best-effort by design: an uncertain result falls back to the
// configured default language and never fails the pipeline.
package langdetect

import (
	"log/slog"
	"strings"

	"github.com/ebolowa/contract-insight/constants"
)

// Stopword inventories for the supported languages. Function words are the
// most reliable cheap signal for en/fr discrimination on legal prose.
var (
	englishStopwords = map[string]struct{}{
		"the": {}, "and": {}, "of": {}, "to": {}, "in": {}, "is": {}, "that": {},
		"for": {}, "shall": {}, "with": {}, "this": {}, "will": {}, "not": {},
		"agreement": {}, "employee": {}, "employer": {}, "by": {}, "be": {},
		"or": {}, "as": {}, "any": {}, "may": {}, "such": {}, "between": {},
	}
	frenchStopwords = map[string]struct{}{
		"le": {}, "la": {}, "les": {}, "de": {}, "des": {}, "du": {}, "et": {},
		"est": {}, "dans": {}, "pour": {}, "que": {}, "qui": {}, "une": {},
		"un": {}, "au": {}, "aux": {}, "par": {}, "sur": {}, "contrat": {},
		"employeur": {}, "salarié": {}, "être": {}, "ne": {}, "pas": {}, "ce": {},
	}
	frenchDiacritics = "éèêëàâäôöûüçîï"
)

type Config struct {
	SampleBytes int                // bounded prefix, default 4096
	MinTokens   int                // below this the text is too short to judge
	Default     constants.Language // fallback language
}

type Detector struct {
	cfg    Config
	logger *slog.Logger
}

func NewDetector(cfg Config, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SampleBytes <= 0 {
		cfg.SampleBytes = 4096
	}
	if cfg.MinTokens <= 0 {
		cfg.MinTokens = 20
	}
	if cfg.Default == "" {
		cfg.Default = constants.DefaultLanguage
	}
	return &Detector{cfg: cfg, logger: logger}
}

// Detect returns the best-guess language for text and whether the guess was
// confident. Uncertain or too-short input yields the configured default with
// certain=false so callers can record the fallback as a warning.
func (d *Detector) Detect(text string) (constants.Language, bool) {
	sample := text
	if len(sample) > d.cfg.SampleBytes {
		sample = sample[:d.cfg.SampleBytes]
		// avoid judging a rune cut in half
		if idx := strings.LastIndexByte(sample, ' '); idx > 0 {
			sample = sample[:idx]
		}
	}

	tokens := strings.Fields(strings.ToLower(sample))
	if len(tokens) < d.cfg.MinTokens {
		d.logger.Warn("language detection sample too short, using default",
			"tokens", len(tokens), "default", d.cfg.Default)
		return d.cfg.Default, false
	}

	var en, fr int
	for _, tok := range tokens {
		tok = strings.Trim(tok, ".,;:!?()'\"«»")
		if _, ok := englishStopwords[tok]; ok {
			en++
		}
		if _, ok := frenchStopwords[tok]; ok {
			fr++
		}
	}
	if strings.ContainsAny(sample, frenchDiacritics) {
		fr += strings.Count(sample, "é") + 2
	}

	total := en + fr
	if total == 0 {
		d.logger.Warn("no language signal in sample, using default", "default", d.cfg.Default)
		return d.cfg.Default, false
	}

	// demand a clear margin before trusting the classification; anything
	// weaker falls back to the default rather than failing the pipeline
	switch {
	case fr > en*2:
		return constants.LangFrench, true
	case en > fr*2:
		return constants.LangEnglish, true
	default:
		d.logger.Debug("ambiguous language signal, using default",
			"en_hits", en, "fr_hits", fr, "default", d.cfg.Default)
		return d.cfg.Default, false
	}
}
