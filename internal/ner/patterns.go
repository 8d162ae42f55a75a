package ner

import (
	"regexp"
	"strings"

	"github.com/ebolowa/contract-insight/constants"
)

// Deterministic pattern rules augmenting the statistical tagger. Salary
// phrasing in the target corpus (FCFA amounts, "per month" clauses) is too
// regular to leave to the model alone.
var (
	reSalaryLabeled = regexp.MustCompile(`(?i)(?:salary|salaire|remuneration|rémunération)[:\s]+([\d][\d\s.,]*)\s*(fcfa|euros?|dollars?|\$|€)`)
	reSalaryPeriod  = regexp.MustCompile(`(?i)([\d][\d\s.,]*)\s*(fcfa|euros?|dollars?|\$|€)\s*(?:per|/|par)\s*(?:month|year|mois|an)`)
	reMoney         = regexp.MustCompile(`(?i)\b\d{1,3}(?:[ ,.]\d{3})+\s*(?:fcfa|euros?|dollars?)\b|[$€]\s?\d[\d,.]*`)
	reDateNumeric   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	reDateWorded    = regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:january|february|march|april|may|june|july|august|september|october|november|december|janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4}\b`)
)

const (
	salaryPatternConfidence = 0.80
	moneyPatternConfidence  = 0.75
	datePatternConfidence   = 0.85
)

type patternHit struct {
	typ        constants.EntityType
	value      string
	confidence float32
	offset     int
}

// matchPatterns scans the full text and returns hits ordered by offset so the
// output is reproducible for identical input.
func matchPatterns(text string) []patternHit {
	var hits []patternHit

	collect := func(re *regexp.Regexp, typ constants.EntityType, conf float32) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			value := strings.TrimSpace(text[loc[0]:loc[1]])
			if value == "" {
				continue
			}
			hits = append(hits, patternHit{typ: typ, value: value, confidence: conf, offset: loc[0]})
		}
	}

	collect(reSalaryLabeled, constants.Salary, salaryPatternConfidence)
	collect(reSalaryPeriod, constants.Salary, salaryPatternConfidence)
	collect(reMoney, constants.Money, moneyPatternConfidence)
	collect(reDateNumeric, constants.Date, datePatternConfidence)
	collect(reDateWorded, constants.Date, datePatternConfidence)

	// stable order: by offset, then by type for overlapping spans
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && less(hits[j], hits[j-1]); j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	return hits
}

func less(a, b patternHit) bool {
	if a.offset != b.offset {
		return a.offset < b.offset
	}
	return a.typ < b.typ
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
