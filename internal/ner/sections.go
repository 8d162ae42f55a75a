package ner

import (
	"regexp"
)

// Section is a named region of contract text used for entity attribution.
type Section struct {
	Name string
	Text string
}

// Ordered so section splitting is reproducible for identical input.
var sectionProbes = []struct {
	name string
	re   *regexp.Regexp
}{
	{"job_description", regexp.MustCompile(`(?i)(job description|duties|responsibilities|poste|fonctions)`)},
	{"compensation", regexp.MustCompile(`(?i)(salary|compensation|remuneration|rémunération|benefits|salaire)`)},
	{"working_conditions", regexp.MustCompile(`(?i)(working hours|work schedule|location|horaires|lieu de travail)`)},
	{"termination", regexp.MustCompile(`(?i)(termination|notice|resignation|résiliation|préavis)`)},
	{"confidentiality", regexp.MustCompile(`(?i)(confidential|non-disclosure|proprietary|confidentialité)`)},
}

const (
	sectionLeadBytes  = 200
	sectionTrailBytes = 500
)

// IdentifySections locates the standard employment-contract sections and
// returns a bounded window of text around each probe hit, in probe order.
// When no probe matches, the whole document is returned as a single unnamed
// section so extraction still covers everything.
func IdentifySections(text string) []Section {
	var sections []Section
	for _, probe := range sectionProbes {
		loc := probe.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		start := loc[0] - sectionLeadBytes
		if start < 0 {
			start = 0
		}
		end := loc[1] + sectionTrailBytes
		if end > len(text) {
			end = len(text)
		}
		sections = append(sections, Section{Name: probe.name, Text: text[start:end]})
	}
	if len(sections) == 0 {
		sections = append(sections, Section{Name: "", Text: text})
	}
	return sections
}

// SectionOf returns the name of the first section containing value, or "".
func SectionOf(sections []Section, value string) string {
	if value == "" {
		return ""
	}
	for _, s := range sections {
		if s.Name == "" {
			continue
		}
		if containsFold(s.Text, value) {
			return s.Name
		}
	}
	return ""
}
