package ner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
)

func TestMatchPatternsSalary(t *testing.T) {
	text := "The gross monthly salary: 450 000 FCFA shall be paid on the last day."
	hits := matchPatterns(text)

	var salaries []patternHit
	for _, h := range hits {
		if h.typ == constants.Salary {
			salaries = append(salaries, h)
		}
	}
	require.NotEmpty(t, salaries)
	require.Equal(t, "salary: 450 000 FCFA", salaries[0].value)
	require.InDelta(t, 0.80, float64(salaries[0].confidence), 1e-6)
}

func TestMatchPatternsSalaryPerPeriod(t *testing.T) {
	text := "Le salarié percevra 350 000 fcfa par mois à compter de la date d'embauche."
	hits := matchPatterns(text)

	found := false
	for _, h := range hits {
		if h.typ == constants.Salary {
			found = true
		}
	}
	require.True(t, found, "expected a SALARY hit for a per-month amount")
}

func TestMatchPatternsDates(t *testing.T) {
	text := "Effective from 01/09/2025 until 2026-08-31, signed on 15 January 2025."
	hits := matchPatterns(text)

	var dates []string
	for _, h := range hits {
		if h.typ == constants.Date {
			dates = append(dates, h.value)
		}
	}
	require.Equal(t, []string{"01/09/2025", "2026-08-31", "15 January 2025"}, dates)
	for _, h := range hits {
		if h.typ == constants.Date {
			require.InDelta(t, 0.85, float64(h.confidence), 1e-6)
		}
	}
}

func TestMatchPatternsMoney(t *testing.T) {
	text := "A bonus of $1,500 plus an allowance of 250 000 fcfa."
	hits := matchPatterns(text)

	var money []string
	for _, h := range hits {
		if h.typ == constants.Money {
			money = append(money, h.value)
		}
	}
	require.Equal(t, []string{"$1,500", "250 000 fcfa"}, money)
}

func TestMatchPatternsOrderedByOffset(t *testing.T) {
	text := "Start 2025-01-01, salary: 100 000 FCFA, end 2025-12-31."
	hits := matchPatterns(text)
	require.NotEmpty(t, hits)
	for i := 1; i < len(hits); i++ {
		require.LessOrEqual(t, hits[i-1].offset, hits[i].offset)
	}
}

func TestMatchPatternsDeterministic(t *testing.T) {
	text := "Salaire: 500 000 FCFA par mois, du 01/01/2025 au 31/12/2025."
	first := matchPatterns(text)
	second := matchPatterns(text)
	require.Equal(t, first, second)
}

func TestMatchPatternsNoHits(t *testing.T) {
	require.Empty(t, matchPatterns("no figures or dates in this clause"))
}
