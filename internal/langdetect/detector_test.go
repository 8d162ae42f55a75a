package langdetect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
)

const englishContract = `This agreement is made between the employer and the employee.
The employee shall perform the duties described in this agreement and will not
disclose any confidential information. The employer shall pay the salary for
the services described in this agreement, and any dispute between the parties
shall be resolved as described in this agreement.`

const frenchContract = `Le présent contrat est conclu entre l'employeur et le salarié.
Le salarié exercera les fonctions décrites dans le contrat et ne pourra pas
divulguer les informations confidentielles. L'employeur versera le salaire
pour les services décrits dans le contrat, et les parties conviennent que les
différends seront réglés par la procédure décrite dans le contrat.`

func TestDetectEnglish(t *testing.T) {
	d := NewDetector(Config{}, nil)
	lang, certain := d.Detect(englishContract)
	require.Equal(t, constants.LangEnglish, lang)
	require.True(t, certain)
}

func TestDetectFrench(t *testing.T) {
	d := NewDetector(Config{}, nil)
	lang, certain := d.Detect(frenchContract)
	require.Equal(t, constants.LangFrench, lang)
	require.True(t, certain)
}

func TestDetectTooShortFallsBackToDefault(t *testing.T) {
	d := NewDetector(Config{Default: constants.LangFrench}, nil)
	lang, certain := d.Detect("too short")
	require.Equal(t, constants.LangFrench, lang)
	require.False(t, certain)
}

func TestDetectNoSignalFallsBackToDefault(t *testing.T) {
	d := NewDetector(Config{}, nil)
	// enough tokens, but none of them carry a language signal
	lang, certain := d.Detect(strings.Repeat("xkcd qwerty zzz 123 998 foo77 ", 10))
	require.Equal(t, constants.DefaultLanguage, lang)
	require.False(t, certain)
}

func TestDetectSampleBounded(t *testing.T) {
	// French prefix, then a long English tail that the sample must not see
	text := frenchContract + "\n" + strings.Repeat("the employee and the employer shall agree that ", 500)
	d := NewDetector(Config{SampleBytes: len(frenchContract)}, nil)
	lang, certain := d.Detect(text)
	require.Equal(t, constants.LangFrench, lang)
	require.True(t, certain)
}
