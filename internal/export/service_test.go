package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/entity"
)

func sampleContract() *entity.Contract {
	return &entity.Contract{
		ID:       uuid.New(),
		Filename: "contract.docx",
		FileExt:  "docx",
		Language: "en",
		Status:   constants.StatusCompleted,
	}
}

func TestBuildWorkbookLayout(t *testing.T) {
	contractID := uuid.New()
	ents := []entity.Entity{
		{ContractID: contractID, Type: constants.Person, Value: "Jane Doe", Confidence: 0.92, Section: "parties", Position: 0},
		{ContractID: contractID, Type: constants.Salary, Value: "450 000 FCFA", Confidence: 0.80, Section: "compensation", Position: 1},
	}
	sums := []entity.Summary{
		{
			ContractID: contractID,
			Tier:       constants.TierBrief,
			Content:    "A brief summary of the agreement.",
			Confidence: 0.74,
			WordCount:  120,
			ModelName:  "stub-model",
			Approved:   true,
			CreatedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
	}

	out, err := BuildWorkbook(sampleContract(), ents, sums)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t, []string{"Entities", "Summaries"}, f.GetSheetList())

	rows, err := f.GetRows("Entities")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Type", "Value", "Confidence", "Section"}, rows[0])
	require.Equal(t, []string{"PERSON", "Jane Doe", "0.92", "parties"}, rows[1])
	require.Equal(t, []string{"SALARY", "450 000 FCFA", "0.80", "compensation"}, rows[2])

	rows, err = f.GetRows("Summaries")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"Tier", "Words", "Confidence", "Approved", "Created", "Model", "Content"}, rows[0])
	require.Equal(t, "brief", rows[1][0])
	require.Equal(t, "120", rows[1][1])
	require.Equal(t, "TRUE", rows[1][3])
	require.Equal(t, "2026-03-14 09:30", rows[1][4])
	require.Equal(t, "A brief summary of the agreement.", rows[1][6])
}

func TestBuildWorkbookEmptyContract(t *testing.T) {
	out, err := BuildWorkbook(sampleContract(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Entities")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestBuildWorkbookTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 500)
	ents := []entity.Entity{{Type: constants.Misc, Value: long, Confidence: 0.9}}

	out, err := BuildWorkbook(sampleContract(), ents, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Entities", "B2")
	require.NoError(t, err)
	require.Less(t, len(v), len(long))
	require.True(t, strings.HasSuffix(v, "…"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 140))
	require.Equal(t, "ab…", truncate("abcdef", 4))
	require.Equal(t, "a", truncate("abc", 1))
}
