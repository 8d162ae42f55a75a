package constants

import "strings"

// EntityType is the closed vocabulary for extracted contract facts.
type EntityType string

const (
	Person   EntityType = "PERSON"
	Org      EntityType = "ORG"
	Date     EntityType = "DATE"
	Money    EntityType = "MONEY"
	Salary   EntityType = "SALARY"
	Location EntityType = "LOCATION"
	Misc     EntityType = "MISC"
)

var allEntityTypes = []EntityType{
	Person,
	Org,
	Date,
	Money,
	Salary,
	Location,
	Misc,
}

// EntityTypeStrings returns the vocabulary for schema enums and validation.
func EntityTypeStrings() []string {
	result := make([]string, len(allEntityTypes))
	for i, et := range allEntityTypes {
		result[i] = string(et)
	}
	return result
}

// CanonicalizeEntityType maps a model-produced label onto the closed
// vocabulary. Unknown labels fold into MISC with ok=false so the caller can
// flag the result instead of failing.
func CanonicalizeEntityType(input string) (EntityType, bool) {
	if input == "" {
		return Misc, false
	}

	normalized := strings.ToUpper(strings.TrimSpace(input))

	// labels seen from NER models that are not our canonical names
	synonyms := map[string]EntityType{
		"PER":          Person,
		"PERS":         Person,
		"ORGANIZATION": Org,
		"ORGANISATION": Org,
		"COMPANY":      Org,
		"GPE":          Location,
		"LOC":          Location,
		"CURRENCY":     Money,
		"AMOUNT":       Money,
		"COMPENSATION": Salary,
		"WAGE":         Salary,
		"TIME":         Date,
	}

	if et, ok := synonyms[normalized]; ok {
		return et, true
	}

	for _, et := range allEntityTypes {
		if normalized == string(et) {
			return et, true
		}
	}

	return Misc, false
}
