package llm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
)

func entitySchema() map[string]any {
	return BuildEntitySchema(constants.EntityTypeStrings())
}

func TestValidateEntityPayload(t *testing.T) {
	good := []byte(`{"entities":[{"type":"PERSON","value":"Jane Doe","confidence":0.92}]}`)
	require.NoError(t, ValidateJSONAgainstSchema(entitySchema(), good))

	empty := []byte(`{"entities":[]}`)
	require.NoError(t, ValidateJSONAgainstSchema(entitySchema(), empty))
}

func TestValidateEntityPayloadRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown type", `{"entities":[{"type":"ANIMAL","value":"cat","confidence":0.9}]}`},
		{"missing confidence", `{"entities":[{"type":"PERSON","value":"Jane Doe"}]}`},
		{"confidence out of range", `{"entities":[{"type":"PERSON","value":"Jane Doe","confidence":1.5}]}`},
		{"empty value", `{"entities":[{"type":"PERSON","value":"","confidence":0.9}]}`},
		{"extra property", `{"entities":[{"type":"PERSON","value":"Jane Doe","confidence":0.9,"note":"x"}]}`},
		{"missing entities key", `{"items":[]}`},
		{"not json", `PERSON: Jane Doe`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ValidateJSONAgainstSchema(entitySchema(), []byte(tt.data)))
		})
	}
}

func TestDecodeTaggedEntities(t *testing.T) {
	data := []byte(`{"entities":[
		{"type":"PERSON","value":"Jane Doe","confidence":0.92},
		{"type":"SALARY","value":"450 000 FCFA","confidence":0.8}
	]}`)
	ents, err := DecodeTaggedEntities(data)
	require.NoError(t, err)
	require.Len(t, ents, 2)
	require.Equal(t, "PERSON", ents[0].Type)
	require.Equal(t, "Jane Doe", ents[0].Value)
	require.InDelta(t, 0.8, ents[1].Confidence, 1e-6)

	_, err = DecodeTaggedEntities([]byte("nope"))
	require.Error(t, err)
}
