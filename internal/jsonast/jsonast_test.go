/*
File    : noctis/internal/jsonast/jsonast_test.go
*/
package jsonast

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctis-lang/noctis/parser"
)

func TestEncode_UsesLowercaseModuleFields(t *testing.T) {
	m, err := parser.Parse("module M where\nsquare n = n * n\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	for _, field := range []string{"name", "importable", "depends", "types", "datatypes", "functions"} {
		_, ok := decoded[field]
		assert.True(t, ok, "missing field %q in JSON output", field)
	}
	assert.Equal(t, "M", decoded["name"])
	assert.Equal(t, true, decoded["importable"])
}

func TestModuleOf_RendersListPairAsNestedKind(t *testing.T) {
	m, err := parser.Parse("example takes Nothing returns [Integer]\nexample = [1, 2]\n")
	require.NoError(t, err)

	out := ModuleOf(m)
	functions := out["functions"].([]interface{})
	require.Len(t, functions, 1)

	fn := functions[0].(map[string]interface{})
	clauses := fn["clauses"].([]interface{})
	body := clauses[0].(map[string]interface{})["body"].(map[string]interface{})

	assert.Equal(t, "list_pair", body["kind"])
	head := body["head"].(map[string]interface{})
	assert.Equal(t, "int", head["kind"])
}
