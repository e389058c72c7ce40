package utils

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataPath(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "pilot")

	got, err := ResolveDataPath(home, "flights.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "flights.json"), got)

	got, err = ResolveDataPath(home, filepath.Join("data", "flights.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "flights.json"), got)

	abs := filepath.Join(string(filepath.Separator), "tmp", "flights.json")
	got, err = ResolveDataPath(home, abs)
	require.NoError(t, err)
	assert.Equal(t, abs, got)

	_, err = ResolveDataPath(home, "  ")
	assert.Error(t, err)
}

func TestMarshalPretty(t *testing.T) {
	data, err := MarshalPretty([]map[string]string{{"city": "Zürich & <Genève>"}})
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"city\": \"Zürich & <Genève>\"\n    }\n]", string(data))

	data, err = MarshalPretty([]string{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMarshalPretty_LineSeparatorsAreLiteral(t *testing.T) {
	lineSep := string(rune(0x2028))
	paraSep := string(rune(0x2029))

	data, err := MarshalPretty([]string{"A" + lineSep + "B" + paraSep + "C"})
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"A"+lineSep+"B"+paraSep+"C\"\n]", string(data))

	// a literal backslash followed by "u2028" is escaped text and stays so
	escapedText := `x\u` + "2028y"
	in := []string{escapedText, `\` + lineSep}
	data, err = MarshalPretty(in)
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"x\\\\u2028y\",\n    \"\\\\"+lineSep+"\"\n]", string(data))

	var decoded []string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, in, decoded)
}
