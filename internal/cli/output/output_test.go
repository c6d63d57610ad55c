package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"explicit markdown tty", ModeMarkdown, true, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"empty defaults to auto", "", false, ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestHeader_MarkdownMode(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Header(2, "Fleet Summary")

	assert.Equal(t, "## Fleet Summary\n", out.String())
}

func TestErrorf_WritesToErrorWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeMarkdown)

	r.Errorf("fetch failed: %s", "boom")

	assert.Empty(t, out.String())
	assert.Equal(t, "fetch failed: boom\n", errOut.String())
}

func TestJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"fleets": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["fleets"])
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Deep", FormatHeader(3, "Deep"))
	assert.Equal(t, "- **Base URL**: http://localhost:5000", FormatKeyValue("Base URL", "http://localhost:5000"))
}

func TestNonTTYOutputHasNoANSI(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Header(1, "Fleets")
	r.Println(FormatKeyValue("F-18", "85.5"))

	assert.NotContains(t, out.String(), "\x1b[")
}
