package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableData(t *testing.T) {
	table := NewTableData("ID", "Name")
	assert.Equal(t, []string{"ID", "Name"}, table.Headers())
	assert.Empty(t, table.Rows())

	table.AddRow("mock-plugin-auth", "Mock Authentication Helper")
	require.Len(t, table.Rows(), 1)
	assert.Equal(t, []string{"mock-plugin-auth", "Mock Authentication Helper"}, table.Rows()[0])
}

func TestPrintTable(t *testing.T) {
	table := NewTableData("Name", "Value")
	table.AddRow("key1", "value1")

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, table))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "key1")
	assert.Contains(t, out, "value1")
	assert.NotContains(t, out, "\033[")
}

func TestPrinter_ThemeColorsHeaders(t *testing.T) {
	table := NewTableData("Name")
	table.AddRow("demo")

	var light, dark bytes.Buffer
	p := NewPrinter(&light, FormatTable, true)
	require.NoError(t, p.Print(table))

	p = NewPrinter(&dark, FormatTable, true)
	p.SetDark(true)
	assert.True(t, p.Dark())
	require.NoError(t, p.Print(table))

	assert.Contains(t, light.String(), "\033[")
	assert.Contains(t, dark.String(), "\033[")
	assert.NotEqual(t, light.String(), dark.String())
}

func TestPrinter_NoColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable, false)
	p.SetDark(true)
	p.Success("done")
	assert.Equal(t, "done\n", buf.String())
}

func TestPrinter_StatusPalette(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable, true)
	p.Error("boom")
	assert.Equal(t, "\033[31mboom\033[0m\n", buf.String())

	buf.Reset()
	p.SetDark(true)
	p.Error("boom")
	assert.Equal(t, "\033[1;31mboom\033[0m\n", buf.String())
}

func TestPrinter_JSONAndYAML(t *testing.T) {
	data := map[string]string{"id": "demo"}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON, false).Print(data))
	assert.JSONEq(t, `{"id":"demo"}`, buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatYAML, false).Print(data))
	assert.Equal(t, "id: demo\n", buf.String())
}

func TestSimpleTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SimpleTable(&buf, [][2]string{{"Theme", "dark"}}))
	assert.Contains(t, buf.String(), "Theme")
	assert.Contains(t, buf.String(), "dark")
}

func TestPrinter_Printf(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, FormatTable, true).Printf("%s %d\n", "plugins", 6)
	assert.Equal(t, "plugins 6\n", buf.String())
}
