package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample() Table {
	return Table{
		Title:  "Employees",
		Header: []string{"Employee ID", "Name", "Email"},
		Rows: [][]string{
			{"EMP0001", "Rahim Uddin", "rahim@example.com"},
			{"EMP0002", "Karim, Hossain", ""},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": CSV, "csv": CSV, "XLSX": XLSX, " pdf ": PDF} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "employees-20250307.xlsx", Filename("employees", XLSX, now))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, CSV, sample()))
	assert.Equal(t, "Employee ID,Name,Email\nEMP0001,Rahim Uddin,rahim@example.com\nEMP0002,\"Karim, Hossain\",\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, XLSX, sample()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Employee ID", "Name", "Email"}, rows[0])
	assert.Equal(t, "Karim, Hossain", rows[2][1])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	table := sample()
	table.Rows = append(table.Rows, []string{"EMP0003", "A very long name that certainly does not fit into one narrow table cell at all", "x@y.z"})
	require.NoError(t, Write(&buf, PDF, table))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format("docx"), sample()), ErrUnknownFormat)
}
