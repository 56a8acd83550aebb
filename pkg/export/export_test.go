package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffTable() Table {
	return Table{
		Title: "Staff Directory",
		Columns: []Column{
			{Header: "Name", Weight: 1.4},
			{Header: "Title", Weight: 1.4},
			{Header: "Role", Weight: 0.9},
			{Header: "Department", Weight: 1.1},
			{Header: "Email", Weight: 1.7},
		},
		Rows: [][]string{
			{"Naledi Khumalo", "Executive Director", "leadership", "", "naledi@mochwanaesi.co.za"},
			{"Thabo Molefe", "Skills Trainer", "program_staff", "Skills Training"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	data, err := NewCSVExporter().Render(staffTable())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Name,Title,Role,Department,Email\n")
	assert.Contains(t, out, "Naledi Khumalo,Executive Director,leadership,,naledi@mochwanaesi.co.za\n")
	assert.Contains(t, out, "Thabo Molefe,Skills Trainer,program_staff,Skills Training,\n")
}

func TestCSVExporterNoColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data, err := NewPDFExporter().Render(staffTable())
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths([]Column{{Header: "A", Weight: 3}, {Header: "B", Weight: 1}})
	require.Len(t, widths, 2)
	assert.InDelta(t, 142.5, widths[0], 0.001)
	assert.InDelta(t, 47.5, widths[1], 0.001)

	widths = columnWidths([]Column{{Header: "A"}, {Header: "B"}})
	assert.InDelta(t, 95.0, widths[0], 0.001)
	assert.InDelta(t, 95.0, widths[1], 0.001)
}
