package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbookBytes builds an in-memory xlsx with the given rows on Sheet1.
func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParse_ReadsFirstSheet(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{" CONTRATO ", "AUDITADO", "VALOR"},
		{"C1", "AUDI", "10"},
		{"C2", "NAUD", "20"},
	})

	sheet, err := Parse(data)
	require.NoError(t, err)

	// Header cells are trimmed; data cells are not.
	require.Equal(t, []string{"CONTRATO", "AUDITADO", "VALOR"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	require.Equal(t, "C1", sheet.Rows[0]["CONTRATO"])
	require.Equal(t, "NAUD", sheet.Rows[1]["AUDITADO"])
	require.Equal(t, "20", sheet.Rows[1]["VALOR"])
}

func TestParse_RaggedRowsCoerceToEmpty(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"CONTRATO", "AUDITADO"},
		{"C1"},
	})

	sheet, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	require.Equal(t, "C1", sheet.Rows[0]["CONTRATO"])
	require.Equal(t, "", sheet.Rows[0]["AUDITADO"])
}

func TestParse_HeaderOnlySheetIsValid(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"CONTRATO", "AUDITADO"},
	})

	sheet, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, []string{"CONTRATO", "AUDITADO"}, sheet.Headers)
	require.Empty(t, sheet.Rows)
}

func TestParse_EmptySheetFails(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Parse(buf.Bytes())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no header row")
}

func TestParse_MalformedBytesFail(t *testing.T) {
	_, err := Parse([]byte("isto não é uma planilha"))
	require.Error(t, err)
}

func TestParse_OnlyFirstSheetIsRead(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "CONTRATO"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "C1"))
	_, err := f.NewSheet("Outra")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Outra", "A1", "IGNORADA"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	sheet, err := Parse(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []string{"CONTRATO"}, sheet.Headers)
	require.Len(t, sheet.Rows, 1)
}
