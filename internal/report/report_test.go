package report

import (
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/config"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/converter"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	stats := converter.RunStats{Processed: 2, Converted: 1, Skipped: 1, Failed: 1}
	opts, err := config.ResolveOptions(config.RawOptions{Delimiter: "pipe", KeyFolding: "safe"})
	require.NoError(t, err)

	outcomes := []types.Outcome{
		{SourceName: "a.json", Status: types.StatusConverted, OutputName: "a.toon"},
		{SourceName: "b.json", Status: types.StatusFailed, Reason: "invalid JSON"},
		{SourceName: "c.txt", Status: types.StatusSkipped, Reason: "not a .json file"},
	}

	require.NoError(t, WriteXLSX(path, stats, opts, outcomes))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{summarySheet, filesSheet}, f.GetSheetList())

	get := func(sheet, cell string) string {
		v, cellErr := f.GetCellValue(sheet, cell)
		require.NoError(t, cellErr)
		return v
	}

	assert.Equal(t, "Delimiter", get(summarySheet, "A3"))
	assert.Equal(t, "pipe", get(summarySheet, "B3"))
	assert.Equal(t, "safe", get(summarySheet, "B4"))
	assert.Equal(t, "unset", get(summarySheet, "B5"))
	assert.Equal(t, "2", get(summarySheet, "B6"))
	assert.Equal(t, "1", get(summarySheet, "B7"))
	assert.Equal(t, "1", get(summarySheet, "B9"))

	assert.Equal(t, "File", get(filesSheet, "A1"))
	assert.Equal(t, "a.json", get(filesSheet, "A2"))
	assert.Equal(t, "converted", get(filesSheet, "B2"))
	assert.Equal(t, "a.toon", get(filesSheet, "C2"))
	assert.Equal(t, "invalid JSON", get(filesSheet, "D3"))
	assert.Equal(t, "skipped", get(filesSheet, "B4"))
}
