package tabular

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/redlist/pkg/errors"
)

func sampleTable() *Table {
	return &Table{
		Header: []string{"scientific_name", "common_name"},
		Rows: [][]string{
			{"Panthera leo", "Lion"},
			{"Quercus alba", "White Oak, Eastern"},
		},
	}
}

func TestFormats(t *testing.T) {
	for path, want := range map[string]Format{"a.csv": FormatCSV, "a.TSV": FormatTSV, "a.xlsx": FormatXLSX, "a.xls": FormatXLSX} {
		got, err := InputFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := InputFormat("species.json")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), ".json")

	assert.Equal(t, FormatCSV, OutputFormat("out.txt"))
	assert.Equal(t, FormatCSV, OutputFormat("out"))
	assert.Equal(t, FormatTSV, OutputFormat("out.tsv"))
	assert.Equal(t, FormatXLSX, OutputFormat("out.xlsx"))
}

func TestReadDelimitedPadsRows(t *testing.T) {
	table, err := ReadDelimited(strings.NewReader("species,notes\nPanthera leo\nQuercus alba,tree\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"species", "notes"}, table.Header)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Panthera leo", ""}, table.Rows[0])
	assert.Equal(t, "tree", table.Cell(1, 1))
	assert.Equal(t, "", table.Cell(5, 0))
	assert.Equal(t, 1, table.Column("NOTES"))
	assert.Equal(t, -1, table.Column("genus"))
}

func TestReadDelimitedSkipsByteOrderMark(t *testing.T) {
	for name, input := range map[string]string{
		"plain":  "\ufeffscientific_name\nPanthera leo\n",
		"quoted": "\ufeff\"scientific_name\",notes\nPanthera leo,x\n",
	} {
		t.Run(name, func(t *testing.T) {
			table, err := ReadDelimited(strings.NewReader(input), ',')
			require.NoError(t, err)
			assert.Equal(t, "scientific_name", table.Header[0])
			assert.Equal(t, 0, table.Column("scientific_name"))
			assert.Equal(t, "Panthera leo", table.Cell(0, 0))
		})
	}
}

func TestReadDelimitedEmpty(t *testing.T) {
	table, err := ReadDelimited(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestWriteDelimited(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, '\t', sampleTable()))
	assert.Equal(t, "scientific_name\tcommon_name\nPanthera leo\tLion\nQuercus alba\tWhite Oak, Eastern\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"out.csv", "out.tsv", "out.xlsx"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, sampleTable()))

			got, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, sampleTable(), got)
		})
	}
}

func TestWriteUnknownExtensionIsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.out")
	require.NoError(t, Write(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "scientific_name,common_name\n"))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
}
