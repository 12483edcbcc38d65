package tabular

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/agentstation/redlist/pkg/constants"
	"github.com/agentstation/redlist/pkg/errors"
)

const bom = '\ufeff'

func readDelimited(path string, comma rune) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // user-supplied input path
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	t, err := ReadDelimited(f, comma)
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	return t, nil
}

// ReadDelimited parses delimited text whose first record is the header.
// A leading UTF-8 byte order mark is skipped.
func ReadDelimited(r io.Reader, comma rune) (*Table, error) {
	br := bufio.NewReader(r)
	if first, _, err := br.ReadRune(); err == nil && first != bom {
		_ = br.UnreadRune()
	}

	reader := csv.NewReader(br)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	t := &Table{Header: records[0], Rows: records[1:]}
	t.pad()
	return t, nil
}

func writeDelimited(path string, comma rune, t *Table) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions) //nolint:gosec // user-supplied output path
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := WriteDelimited(f, comma, t); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}

// WriteDelimited writes the header and rows as delimited text.
func WriteDelimited(w io.Writer, comma rune, t *Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Error()
}
