package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/pp-tools/pizza-pulse/pkg/models/store"
)

// Source reads a delimited dataset with a header row into raw rows. A
// missing header or an unparsable table structure is a fatal source error;
// rows that merely lack columns pass through and get skipped downstream.
type Source struct {
	reader    io.Reader
	delimiter rune
}

func NewSource(r io.Reader) *Source {
	return &Source{reader: r, delimiter: ','}
}

func NewSourceWithDelimiter(r io.Reader, delimiter rune) *Source {
	return &Source{reader: r, delimiter: delimiter}
}

func (s *Source) Rows(ctx context.Context) ([]store.RawRow, error) {
	reader := csv.NewReader(s.reader)
	reader.Comma = s.delimiter
	// Short and long rows become sparse RawRows instead of aborting the read;
	// the normalizer decides their fate.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("input is empty: header row is required")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []store.RawRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := make(store.RawRow, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
