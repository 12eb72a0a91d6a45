package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads rows of "x,y" or "x,y,err". Empty lines and lines starting
// with '#' are skipped. Either all rows carry an error column or none.
func ReadCSV(r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var x, y, e []float64
	withErr := -1
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
		if len(rec) != 2 && len(rec) != 3 {
			return nil, fmt.Errorf("data: record %d has %d fields, want 2 or 3", line, len(rec))
		}
		has := 0
		if len(rec) == 3 {
			has = 1
		}
		if withErr == -1 {
			withErr = has
		} else if withErr != has {
			return nil, fmt.Errorf("data: record %d: error column must be given for all or no rows", line)
		}

		vals := make([]float64, len(rec))
		for i, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("data: record %d field %d: %w", line, i+1, err)
			}
			vals[i] = v
		}
		x, y = append(x, vals[0]), append(y, vals[1])
		if has == 1 {
			e = append(e, vals[2])
		}
	}
	return NewSet(x, y, e)
}
