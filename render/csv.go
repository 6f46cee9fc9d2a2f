package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// WriteCSV writes m with one line per row and comma separated columns, no header.
// For a grid field this is one line per x index. Values use 18 digit exponent
// notation so they read back exactly.
func WriteCSV(w io.Writer, m mat.Matrix) error {
	r, c := m.Dims()
	cw := csv.NewWriter(w)
	record := make([]string, c)
	for i := 0; i < r; i++ {
		for j := range record {
			record[j] = strconv.FormatFloat(m.At(i, j), 'e', 18, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreateCSV writes m to a new file at path. See WriteCSV.
func CreateCSV(path string, m mat.Matrix) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteCSV(fp, m); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return fp.Close()
}

// ReadCSV reads a dense matrix in the layout written by WriteCSV.
// Every line must have the same number of values.
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d column %d: %w", i+1, j+1, err)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}
