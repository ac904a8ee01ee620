package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"

	"labelprep/pkg/dataset"
)

var (
	// ErrNoHeader is returned when a CSV file has no header row.
	ErrNoHeader = errors.New("data: missing header row")

	// ErrWidthMismatch is returned when a sample does not have one value per feature.
	ErrWidthMismatch = errors.New("data: sample width differs from feature count")
)

// Options controls how a CSV file is parsed.
type Options struct {
	// LabelCol is the index of the label column. Negative values count from
	// the end, so -1 is the last column.
	LabelCol int
}

// Table is a CSV file loaded into array form.
type Table struct {
	Features  []string
	LabelName string
	Arrays    dataset.Arrays[string, float64]
	// Skipped counts records dropped for a CSV syntax error, a bad column
	// count or a non-numeric feature.
	Skipped int
}

// ReadCSV loads a headed CSV file: every column except the label column must
// parse as float64, the label column is kept as a string.
func ReadCSV(fs afero.Fs, path string, opts Options) (*Table, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	labelCol := opts.LabelCol
	if labelCol < 0 {
		labelCol += len(header)
	}
	if labelCol < 0 || labelCol >= len(header) {
		return nil, fmt.Errorf("data: label column %d out of range for %d columns", opts.LabelCol, len(header))
	}

	t := &Table{
		LabelName: header[labelCol],
		Arrays:    dataset.Arrays[string, float64]{X: [][]float64{}, Y: []string{}},
	}
	t.Features = append(append(t.Features, header[:labelCol]...), header[labelCol+1:]...)

	reader.ReuseRecord = true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			t.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != len(header) {
			t.Skipped++
			continue
		}

		x := make([]float64, 0, len(rec)-1)
		valid := true
		for i, s := range rec {
			if i == labelCol {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				valid = false
				break
			}
			x = append(x, v)
		}
		if !valid {
			t.Skipped++
			continue
		}
		t.Arrays.X = append(t.Arrays.X, x)
		t.Arrays.Y = append(t.Arrays.Y, rec[labelCol])
	}
	return t, nil
}

// WriteCSV writes a in the layout ReadCSV expects, with the label as the last
// column.
func WriteCSV(fs afero.Fs, path string, features []string, labelName string, a dataset.Arrays[string, float64]) error {
	if len(a.X) != len(a.Y) {
		return dataset.ErrLengthMismatch
	}
	for i, x := range a.X {
		if len(x) != len(features) {
			return fmt.Errorf("%w: row %d has %d values for %d features", ErrWidthMismatch, i, len(x), len(features))
		}
	}
	file, err := fs.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	header := append(append([]string{}, features...), labelName)
	if err := w.Write(header); err != nil {
		file.Close()
		return err
	}
	row := make([]string, 0, len(header))
	for i, x := range a.X {
		row = row[:0]
		for _, v := range x {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		row = append(row, a.Y[i])
		if err := w.Write(row); err != nil {
			file.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteDataset writes d label by label in ascending order, without shuffling.
func WriteDataset(fs afero.Fs, path string, features []string, labelName string, d dataset.Dataset[string, float64]) error {
	return WriteCSV(fs, path, features, labelName, dataset.ToArrays(d, dataset.WithShuffle(false)))
}
