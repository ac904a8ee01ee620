package data_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelprep/pkg/data"
	"labelprep/pkg/dataset"
)

const irisish = `sepal,class,petal
1.5,setosa,0.2
4.7,virginica,1.4
oops,setosa,0.3
2"z,setosa,0.4
5.1,virginica
6.0,setosa,2.5
`

func TestReadCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte(irisish), 0o644))

	tbl, err := data.ReadCSV(fs, "in.csv", data.Options{LabelCol: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"sepal", "petal"}, tbl.Features)
	assert.Equal(t, "class", tbl.LabelName)
	assert.Equal(t, [][]float64{{1.5, 0.2}, {4.7, 1.4}, {6.0, 2.5}}, tbl.Arrays.X)
	assert.Equal(t, []string{"setosa", "virginica", "setosa"}, tbl.Arrays.Y)
	assert.Equal(t, 3, tbl.Skipped)
}

func TestReadCSV_NegativeLabelCol(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte("a,b,y\n1,2,x\n"), 0o644))

	tbl, err := data.ReadCSV(fs, "in.csv", data.Options{LabelCol: -1})
	require.NoError(t, err)
	assert.Equal(t, "y", tbl.LabelName)
	assert.Equal(t, [][]float64{{1, 2}}, tbl.Arrays.X)
}

func TestReadCSV_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := data.ReadCSV(fs, "missing.csv", data.Options{})
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "empty.csv", nil, 0o644))
	_, err = data.ReadCSV(fs, "empty.csv", data.Options{})
	assert.ErrorIs(t, err, data.ErrNoHeader)

	require.NoError(t, afero.WriteFile(fs, "one.csv", []byte("a,y\n"), 0o644))
	_, err = data.ReadCSV(fs, "one.csv", data.Options{LabelCol: 5})
	assert.Error(t, err)
}

func TestWriteDataset_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	d := dataset.Dataset[string, float64]{
		"b": {{0.5, 1}, {2, 3.25}},
		"a": {{-1, 0}},
	}
	require.NoError(t, data.WriteDataset(fs, "out.csv", []string{"f1", "f2"}, "label", d))

	raw, err := afero.ReadFile(fs, "out.csv")
	require.NoError(t, err)
	assert.Equal(t, "f1,f2,label\n-1,0,a\n0.5,1,b\n2,3.25,b\n", string(raw))

	tbl, err := data.ReadCSV(fs, "out.csv", data.Options{LabelCol: -1})
	require.NoError(t, err)
	got, err := dataset.Group(tbl.Arrays)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestWriteCSV_LengthMismatch(t *testing.T) {
	err := data.WriteCSV(afero.NewMemMapFs(), "x.csv", nil, "y", dataset.Arrays[string, float64]{Y: []string{"a"}})
	assert.ErrorIs(t, err, dataset.ErrLengthMismatch)
}

func TestWriteCSV_WidthMismatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	a := dataset.Arrays[string, float64]{X: [][]float64{{1, 2}, {3}}, Y: []string{"a", "b"}}
	err := data.WriteCSV(fs, "x.csv", []string{"f1", "f2"}, "y", a)
	assert.ErrorIs(t, err, data.ErrWidthMismatch)

	ok, err := afero.Exists(fs, "x.csv")
	require.NoError(t, err)
	assert.False(t, ok, "nothing is written for a ragged table")
}
