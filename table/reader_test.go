package table

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

type pair struct {
	Key   string
	Value []string
}

func buildPair(r *Row) (pair, error) {
	return pair{Key: r.Cell(0), Value: r.Cells([]int{1, 2})}, nil
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

func TestRead_SkipsHeaderAndKeepsOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nk1,1,2\nk2,3,4\nk3,5,6\n")

	got, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{Key: "k1", Value: []string{"1", "2"}},
		{Key: "k2", Value: []string{"3", "4"}},
		{Key: "k3", Value: []string{"5", "6"}},
	}, got)
}

func TestRead_HeaderOnly(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\n")

	got, err := Read(fsys, "t.csv", Options{KeyColumn: 0}, buildPair)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRead_EmptyFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "")

	got, err := Read(fsys, "t.csv", Options{KeyColumn: 0}, buildPair)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_DropsPlaceholderKeys(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nなし,1,2\nk2,なし,4\nなし,5,6\n")

	t.Run("filtered", func(t *testing.T) {
		got, err := Read(fsys, "t.csv", Options{KeyColumn: 0}, buildPair)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "k2", got[0].Key)
	})

	t.Run("unfiltered", func(t *testing.T) {
		got, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestRead_MissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := Read(fsys, "missing.csv", Options{}, buildPair)
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "missing.csv", readErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRead_ShortRow(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nk1,1,2\nk2,3\n")

	called := 0
	_, err := Read(fsys, "t.csv", Options{KeyColumn: 0}, func(r *Row) (pair, error) {
		called++
		return buildPair(r)
	})
	require.Error(t, err)
	assert.Equal(t, 2, called)

	var short *ShortRowError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, "t.csv", short.Path)
	assert.Equal(t, 3, short.Line)
	assert.Equal(t, 2, short.Column)
	assert.Equal(t, 2, short.Width)
}

func TestRead_ShortKeyColumn(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nk1,1,2\n")

	_, err := Read(fsys, "t.csv", Options{KeyColumn: 5}, buildPair)

	var short *ShortRowError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, 5, short.Column)
}

func TestRead_BuildError(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key\nk1\nk2\n")
	boom := errors.New("boom")

	_, err := Read(fsys, "t.csv", Options{KeyColumn: 0}, func(r *Row) (string, error) {
		if r.Cell(0) == "k2" {
			return "", boom
		}
		return r.Cell(0), nil
	})
	require.ErrorIs(t, err, boom)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
}

func TestRead_StripsBOM(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "\ufeffkey,a,b\nk1,1,2\n")

	got, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "k1", Value: []string{"1", "2"}}}, got)
}

func TestRead_InvalidUTF8(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nk1,1,2\nk\xff2,3,4\n")

	got, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
	require.Error(t, err)
	assert.Nil(t, got)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "t.csv", readErr.Path)
	assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "line 3")
}

func TestRead_InvalidUTF8AfterBOM(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "\ufeffkey,a,b\n\xe3\x81,1,2\n")

	_, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
	assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
}

func TestRead_BlankLineInsideTable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nk1,1,2\n\nk2,3,4\n")

	_, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
	var short *ShortRowError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 3, short.Line)
	assert.Equal(t, 0, short.Width)
}

func TestRead_BlankLineAfterHeader(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\r\n\r\nk1,1,2\r\n")

	_, err := Read(fsys, "t.csv", Options{KeyColumn: 0}, buildPair)
	var short *ShortRowError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 2, short.Line)
}

func TestDecode_MultilineCellKeepsLineCount(t *testing.T) {
	src := "key,a,b\n\"k\n1\",\"x\ny\",z\nk2,3,4\n"

	got, err := Decode(strings.NewReader(src), "inline", Options{KeyColumn: NoKey}, buildPair)
	require.NoError(t, err)
	assert.Equal(t, []pair{
		{Key: "k\n1", Value: []string{"x\ny", "z"}},
		{Key: "k2", Value: []string{"3", "4"}},
	}, got)
}

func TestRead_TrailingBlankLines(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key,a,b\nk1,1,2\n\n\n")

	got, err := Read(fsys, "t.csv", Options{KeyColumn: NoKey}, buildPair)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDecode_QuotedCells(t *testing.T) {
	src := "key,a,b\n\"k,1\",\"x\"\"y\",\n"

	got, err := Decode(strings.NewReader(src), "inline", Options{KeyColumn: 0}, buildPair)
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "k,1", Value: []string{"x\"y", ""}}}, got)
}

func TestRead_ShiftJIS(t *testing.T) {
	src := "名前,次がR\n3灯式,R\nなし,Y\n"
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	_, err := w.Write([]byte(src))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "sjis.csv", buf.Bytes(), 0644))

	got, err := Read(fsys, "sjis.csv", Options{KeyColumn: 0, Encoding: EncodingShiftJIS}, func(r *Row) (string, error) {
		return r.Cell(0) + "/" + r.Cell(1), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"3灯式/R"}, got)
}

func TestRead_UnknownEncoding(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.csv", "key\nk1\n")

	_, err := Read(fsys, "t.csv", Options{Encoding: "latin-9"}, buildPair)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestRead_CustomDelimiter(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "t.tsv", "key\ta\tb\nk1\t1\t2\n")

	got, err := Read(fsys, "t.tsv", Options{KeyColumn: 0, Comma: '\t'}, buildPair)
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "k1", Value: []string{"1", "2"}}}, got)
}

func TestRow_FirstErrorWins(t *testing.T) {
	r := NewRow("p", 7, []string{"a"})
	assert.Equal(t, "a", r.Cell(0))
	assert.NoError(t, r.Err())

	assert.Equal(t, "", r.Cell(3))
	assert.Equal(t, []string{"a", ""}, r.Cells([]int{0, 9}))

	var short *ShortRowError
	require.True(t, errors.As(r.Err(), &short))
	assert.Equal(t, 3, short.Column)
	assert.Equal(t, 7, short.Line)
	assert.Equal(t, "p:7: column 3 out of range (row has 1 cells)", short.Error())
}
