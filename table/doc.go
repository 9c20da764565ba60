/*
Package table reads the signaling reference tables (CSV exports of the
interlocking spreadsheets) into typed records.

Columns are addressed by position, not by header name. Row 0 is always the
header and is skipped. Every remaining row is handed to a build function in
file order:

	stations, err := table.Read(fsys, "Data/駅・停車場.csv", table.Options{KeyColumn: 0},
	    func(r *table.Row) (dbbase.Station, error) {
	        return dbbase.NewStation(r.Cell(0), r.Cell(1), r.Cell(2), r.Cell(3)), nil
	    })

# Short rows

Row.Cell and Row.Cells never panic. Reaching past the end of a row records a
*ShortRowError on the Row, returns an empty value, and Read reports that error
once the build function returns. The whole read fails; there is no partial
result.

# Placeholder keys

When Options.KeyColumn is set, rows whose key cell is the placeholder token
("なし") are dropped before the build function runs.

# Encodings

Input is UTF-8 by default, with an optional leading BOM. Shift_JIS exports
can be read by setting Options.Encoding to EncodingShiftJIS.
*/
package table
