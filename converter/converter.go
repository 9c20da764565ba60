package converter

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/daidoji-traincrew-office/dbbase-converter/config"
	"github.com/daidoji-traincrew-office/dbbase-converter/dbbase"
	"github.com/daidoji-traincrew-office/dbbase-converter/formatter"
	"github.com/daidoji-traincrew-office/dbbase-converter/table"
)

// Converter reads signaling tables from FS and produces a DBBase document.
type Converter struct {
	FS  afero.Fs
	Cfg config.AppConfig
	Log *log.Logger
}

// NewConverter creates a converter. A nil logger uses the process default.
func NewConverter(fsys afero.Fs, cfg config.AppConfig, logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.Default()
	}
	return &Converter{FS: fsys, Cfg: cfg, Log: logger}
}

// ConvertAll converts the tables on the OS filesystem with the default
// layouts and writes the document to outputPath.
func ConvertAll(paths config.InputPaths, outputPath string) error {
	return NewConverter(afero.NewOsFs(), config.Default(), nil).ConvertAll(paths, outputPath)
}

// ConvertAll reads every table in paths and, only if all reads succeed,
// writes the document to outputPath, overwriting any previous output.
func (c *Converter) ConvertAll(paths config.InputPaths, outputPath string) error {
	doc, err := c.Convert(paths)
	if err != nil {
		return err
	}
	if err := formatter.WriteFile(c.FS, outputPath, doc); err != nil {
		return err
	}
	c.Log.Info("wrote document", "path", outputPath, "counts", doc.Counts())
	return nil
}

// Convert reads every table in paths into a new document.
func (c *Converter) Convert(paths config.InputPaths) (*dbbase.Document, error) {
	doc := dbbase.NewDocument()
	layouts := c.Cfg.Layouts
	opts := table.Options{Encoding: c.Cfg.Encoding, Logger: c.Log}

	var err error
	if doc.StationList, err = readStations(c.FS, paths.Station, layouts.Station, opts); err != nil {
		return nil, &ConversionError{Table: TableStation, Err: err}
	}
	c.loaded(TableStation, paths.Station, len(doc.StationList))

	if doc.TrackCircuitList, err = readTrackCircuits(c.FS, paths.TrackCircuit, layouts.TrackCircuit, opts); err != nil {
		return nil, &ConversionError{Table: TableTrackCircuit, Err: err}
	}
	c.loaded(TableTrackCircuit, paths.TrackCircuit, len(doc.TrackCircuitList))

	if doc.SignalDataList, err = readSignals(c.FS, paths.Signal, layouts.Signal, opts); err != nil {
		return nil, &ConversionError{Table: TableSignal, Err: err}
	}
	c.loaded(TableSignal, paths.Signal, len(doc.SignalDataList))

	if doc.SignalTypeList, err = readSignalTypes(c.FS, paths.SignalType, layouts.SignalType, opts); err != nil {
		return nil, &ConversionError{Table: TableSignalType, Err: err}
	}
	c.loaded(TableSignalType, paths.SignalType, len(doc.SignalTypeList))

	if doc.ThrowOutControlList, err = readThrowOutControls(c.FS, paths.ThrowOutControl, layouts.ThrowOutControl, opts); err != nil {
		return nil, &ConversionError{Table: TableThrowOutControl, Err: err}
	}
	c.loaded(TableThrowOutControl, paths.ThrowOutControl, len(doc.ThrowOutControlList))

	return doc, nil
}

func (c *Converter) loaded(name, path string, n int) {
	c.Log.Info("loaded table", "table", name, "path", path, "records", n)
}
