package converter

import (
	"github.com/spf13/afero"

	"github.com/daidoji-traincrew-office/dbbase-converter/config"
	"github.com/daidoji-traincrew-office/dbbase-converter/dbbase"
	"github.com/daidoji-traincrew-office/dbbase-converter/table"
)

// Table names used in logs and errors.
const (
	TableStation         = "station"
	TableTrackCircuit    = "trackCircuit"
	TableSignal          = "signal"
	TableSignalType      = "signalType"
	TableThrowOutControl = "throwOutControl"
)

func readStations(fsys afero.Fs, path string, l config.StationLayout, opts table.Options) ([]dbbase.Station, error) {
	opts.KeyColumn = l.Id
	return table.Read(fsys, path, opts, func(r *table.Row) (dbbase.Station, error) {
		return dbbase.NewStation(
			r.Cell(l.Id),
			r.Cell(l.Name),
			r.Cell(l.IsStation),
			r.Cell(l.IsPassengerStation),
		), nil
	})
}

func readTrackCircuits(fsys afero.Fs, path string, l config.TrackCircuitLayout, opts table.Options) ([]dbbase.TrackCircuit, error) {
	opts.KeyColumn = l.Name
	return table.Read(fsys, path, opts, func(r *table.Row) (dbbase.TrackCircuit, error) {
		return dbbase.NewTrackCircuit(
			r.Cell(l.Name),
			r.Cells(l.NextSignalNamesUp),
			r.Cells(l.NextSignalNamesDown),
			r.Cell(l.ProtectionZone),
		)
	})
}

func readSignals(fsys afero.Fs, path string, l config.SignalLayout, opts table.Options) ([]dbbase.Signal, error) {
	opts.KeyColumn = l.Name
	return table.Read(fsys, path, opts, func(r *table.Row) (dbbase.Signal, error) {
		return dbbase.NewSignal(
			r.Cell(l.Name),
			r.Cell(l.TypeName),
			r.Cells(l.NextSignalNames),
			r.Cells(l.RouteNames),
		), nil
	})
}

func readSignalTypes(fsys afero.Fs, path string, l config.SignalTypeLayout, opts table.Options) ([]dbbase.SignalType, error) {
	opts.KeyColumn = l.Name
	return table.Read(fsys, path, opts, func(r *table.Row) (dbbase.SignalType, error) {
		return dbbase.NewSignalType(
			r.Cell(l.Name),
			r.Cell(l.RIndication),
			r.Cell(l.YYIndication),
			r.Cell(l.YIndication),
			r.Cell(l.YGIndication),
			r.Cell(l.GIndication),
		), nil
	})
}

func readThrowOutControls(fsys afero.Fs, path string, l config.ThrowOutControlLayout, opts table.Options) ([]dbbase.ThrowOutControl, error) {
	opts.KeyColumn = l.SourceLever
	return table.Read(fsys, path, opts, func(r *table.Row) (dbbase.ThrowOutControl, error) {
		return dbbase.NewThrowOutControl(
			r.Cell(l.SourceLever),
			r.Cell(l.TargetLever),
			r.Cell(l.LeverCondition),
		), nil
	})
}
