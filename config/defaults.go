package config

import "path/filepath"

const (
	DefaultDataDir    = "./Data"
	DefaultOutputName = "DBBase.json"
)

// Default returns the configuration matching the server's Data directory.
func Default() AppConfig {
	return AppConfig{
		DataDir:  DefaultDataDir,
		Encoding: "utf-8",
		Inputs: InputPaths{
			Station:         "駅・停車場.csv",
			TrackCircuit:    "軌道回路に対する計算するべき信号機リスト.csv",
			Signal:          "信号リスト.csv",
			SignalType:      "信号何灯式リスト.csv",
			ThrowOutControl: "総括制御ペア一覧.csv",
		},
		Layouts: DefaultLayouts(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultLayouts returns the column positions of the current spreadsheets.
func DefaultLayouts() Layouts {
	return Layouts{
		Station: StationLayout{Id: 0, Name: 1, IsStation: 2, IsPassengerStation: 3},
		TrackCircuit: TrackCircuitLayout{
			Name:                0,
			NextSignalNamesUp:   span(1, 5),
			NextSignalNamesDown: span(6, 5),
			ProtectionZone:      11,
		},
		Signal: SignalLayout{
			Name:            0,
			TypeName:        1,
			NextSignalNames: span(2, 5),
			RouteNames:      span(7, 11),
		},
		SignalType: SignalTypeLayout{
			Name: 0, RIndication: 1, YYIndication: 2, YIndication: 3, YGIndication: 4, GIndication: 5,
		},
		ThrowOutControl: ThrowOutControlLayout{SourceLever: 0, TargetLever: 1, LeverCondition: 2},
	}
}

// span returns n consecutive column indices starting at from.
func span(from, n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = from + i
	}
	return cols
}

// Resolve returns the input paths with relative entries joined to dir.
func (p InputPaths) Resolve(dir string) InputPaths {
	join := func(name string) string {
		if filepath.IsAbs(name) || dir == "" {
			return name
		}
		return filepath.Join(dir, name)
	}
	return InputPaths{
		Station:         join(p.Station),
		TrackCircuit:    join(p.TrackCircuit),
		Signal:          join(p.Signal),
		SignalType:      join(p.SignalType),
		ThrowOutControl: join(p.ThrowOutControl),
	}
}

// InputFiles returns the input paths resolved against DataDir.
func (c AppConfig) InputFiles() InputPaths {
	return c.Inputs.Resolve(c.DataDir)
}

// OutputPath returns Output, or DBBase.json inside DataDir when unset.
func (c AppConfig) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.DataDir, DefaultOutputName)
}
