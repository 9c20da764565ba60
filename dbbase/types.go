package dbbase

// InitialPhase is the phase every signal starts in.
const InitialPhase = 1

// Station is one row of the station table.
type Station struct {
	Id                 string `json:"Id"`
	Name               string `json:"Name"`
	IsStation          bool   `json:"IsStation"`
	IsPassengerStation bool   `json:"IsPassengerStation"`
}

// TrackCircuit lists the signals to recompute when a track circuit changes.
// Last and On are runtime state owned by the server.
type TrackCircuit struct {
	Name                string   `json:"Name"`
	Last                string   `json:"Last"`
	On                  bool     `json:"On"`
	NextSignalNamesUp   []string `json:"NextSignalNamesUp"`
	NextSignalNamesDown []string `json:"NextSignalNamesDown"`
	ProtectionZone      *int     `json:"ProtectionZone"`
}

// Signal is one row of the signal table.
type Signal struct {
	Name            string   `json:"Name"`
	Phase           int      `json:"phase"`
	TypeName        string   `json:"TypeName"`
	NextSignalNames []string `json:"NextSignalNames"`
	RouteNames      []string `json:"RouteNames"`
}

// SignalType holds the aspect shown for each aspect of the next signal:
// stop (R), double caution (YY), caution (Y), caution-proceed (YG), proceed (G).
type SignalType struct {
	Name         string `json:"Name"`
	RIndication  string `json:"RIndication"`
	YYIndication string `json:"YYIndication"`
	YIndication  string `json:"YIndication"`
	YGIndication string `json:"YGIndication"`
	GIndication  string `json:"GIndication"`
}

// ThrowOutControl pairs a source route with the route it throws out,
// under a lever condition.
type ThrowOutControl struct {
	SourceLever    string `json:"SourceLever"`
	TargetLever    string `json:"TargetLever"`
	LeverCondition string `json:"LeverCondition"`
}

// Document is the whole DBBase output.
type Document struct {
	StationList         []Station         `json:"stationList"`
	TrackCircuitList    []TrackCircuit    `json:"trackCircuitList"`
	SignalDataList      []Signal          `json:"signalDataList"`
	SignalTypeList      []SignalType      `json:"signalTypeList"`
	ThrowOutControlList []ThrowOutControl `json:"throwOutControlList"`
}

// NewDocument returns a document with every list empty (not nil).
func NewDocument() *Document {
	return &Document{
		StationList:         []Station{},
		TrackCircuitList:    []TrackCircuit{},
		SignalDataList:      []Signal{},
		SignalTypeList:      []SignalType{},
		ThrowOutControlList: []ThrowOutControl{},
	}
}

// Counts returns the length of each list keyed by its document name.
func (d *Document) Counts() map[string]int {
	return map[string]int{
		"stationList":         len(d.StationList),
		"trackCircuitList":    len(d.TrackCircuitList),
		"signalDataList":      len(d.SignalDataList),
		"signalTypeList":      len(d.SignalTypeList),
		"throwOutControlList": len(d.ThrowOutControlList),
	}
}
