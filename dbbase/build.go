package dbbase

import "github.com/daidoji-traincrew-office/dbbase-converter/normalize"

// NewStation builds a station; the two markers are O/X cells.
func NewStation(id, name, isStation, isPassengerStation string) Station {
	return Station{
		Id:                 id,
		Name:               name,
		IsStation:          normalize.ParseOX(isStation),
		IsPassengerStation: normalize.ParseOX(isPassengerStation),
	}
}

// NewTrackCircuit builds a track circuit. An empty protection zone cell
// yields a nil ProtectionZone; a non-numeric one is an error.
func NewTrackCircuit(name string, up, down []string, protectionZone string) (TrackCircuit, error) {
	zone, err := normalize.ParseOptionalInt(protectionZone)
	if err != nil {
		return TrackCircuit{}, err
	}
	return TrackCircuit{
		Name:                name,
		Last:                "",
		On:                  false,
		NextSignalNamesUp:   normalize.RemoveNashi(up),
		NextSignalNamesDown: normalize.RemoveNashi(down),
		ProtectionZone:      zone,
	}, nil
}

// NewSignal builds a signal in its initial phase with placeholder entries removed.
func NewSignal(name, typeName string, next, routes []string) Signal {
	return Signal{
		Name:            name,
		Phase:           InitialPhase,
		TypeName:        typeName,
		NextSignalNames: normalize.RemoveNashi(next),
		RouteNames:      normalize.RemoveNashi(routes),
	}
}

// NewSignalType builds a signal type from its five aspect cells.
func NewSignalType(name, r, yy, y, yg, g string) SignalType {
	return SignalType{
		Name:         name,
		RIndication:  r,
		YYIndication: yy,
		YIndication:  y,
		YGIndication: yg,
		GIndication:  g,
	}
}

// NewThrowOutControl builds a throw-out control pair.
func NewThrowOutControl(source, target, leverCondition string) ThrowOutControl {
	return ThrowOutControl{
		SourceLever:    source,
		TargetLever:    target,
		LeverCondition: leverCondition,
	}
}
