package config

// AppConfig is the root configuration structure
type AppConfig struct {
	DataDir  string        `yaml:"dataDir" validate:"required"`
	Output   string        `yaml:"output"`
	Encoding string        `yaml:"encoding" validate:"oneof=utf-8 shift_jis"`
	Inputs   InputPaths    `yaml:"inputs"`
	Layouts  Layouts       `yaml:"layouts"`
	Logging  LoggingConfig `yaml:"logging"`
}

// InputPaths names the five source tables. Relative paths are resolved
// against AppConfig.DataDir.
type InputPaths struct {
	Station         string `yaml:"station" validate:"required"`
	TrackCircuit    string `yaml:"trackCircuit" validate:"required"`
	Signal          string `yaml:"signal" validate:"required"`
	SignalType      string `yaml:"signalType" validate:"required"`
	ThrowOutControl string `yaml:"throwOutControl" validate:"required"`
}

// Layouts holds the column positions of every table
type Layouts struct {
	Station         StationLayout         `yaml:"station"`
	TrackCircuit    TrackCircuitLayout    `yaml:"trackCircuit"`
	Signal          SignalLayout          `yaml:"signal"`
	SignalType      SignalTypeLayout      `yaml:"signalType"`
	ThrowOutControl ThrowOutControlLayout `yaml:"throwOutControl"`
}

// StationLayout holds the station table columns.
type StationLayout struct {
	Id                 int `yaml:"id" validate:"gte=0"`
	Name               int `yaml:"name" validate:"gte=0"`
	IsStation          int `yaml:"isStation" validate:"gte=0"`
	IsPassengerStation int `yaml:"isPassengerStation" validate:"gte=0"`
}

// TrackCircuitLayout holds the track circuit table columns.
type TrackCircuitLayout struct {
	Name                int   `yaml:"name" validate:"gte=0"`
	NextSignalNamesUp   []int `yaml:"nextSignalNamesUp" validate:"min=1,dive,gte=0"`
	NextSignalNamesDown []int `yaml:"nextSignalNamesDown" validate:"min=1,dive,gte=0"`
	ProtectionZone      int   `yaml:"protectionZone" validate:"gte=0"`
}

// SignalLayout holds the signal table columns. RouteNames may be empty.
type SignalLayout struct {
	Name            int   `yaml:"name" validate:"gte=0"`
	TypeName        int   `yaml:"typeName" validate:"gte=0"`
	NextSignalNames []int `yaml:"nextSignalNames" validate:"min=1,dive,gte=0"`
	RouteNames      []int `yaml:"routeNames" validate:"dive,gte=0"`
}

// SignalTypeLayout holds the signal type table columns.
type SignalTypeLayout struct {
	Name         int `yaml:"name" validate:"gte=0"`
	RIndication  int `yaml:"rIndication" validate:"gte=0"`
	YYIndication int `yaml:"yyIndication" validate:"gte=0"`
	YIndication  int `yaml:"yIndication" validate:"gte=0"`
	YGIndication int `yaml:"ygIndication" validate:"gte=0"`
	GIndication  int `yaml:"gIndication" validate:"gte=0"`
}

// ThrowOutControlLayout holds the throw-out control table columns.
type ThrowOutControlLayout struct {
	SourceLever    int `yaml:"sourceLever" validate:"gte=0"`
	TargetLever    int `yaml:"targetLever" validate:"gte=0"`
	LeverCondition int `yaml:"leverCondition" validate:"gte=0"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}
