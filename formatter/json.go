package formatter

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/pretty"

	"github.com/daidoji-traincrew-office/dbbase-converter/dbbase"
)

// Indent is the indentation unit of the written document.
const Indent = "    "

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   Indent,
	SortKeys: false,
}

// BuildJSON serializes the document as indented JSON ending in a newline.
func BuildJSON(doc *dbbase.Document) []byte {
	return pretty.PrettyOptions(Compact(doc), prettyOptions)
}

// Compact serializes the document without whitespace.
func Compact(doc *dbbase.Document) []byte {
	var b bytes.Buffer
	b.WriteByte('{')
	writeKey(&b, "stationList", true)
	writeList(&b, doc.StationList, writeStationJSON)
	writeKey(&b, "trackCircuitList", false)
	writeList(&b, doc.TrackCircuitList, writeTrackCircuitJSON)
	writeKey(&b, "signalDataList", false)
	writeList(&b, doc.SignalDataList, writeSignalJSON)
	writeKey(&b, "signalTypeList", false)
	writeList(&b, doc.SignalTypeList, writeSignalTypeJSON)
	writeKey(&b, "throwOutControlList", false)
	writeList(&b, doc.ThrowOutControlList, writeThrowOutControlJSON)
	b.WriteByte('}')
	return b.Bytes()
}

func writeStationJSON(b *bytes.Buffer, s dbbase.Station) {
	b.WriteByte('{')
	writeKey(b, "Id", true)
	writeString(b, s.Id)
	writeKey(b, "Name", false)
	writeString(b, s.Name)
	writeKey(b, "IsStation", false)
	writeBool(b, s.IsStation)
	writeKey(b, "IsPassengerStation", false)
	writeBool(b, s.IsPassengerStation)
	b.WriteByte('}')
}

func writeTrackCircuitJSON(b *bytes.Buffer, tc dbbase.TrackCircuit) {
	b.WriteByte('{')
	writeKey(b, "Name", true)
	writeString(b, tc.Name)
	writeKey(b, "Last", false)
	writeString(b, tc.Last)
	writeKey(b, "On", false)
	writeBool(b, tc.On)
	writeKey(b, "NextSignalNamesUp", false)
	writeStrings(b, tc.NextSignalNamesUp)
	writeKey(b, "NextSignalNamesDown", false)
	writeStrings(b, tc.NextSignalNamesDown)
	writeKey(b, "ProtectionZone", false)
	if tc.ProtectionZone == nil {
		b.WriteString("null")
	} else {
		b.WriteString(strconv.Itoa(*tc.ProtectionZone))
	}
	b.WriteByte('}')
}

func writeSignalJSON(b *bytes.Buffer, s dbbase.Signal) {
	b.WriteByte('{')
	writeKey(b, "Name", true)
	writeString(b, s.Name)
	writeKey(b, "phase", false)
	b.WriteString(strconv.Itoa(s.Phase))
	writeKey(b, "TypeName", false)
	writeString(b, s.TypeName)
	writeKey(b, "NextSignalNames", false)
	writeStrings(b, s.NextSignalNames)
	writeKey(b, "RouteNames", false)
	writeStrings(b, s.RouteNames)
	b.WriteByte('}')
}

func writeSignalTypeJSON(b *bytes.Buffer, st dbbase.SignalType) {
	b.WriteByte('{')
	writeKey(b, "Name", true)
	writeString(b, st.Name)
	writeKey(b, "RIndication", false)
	writeString(b, st.RIndication)
	writeKey(b, "YYIndication", false)
	writeString(b, st.YYIndication)
	writeKey(b, "YIndication", false)
	writeString(b, st.YIndication)
	writeKey(b, "YGIndication", false)
	writeString(b, st.YGIndication)
	writeKey(b, "GIndication", false)
	writeString(b, st.GIndication)
	b.WriteByte('}')
}

func writeThrowOutControlJSON(b *bytes.Buffer, t dbbase.ThrowOutControl) {
	b.WriteByte('{')
	writeKey(b, "SourceLever", true)
	writeString(b, t.SourceLever)
	writeKey(b, "TargetLever", false)
	writeString(b, t.TargetLever)
	writeKey(b, "LeverCondition", false)
	writeString(b, t.LeverCondition)
	b.WriteByte('}')
}

func writeList[T any](b *bytes.Buffer, items []T, write func(*bytes.Buffer, T)) {
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		write(b, item)
	}
	b.WriteByte(']')
}

func writeStrings(b *bytes.Buffer, xs []string) {
	writeList(b, xs, writeString)
}

func writeKey(b *bytes.Buffer, key string, first bool) {
	if !first {
		b.WriteByte(',')
	}
	writeString(b, key)
	b.WriteByte(':')
}

func writeBool(b *bytes.Buffer, v bool) {
	b.WriteString(strconv.FormatBool(v))
}

// writeString writes s as a JSON string literal. Only quotes, backslashes and
// control characters are escaped; U+2028 and U+2029 are written as-is.
func writeString(b *bytes.Buffer, s string) {
	b.WriteByte('"')
	for {
		i := strings.IndexAny(s, lineSeparators)
		if i < 0 {
			writeEscaped(b, s)
			break
		}
		writeEscaped(b, s[:i])
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		s = s[i+size:]
	}
	b.WriteByte('"')
}

// lineSeparators are escaped by encoding/json unconditionally.
const lineSeparators = "\u2028\u2029"

// writeEscaped writes the escaped body of s without surrounding quotes.
func writeEscaped(b *bytes.Buffer, s string) {
	if s == "" {
		return
	}
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	out := scratch.Bytes()
	// Drop the quotes and the trailing newline added by Encode.
	b.Write(out[1 : len(out)-2])
}
