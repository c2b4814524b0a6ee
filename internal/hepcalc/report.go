package hepcalc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// ErrUnknownFormat is returned by NewReporter for unsupported formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Report is everything a run produced, in event order.
type Report struct {
	RunID   string
	Results []Result
}

// Reporter writes a Report somewhere.
type Reporter interface {
	Report(w io.Writer, r Report) error
}

func NewReporter(format string) (Reporter, error) {
	switch format {
	case "", FormatText:
		return TextReporter{}, nil
	case FormatJSON:
		return JSONReporter{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// TextReporter prints the three inputs of every event followed by the answer.
type TextReporter struct{}

func (TextReporter) Report(w io.Writer, r Report) error {
	for _, res := range r.Results {
		a, b, c := res.Inputs[0], res.Inputs[1], res.Inputs[2]
		if _, err := fmt.Fprintf(w, "%s\n%v\n%v\n%v\n", Header, a, b, c); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%.9g\n", AnswerPrefix, res.Answer); err != nil {
			return err
		}
	}
	return nil
}

// JSONReporter writes one JSON document for the whole run. Non-finite
// numbers are written as the strings "NaN", "+Inf" and "-Inf".
type JSONReporter struct {
	Indent string
}

// jsonReal is a float that survives JSON encoding when it is not finite.
type jsonReal Real

func (x jsonReal) MarshalJSON() ([]byte, error) {
	f := Real(x)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type jsonMomentum struct {
	E  jsonReal `json:"e"`
	Px jsonReal `json:"px"`
	Py jsonReal `json:"py"`
	Pz jsonReal `json:"pz"`
	M2 jsonReal `json:"m2"`
}

func toJSONMomentum(f FourMomentum) jsonMomentum {
	return jsonMomentum{
		E: jsonReal(f.E()), Px: jsonReal(f.Px()), Py: jsonReal(f.Py()), Pz: jsonReal(f.Pz()),
		M2: jsonReal(f.M2()),
	}
}

type jsonResult struct {
	Name        string       `json:"name,omitempty"`
	A           jsonMomentum `json:"a"`
	B           jsonMomentum `json:"b"`
	C           jsonMomentum `json:"c"`
	Transformed jsonMomentum `json:"transformed"`
	LogSoft     jsonReal     `json:"logSoft"`
	LogHard     jsonReal     `json:"logHard"`
	LogProduct  jsonReal     `json:"logProduct"`
	Dot         jsonReal     `json:"dot"`
	Answer      jsonReal     `json:"answer"`
	Finite      bool         `json:"finite"`
}

type jsonReport struct {
	RunID   string       `json:"runId,omitempty"`
	Results []jsonResult `json:"results"`
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func (j JSONReporter) Report(w io.Writer, r Report) error {
	out := jsonReport{RunID: r.RunID, Results: make([]jsonResult, 0, len(r.Results))}
	for _, res := range r.Results {
		out.Results = append(out.Results, jsonResult{
			Name:        res.Name,
			A:           toJSONMomentum(res.Inputs[0]),
			B:           toJSONMomentum(res.Inputs[1]),
			C:           toJSONMomentum(res.Inputs[2]),
			Transformed: toJSONMomentum(res.Transformed),
			LogSoft:     jsonReal(res.LogSoft),
			LogHard:     jsonReal(res.LogHard),
			LogProduct:  jsonReal(res.LogProduct),
			Dot:         jsonReal(res.Dot),
			Answer:      jsonReal(res.Answer),
			Finite:      res.Finite(),
		})
	}
	enc := jsonAPI.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(out)
}
