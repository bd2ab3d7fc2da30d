// Package codec is the thin boundary adapter the core package itself stays
// free of: it decodes the pixel-document wire schema (JSON or YAML, same
// field names) into landtrendr's core types, and encodes a Trendline and
// LabelResult back out, including the flattened per-point and per-label
// emissions. This is the "settings loading"/DTO concern the core
// explicitly pushes to its boundary rather than owning itself.
package codec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/usefulrisk/landtrendr"
)

// ObservationWire is one (date, val) pair as it appears on the wire.
type ObservationWire struct {
	Date string  `json:"date" yaml:"date"`
	Val  float64 `json:"val" yaml:"val"`
}

// LabelRuleWire is a LabelRule as it appears on the wire: filters are
// encoded as a two-element (qualifier, operand) array/tuple rather than
// as named sub-objects.
type LabelRuleWire struct {
	Name         string        `json:"name" yaml:"name"`
	Val          int           `json:"val" yaml:"val"`
	ChangeType   string        `json:"change_type,omitempty" yaml:"change_type,omitempty"`
	OnsetYear    []interface{} `json:"onset_year,omitempty" yaml:"onset_year,omitempty"`
	Duration     []interface{} `json:"duration,omitempty" yaml:"duration,omitempty"`
	PreThreshold []interface{} `json:"pre_threshold,omitempty" yaml:"pre_threshold,omitempty"`
}

// PixelDoc is the top-level document decoded at the process boundary: a
// single pixel's observations, its line_cost hyperparameter, and the
// label rules to evaluate against it.
type PixelDoc struct {
	LineCost     float64           `json:"line_cost" yaml:"line_cost"`
	Observations []ObservationWire `json:"observations" yaml:"observations"`
	LabelRules   []LabelRuleWire   `json:"label_rules,omitempty" yaml:"label_rules,omitempty"`
}

// DecodePixelDocJSON parses a PixelDoc from its JSON wire form.
func DecodePixelDocJSON(data []byte) (PixelDoc, error) {
	var doc PixelDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return PixelDoc{}, fmt.Errorf("codec: decode pixel doc json: %w", err)
	}
	return doc, nil
}

// DecodePixelDocYAML parses a PixelDoc from its YAML wire form. The field
// names mirror the JSON ones exactly.
func DecodePixelDocYAML(data []byte) (PixelDoc, error) {
	var doc PixelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return PixelDoc{}, fmt.Errorf("codec: decode pixel doc yaml: %w", err)
	}
	return doc, nil
}

// CoreObservations converts the wire observation list to the core type.
func (d PixelDoc) CoreObservations() []landtrendr.Observation {
	out := make([]landtrendr.Observation, len(d.Observations))
	for i, o := range d.Observations {
		out[i] = landtrendr.Observation{Date: o.Date, Val: o.Val}
	}
	return out
}

// Rules converts and validates the wire label rules, via NewLabelRule, so
// an InvalidRule error surfaces here at the boundary rather than later.
func (d PixelDoc) Rules() ([]landtrendr.LabelRule, error) {
	out := make([]landtrendr.LabelRule, 0, len(d.LabelRules))
	for _, w := range d.LabelRules {
		rule, err := decodeRule(w)
		if err != nil {
			return nil, fmt.Errorf("codec: rule %q: %w", w.Name, err)
		}
		out = append(out, rule)
	}
	return out, nil
}

func decodeRule(w LabelRuleWire) (landtrendr.LabelRule, error) {
	var onsetYear *landtrendr.OnsetYearFilter
	if len(w.OnsetYear) > 0 {
		qual, year, err := qualifierAndInt(w.OnsetYear)
		if err != nil {
			return landtrendr.LabelRule{}, fmt.Errorf("onset_year: %w", err)
		}
		onsetYear = &landtrendr.OnsetYearFilter{Qualifier: landtrendr.Qualifier(qual), Year: year}
	}

	var duration *landtrendr.DurationFilter
	if len(w.Duration) > 0 {
		qual, years, err := qualifierAndInt(w.Duration)
		if err != nil {
			return landtrendr.LabelRule{}, fmt.Errorf("duration: %w", err)
		}
		duration = &landtrendr.DurationFilter{Qualifier: landtrendr.Qualifier(qual), Years: years}
	}

	var preThreshold *landtrendr.PreThresholdFilter
	if len(w.PreThreshold) > 0 {
		qual, val, err := qualifierAndFloat(w.PreThreshold)
		if err != nil {
			return landtrendr.LabelRule{}, fmt.Errorf("pre_threshold: %w", err)
		}
		preThreshold = &landtrendr.PreThresholdFilter{Qualifier: landtrendr.Qualifier(qual), Value: val}
	}

	return landtrendr.NewLabelRule(w.Name, w.Val, landtrendr.ChangeType(w.ChangeType), onsetYear, duration, preThreshold)
}

// qualifierAndInt splits a decoded (qualifier, operand) pair into its
// string qualifier and an integer operand. JSON and YAML numbers both
// decode to float64/int through interface{}; either is accepted, and a
// float64 operand is truncated towards zero.
func qualifierAndInt(pair []interface{}) (string, int, error) {
	qual, operand, err := qualifierAndOperand(pair)
	if err != nil {
		return "", 0, err
	}
	switch v := operand.(type) {
	case float64:
		return qual, int(v), nil
	case int:
		return qual, v, nil
	default:
		return "", 0, fmt.Errorf("operand %v is not numeric", operand)
	}
}

// qualifierAndFloat is qualifierAndInt's float64-operand sibling, used for
// pre_threshold, whose operand is a real value rather than a year count.
func qualifierAndFloat(pair []interface{}) (string, float64, error) {
	qual, operand, err := qualifierAndOperand(pair)
	if err != nil {
		return "", 0, err
	}
	switch v := operand.(type) {
	case float64:
		return qual, v, nil
	case int:
		return qual, float64(v), nil
	default:
		return "", 0, fmt.Errorf("operand %v is not numeric", operand)
	}
}

func qualifierAndOperand(pair []interface{}) (string, interface{}, error) {
	if len(pair) != 2 {
		return "", nil, fmt.Errorf("expected a 2-element (qualifier, operand) pair, got %d elements", len(pair))
	}
	qual, ok := pair[0].(string)
	if !ok {
		return "", nil, fmt.Errorf("qualifier %v is not a string", pair[0])
	}
	return qual, pair[1], nil
}

// TrendlinePointWire is one TrendlinePoint in its wire form.
type TrendlinePointWire struct {
	ValRaw            float64 `json:"val_raw" yaml:"val_raw"`
	ValFit            float64 `json:"val_fit" yaml:"val_fit"`
	EqnFitSlope       float64 `json:"eqn_fit_slope" yaml:"eqn_fit_slope"`
	EqnFitIntercept   float64 `json:"eqn_fit_intercept" yaml:"eqn_fit_intercept"`
	EqnRightSlope     float64 `json:"eqn_right_slope" yaml:"eqn_right_slope"`
	EqnRightIntercept float64 `json:"eqn_right_intercept" yaml:"eqn_right_intercept"`
	IndexDate         string  `json:"index_date" yaml:"index_date"`
	IndexDay          int     `json:"index_day" yaml:"index_day"`
	Spike             bool    `json:"spike" yaml:"spike"`
	Vertex            bool    `json:"vertex" yaml:"vertex"`
}

// LabelMatchWire is one LabelMatch in its wire form.
type LabelMatchWire struct {
	ClassVal  int     `json:"class_val" yaml:"class_val"`
	OnsetYear int     `json:"onset_year" yaml:"onset_year"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Duration  int     `json:"duration" yaml:"duration"`
}

// ResultDoc bundles one pixel's Trendline and ChangeLabels for encoding
// back out at the process boundary, plus the optional flattened
// per-point/per-label maps used downstream for map-building.
type ResultDoc struct {
	Trendline       []TrendlinePointWire      `json:"trendline" yaml:"trendline"`
	ChangeLabels    map[string]LabelMatchWire `json:"change_labels" yaml:"change_labels"`
	FlattenedPoints map[string]float64        `json:"flattened_points,omitempty" yaml:"flattened_points,omitempty"`
	FlattenedLabels map[string]float64        `json:"flattened_labels,omitempty" yaml:"flattened_labels,omitempty"`
}

// NewResultDoc builds a ResultDoc from a Trendline and LabelResult.
// includeFlattened controls whether the §6 flattened maps are populated;
// callers that only want the structured form can skip the extra work.
func NewResultDoc(tl landtrendr.Trendline, labels landtrendr.LabelResult, includeFlattened bool) ResultDoc {
	doc := ResultDoc{
		Trendline:    make([]TrendlinePointWire, len(tl)),
		ChangeLabels: make(map[string]LabelMatchWire, len(labels)),
	}
	for i, p := range tl {
		doc.Trendline[i] = TrendlinePointWire{
			ValRaw:            p.ValRaw,
			ValFit:            p.ValFit,
			EqnFitSlope:       p.EqnFit.Slope,
			EqnFitIntercept:   p.EqnFit.Intercept,
			EqnRightSlope:     p.EqnRight.Slope,
			EqnRightIntercept: p.EqnRight.Intercept,
			IndexDate:         p.IndexDate,
			IndexDay:          p.IndexDay,
			Spike:             p.Spike,
			Vertex:            p.Vertex,
		}
	}
	for name, m := range labels {
		doc.ChangeLabels[name] = LabelMatchWire{
			ClassVal:  m.ClassVal,
			OnsetYear: m.OnsetYear,
			Magnitude: m.Magnitude,
			Duration:  m.Duration,
		}
	}
	if includeFlattened {
		doc.FlattenedPoints = landtrendr.FlattenPoints(tl)
		doc.FlattenedLabels = landtrendr.FlattenLabels(labels)
	}
	return doc
}

// EncodeJSON marshals the ResultDoc as indented JSON.
func (d ResultDoc) EncodeJSON() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode result json: %w", err)
	}
	return out, nil
}

// EncodeYAML marshals the ResultDoc as YAML.
func (d ResultDoc) EncodeYAML() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("codec: encode result yaml: %w", err)
	}
	return out, nil
}
