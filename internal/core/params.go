package core

import (
	"strconv"

	"blockies/pkg/identicon"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free text such as seeds.
	ParamTypeString ParamType = "string"
	// ParamTypeColor denotes color text; Swatch carries the resolved value.
	ParamTypeColor ParamType = "color"
)

// Parameter describes a single value shown for an identicon.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string

	Swatch *identicon.Color
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures everything a HUD or describe command shows.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Snapshot describes ic and the seed it was generated from.
func Snapshot(seed string, ic *identicon.Identicon) ParameterSnapshot {
	counts := ic.Grid().Count()
	color := func(key, label string, c identicon.Color) Parameter {
		return Parameter{Key: key, Label: label, Type: ParamTypeColor, Value: c.String(), Swatch: &c}
	}
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Input",
			Params: []Parameter{
				{Key: "seed", Label: "Seed", Type: ParamTypeString, Value: seed},
				{Key: "size", Label: "Size", Type: ParamTypeInt, Value: strconv.Itoa(ic.Size())},
			},
		},
		{
			Name: "Palette",
			Params: []Parameter{
				color("color", "Color", ic.Color()),
				color("bgColor", "Background", ic.BgColor()),
				color("spotColor", "Spot", ic.SpotColor()),
			},
		},
		{
			Name: "Cells",
			Params: []Parameter{
				{Key: "background", Label: "Background", Type: ParamTypeInt, Value: strconv.Itoa(counts[0])},
				{Key: "foreground", Label: "Foreground", Type: ParamTypeInt, Value: strconv.Itoa(counts[1])},
				{Key: "spot", Label: "Spot", Type: ParamTypeInt, Value: strconv.Itoa(counts[2])},
			},
		},
	}}
}

// Lookup finds a parameter by key across groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
