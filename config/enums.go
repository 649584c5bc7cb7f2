package config

import yaml "gopkg.in/yaml.v3"

// Specification of requested output type.
// ENUM(xlsx, ods, csv)
type OutputFmt int

// NeedsFontTable reports whether the format emits a consolidated font table
// and therefore needs font tracking during style registration.
func (o OutputFmt) NeedsFontTable() bool {
	return o == OutputFmtOds
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtXlsx:
		return ".xlsx"
	case OutputFmtOds:
		return ".ods"
	case OutputFmtCsv:
		return ".csv"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// MarshalYAML stores the enum under its name.
func (o OutputFmt) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML accepts the enum name.
func (o *OutputFmt) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseOutputFmt(name)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
