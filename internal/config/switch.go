package config

import (
	"encoding/json"
	"strconv"
)

// Switch is an on/off setting that also records whether any source set it.
// An explicit off is a non-zero value, so it survives the merge and can
// override an earlier on.
type Switch uint8

const (
	SwitchUnset Switch = iota
	SwitchOff
	SwitchOn
)

// NewSwitch returns SwitchOn or SwitchOff.
func NewSwitch(on bool) Switch {
	if on {
		return SwitchOn
	}
	return SwitchOff
}

// On reports whether the switch is set to on. Unset counts as off.
func (s Switch) On() bool {
	return s == SwitchOn
}

// String implements flag.Value.
func (s Switch) String() string {
	if s == SwitchUnset {
		return ""
	}
	return strconv.FormatBool(s.On())
}

// Set implements flag.Value.
func (s *Switch) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*s = NewSwitch(on)
	return nil
}

// IsBoolFlag lets the flag be given without a value.
func (s *Switch) IsBoolFlag() bool {
	return true
}

// UnmarshalText is used by the env parser.
func (s *Switch) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

func (s *Switch) UnmarshalJSON(data []byte) error {
	var on bool
	if err := json.Unmarshal(data, &on); err != nil {
		return err
	}
	*s = NewSwitch(on)
	return nil
}

func (s Switch) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.On())
}
