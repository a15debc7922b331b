package shader

import (
	"fmt"
	"strings"
)

// Body selects the shading algorithm
type Body int

// Body kinds
const (
	BlackHole Body = iota
	AccretionDisk
	Rocky
	GasGiant
	Ice
)

// Bodies lists every body kind in key-binding order
var Bodies = []Body{Rocky, GasGiant, Ice, AccretionDisk, BlackHole}

var bodyNames = map[Body]string{
	BlackHole:     "black-hole",
	AccretionDisk: "accretion-disk",
	Rocky:         "rocky",
	GasGiant:      "gas-giant",
	Ice:           "ice",
}

// String returns the config/CLI name of the body
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return fmt.Sprintf("body(%d)", int(b))
}

// ParseBody resolves a body name. Underscores and case are ignored.
func ParseBody(name string) (Body, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for b, n := range bodyNames {
		if n == key || strings.ReplaceAll(n, "-", "") == key {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}

// MarshalYAML implements yaml.Marshaler
func (b Body) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (b *Body) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseBody(name)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
