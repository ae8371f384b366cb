package embers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LaunchKind selects what a launch spawns.
type LaunchKind uint8

const (
	LaunchBurst   LaunchKind = iota // Launch.Trailers trailers plus Launch.Embers loose embers
	LaunchShell                     // one explosive shell
	LaunchTrailer                   // one trailer
	LaunchEmber                     // one loose ember
)

var launchKindNames = [...]string{
	LaunchBurst:   "burst",
	LaunchShell:   "shell",
	LaunchTrailer: "trailer",
	LaunchEmber:   "ember",
}

// String returns the kind's name as used in show files.
func (k LaunchKind) String() string {
	if int(k) < len(launchKindNames) {
		return launchKindNames[k]
	}
	return fmt.Sprintf("LaunchKind(%d)", uint8(k))
}

// ParseLaunchKind returns the kind with the given name.
func ParseLaunchKind(name string) (LaunchKind, error) {
	for k, n := range launchKindNames {
		if n == name {
			return LaunchKind(k), nil
		}
	}
	return 0, fmt.Errorf("embers: unknown launch kind %q", name)
}

// UnmarshalYAML decodes a kind from its name.
func (k *LaunchKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseLaunchKind(name)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalYAML encodes a kind as its name.
func (k LaunchKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Launch adds the storables for one launch of kind at pos to st and returns
// how many were added. now is the current frame time in milliseconds.
func Launch(st *Storage, kind LaunchKind, now float64, pos Vec3, cfg *Config) int {
	switch kind {
	case LaunchBurst:
		for i := 0; i < cfg.Launch.Trailers; i++ {
			st.Add(NewTrailer(now, pos, RandomVelocity(cfg.Trailer.Speed, cfg.Trailer.Lift), cfg.Trailer))
		}
		for i := 0; i < cfg.Launch.Embers; i++ {
			st.Add(NewEmber(now, pos, RandomVelocity(cfg.Launch.Speed, cfg.Launch.Lift), cfg.Ember))
		}
		return cfg.Launch.Trailers + cfg.Launch.Embers
	case LaunchShell:
		st.Add(NewShell(now, pos, cfg.Shell))
	case LaunchTrailer:
		st.Add(NewTrailer(now, pos, RandomVelocity(cfg.Trailer.Speed, cfg.Trailer.Lift), cfg.Trailer))
	case LaunchEmber:
		st.Add(NewEmber(now, pos, RandomVelocity(cfg.Launch.Speed, cfg.Launch.Lift), cfg.Ember))
	default:
		panic(fmt.Sprintf("embers: unknown launch kind %d", kind))
	}
	return 1
}
