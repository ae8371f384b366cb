package embers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLaunchBurst(t *testing.T) {
	sc := NewScene()
	st := NewStorage(sc)
	cfg := DefaultConfig()

	added := Launch(st, LaunchBurst, 0, Vec3{X: 1}, &cfg)

	assert.Equal(t, 40, added)
	assert.Equal(t, 40, st.Len())
	trailers := 0
	for _, s := range st.Items() {
		if _, ok := s.(*Trailer); ok {
			trailers++
		}
	}
	assert.Equal(t, 8, trailers)
}

func TestLaunchSingleKinds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		kind  LaunchKind
		nodes int
	}{
		{LaunchShell, 64},
		{LaunchTrailer, 1},
		{LaunchEmber, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			sc := NewScene()
			st := NewStorage(sc)
			assert.Equal(t, 1, Launch(st, tt.kind, 0, Vec3{}, &cfg))
			assert.Equal(t, tt.nodes, sc.Len())
		})
	}
}

func TestLaunchUnknownKindPanics(t *testing.T) {
	cfg := DefaultConfig()
	st := NewStorage(NewScene())
	assert.Panics(t, func() { Launch(st, LaunchKind(99), 0, Vec3{}, &cfg) })
}

func TestParseLaunchKind(t *testing.T) {
	for _, k := range []LaunchKind{LaunchBurst, LaunchShell, LaunchTrailer, LaunchEmber} {
		got, err := ParseLaunchKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseLaunchKind("rocket")
	assert.Error(t, err)
	assert.Equal(t, "LaunchKind(9)", LaunchKind(9).String())
}

func TestLaunchKindYAML(t *testing.T) {
	var v struct {
		Kind LaunchKind `yaml:"kind"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("kind: shell"), &v))
	assert.Equal(t, LaunchShell, v.Kind)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "kind: shell\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("kind: rocket"), &v))
}
