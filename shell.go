package embers

// Shell is an explosive shell: a fixed set of embers created together at one
// origin, flying apart independently and expiring together.
type Shell struct {
	cfg        ShellConfig
	motes      []mote
	nodes      []*Node
	created    float64
	lastUpdate float64
	fade       *Fade
}

// NewShell bursts cfg.Count embers out of origin, each with its own random
// velocity. now is the current frame time in milliseconds.
func NewShell(now float64, origin Vec3, cfg ShellConfig) *Shell {
	velocities := make([]Vec3, cfg.Count)
	for i := range velocities {
		velocities[i] = RandomVelocity(cfg.Speed, cfg.Lift)
	}
	return NewShellWithVelocities(now, origin, velocities, cfg)
}

// NewShellWithVelocities creates one ember per velocity at origin. The count
// in cfg is ignored.
func NewShellWithVelocities(now float64, origin Vec3, velocities []Vec3, cfg ShellConfig) *Shell {
	s := &Shell{
		cfg:        cfg,
		motes:      make([]mote, len(velocities)),
		nodes:      make([]*Node, len(velocities)),
		created:    now,
		lastUpdate: now,
	}
	s.cfg.Count = len(velocities)
	for i, v := range velocities {
		n := NewQuad("shell ember", cfg.Ember.Size, cfg.Ember.Color)
		n.Position = origin
		if cfg.Ember.Additive {
			n.BlendMode = BlendAdd
		}
		s.motes[i] = mote{node: n, vel: v}
		s.nodes[i] = n
	}
	return s
}

// Renderables returns one quad per ember.
func (s *Shell) Renderables() []*Node {
	return s.nodes
}

// Update advances every ember of the shell to now.
func (s *Shell) Update(now float64) UpdateResult {
	delta := elapsed(s.lastUpdate, now)
	s.lastUpdate = now

	for i := range s.motes {
		s.motes[i].step(&s.cfg.Ember.Motion, delta, now, 0)
	}

	if s.fade != nil {
		s.fade.Update(float32(delta))
	} else {
		s.fade = endFade(s.nodes, now, s.created, s.cfg.Ember.MaxAge, s.cfg.Ember.FadeOut)
	}
	return UpdateResult{}
}

// IsExpired reports whether the shell has outlived its embers' MaxAge.
func (s *Shell) IsExpired(now float64) bool {
	return now-s.created > s.cfg.Ember.MaxAge
}

// Len returns the number of embers in the shell.
func (s *Shell) Len() int {
	return len(s.motes)
}
