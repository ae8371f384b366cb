package embers

import (
	"fmt"
	"log"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
)

// showStep is a single scheduled launch in a show script.
type showStep struct {
	// At is the offset in milliseconds from the start of the show.
	At     float64    `yaml:"at"`
	Launch LaunchKind `yaml:"launch"`
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Z      float64    `yaml:"z"`
	Count  int        `yaml:"count"`
}

// showScript is the top-level YAML structure for a show script.
type showScript struct {
	Steps []showStep `yaml:"steps"`
	// Loop restarts the show this many milliseconds after it began.
	// 0 plays the show once.
	Loop float64 `yaml:"loop"`
}

// Show sequences scripted launches across frames. The first call to Step
// marks the start of the show; steps fire on the first tick at or after
// their offset.
type Show struct {
	steps   []showStep
	loop    float64
	cursor  int
	start   float64
	started bool
	done    bool
}

// LoadShow parses a YAML show script.
func LoadShow(data []byte) (*Show, error) {
	var script showScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("embers: parse show: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("embers: parse show: no steps")
	}
	if script.Loop < 0 {
		return nil, fmt.Errorf("embers: parse show: negative loop")
	}
	steps := script.Steps
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })
	if script.Loop > 0 && steps[len(steps)-1].At >= script.Loop {
		log.Printf("embers: show step at %vms is past the loop length %vms and never fires", steps[len(steps)-1].At, script.Loop)
	}
	return &Show{steps: steps, loop: script.Loop}, nil
}

// Done reports whether every step has fired. A looping show is never done.
func (sh *Show) Done() bool {
	return sh.done
}

// Step launches every step due at now into st and returns the number of
// storables added. A looping show that fell behind finishes the cycle in
// progress, skips any whole cycles missed during the stall and resumes at
// the current offset of the cycle now is in.
func (sh *Show) Step(now float64, st *Storage, cfg *Config) int {
	if sh.done {
		return 0
	}
	if !sh.started {
		sh.start = now
		sh.started = true
	}

	added := 0
	if sh.loop > 0 && now-sh.start >= sh.loop {
		added += sh.fire(math.Inf(1), now, st, cfg)
		sh.start += math.Floor((now-sh.start)/sh.loop) * sh.loop
		sh.cursor = 0
	}
	added += sh.fire(now-sh.start, now, st, cfg)

	if sh.loop == 0 && sh.cursor >= len(sh.steps) {
		sh.done = true
	}
	return added
}

// fire launches the pending steps with an offset up to limit.
func (sh *Show) fire(limit, now float64, st *Storage, cfg *Config) int {
	added := 0
	for sh.cursor < len(sh.steps) && sh.steps[sh.cursor].At <= limit {
		step := sh.steps[sh.cursor]
		sh.cursor++
		if sh.loop > 0 && step.At >= sh.loop {
			continue
		}
		count := step.Count
		if count <= 0 {
			count = 1
		}
		pos := Vec3{X: step.X, Y: step.Y, Z: step.Z}
		for i := 0; i < count; i++ {
			added += Launch(st, step.Launch, now, pos, cfg)
		}
	}
	return added
}
