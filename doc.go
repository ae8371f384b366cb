// Package embers is a small time-stepped particle library for fireworks-style
// effects on [Ebitengine].
//
// # Storage and storables
//
// A [Storage] owns every live effect. Each effect implements [Storable]: it
// owns its renderable [Node] handles, advances itself when updated and
// reports when it has expired. Storage registers renderables with a
// [Surface] when an effect is added and removes them when it expires, so the
// surface always shows exactly the live set.
//
//	scene := embers.NewScene()
//	storage := embers.NewStorage(scene)
//	cfg := embers.DefaultConfig()
//
//	storage.Add(embers.NewShell(now, embers.Vec3{}, cfg.Shell))
//
//	// once per frame, with a monotonic millisecond clock:
//	storage.Update(now)
//
// Three storables are provided: [Ember] (one decaying particle), [Shell]
// (many embers bursting from one point and expiring together) and [Trailer]
// (a particle that spawns a motionless ember every interval). A storable may
// return new storables from Update; Storage adds them after the current pass.
//
// # Running
//
// [Run] opens a window, steps the storage from the ebiten game loop and
// forwards clicks, mapped onto the z=0 backdrop, to a callback:
//
//	embers.Run(scene, storage, embers.RunConfig{
//		Title: "Fireworks", Width: 800, Height: 600,
//		OnClick: func(at embers.Vec3, _ embers.MouseButton, now float64) {
//			embers.Launch(storage, embers.LaunchBurst, now, at, &cfg)
//		},
//	})
//
// Tunables load from YAML with [LoadConfig]; scripted launches from YAML
// with [LoadShow].
//
// The embers/term package draws a storage into a terminal with tcell, and
// the embers/ecs module forwards lifecycle events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package embers
