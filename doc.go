// Package orbitshot is a small retained-mode 2D scene layer for [Ebitengine]
// with the pieces an arcade game needs: a node tree, paths and path
// followers, repeating tweens, a timer clock, line/rectangle geometry,
// pointer input, particles, text, synthesized sound, and scripted runs.
//
// # Quick start
//
// [Run] creates the window and game loop:
//
//	scene := orbitshot.NewScene()
//	// ... add nodes ...
//	orbitshot.Run(scene, orbitshot.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha, and
// siblings paint in ZIndex order.
//
//	sprite := orbitshot.NewSprite("hero", img)
//	sprite.SetOrigin(0.5, 0.5)
//	sprite.SetPosition(100, 50)
//	scene.Root().AddChild(sprite)
//
// A sprite with a nil image draws a one-pixel quad in [Node.Color]; scale it
// to the size you need.
//
// # Time
//
// Each [Scene.Update] is one tick of 1/TPS seconds. In that tick the scene
// runs scripted steps, dispatches input, fires due [Clock] events, advances
// the [TweenManager], calls node OnUpdate callbacks, simulates particles,
// and finally calls the update func set with [Scene.SetUpdateFunc].
//
// # Paths
//
// [Path] chains straight and elliptical segments and is addressed by a
// fraction of its length. [Scene.StartFollow] moves a node along one,
// optionally turning it to face the direction of travel.
//
// ECS integration lives in the orbitshot/ecs package ([Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package orbitshot
