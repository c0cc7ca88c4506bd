package flat

import (
	"golang.org/x/exp/slices"
)

// World is the set of things a host drives every frame.  Anything added
// may implement any combination of Updateable, Drawable and Playable.
type World struct {
	updateables []Updateable
	drawables   []Drawable
	playables   []Playable
}

func NewWorld() *World {
	w := &World{}
	w.reset()
	return w
}

func (w *World) reset() {
	w.updateables = nil
	w.drawables = nil
	w.playables = nil
}

func (w *World) AddToWorld(thing any) {
	if updateable, ok := thing.(Updateable); ok {
		w.updateables = append(w.updateables, updateable)
	}
	if drawable, ok := thing.(Drawable); ok {
		w.drawables = append(w.drawables, drawable)
	}
	if playable, ok := thing.(Playable); ok {
		w.playables = append(w.playables, playable)
	}
}

func (w *World) RemoveFromWorld(thing any) {
	if updateable, ok := thing.(Updateable); ok {
		w.updateables = slices.DeleteFunc(w.updateables, func(u Updateable) bool {
			return u == updateable
		})
	}
	if drawable, ok := thing.(Drawable); ok {
		w.drawables = slices.DeleteFunc(w.drawables, func(d Drawable) bool {
			return d == drawable
		})
	}
	if playable, ok := thing.(Playable); ok {
		w.playables = slices.DeleteFunc(w.playables, func(p Playable) bool {
			return p == playable
		})
	}
}

// BeginPlay hands c to every Playable in insertion order.
func (w *World) BeginPlay(c Canvas) {
	for _, playable := range w.playables {
		playable.BeginPlay(c)
	}
}

func (w *World) Update() {
	for _, updateable := range w.updateables {
		updateable.Update()
	}
}

func (w *World) Draw(c Canvas) {
	for _, drawable := range w.drawables {
		drawable.Draw(c)
	}
}
