package flat

// Updateable things advance once per host tick.
type Updateable interface {
	Update()
}

// Drawable things paint onto the canvas once per frame.
type Drawable interface {
	Draw(c Canvas)
}

// Playable things are told about the canvas once, before the first frame.
type Playable interface {
	BeginPlay(c Canvas)
}
