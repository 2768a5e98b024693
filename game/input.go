package game

// Input carries the discrete signals a frontend sampled for one tick.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Rotate    bool
	SoftDrop  bool
	Pause     bool
	Quit      bool
}
