package game

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// GroundMarker identifies the ground instance among the scene instances.
const GroundMarker = -1

// TileInfo records what each spawned instance represents. ColorIndex is
// GroundMarker for the ground.
type TileInfo struct {
	ColorIndex int
}
