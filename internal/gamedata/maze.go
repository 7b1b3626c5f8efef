package gamedata

// MazeFile is the embedded maze layout.
const MazeFile = "maze.txt"

// LoadMaze returns the rows of the embedded maze layout.
// Validation of the rows is left to world.Parse.
func LoadMaze() ([]string, error) {
	return LoadLines(MazeFile)
}
