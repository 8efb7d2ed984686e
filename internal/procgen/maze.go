package procgen

import (
	"fmt"

	"github.com/vovakirdan/lightline/internal/rng"
)

func init() {
	Register(&mazeGenerator{})
}

// mazeGenerator carves a maze with a recursive backtracker over a coarse
// cell grid (cells sit at odd tile coordinates with one-tile walls between
// them), then post-processes it with rooms, corridor widening, and water
// patches before placing anchors by quadrant.
type mazeGenerator struct{}

func (g *mazeGenerator) ID() string   { return "maze" }
func (g *mazeGenerator) Version() int { return 2 }

const (
	minFloorWidth  = 20
	minFloorHeight = 12
)

func (g *mazeGenerator) Generate(req Request, attemptSeed uint64) (Floor, error) {
	if req.Width < minFloorWidth || req.Height < minFloorHeight {
		return Floor{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, req.Width, req.Height)
	}

	stream := rng.NewStream(attemptSeed)

	// Maze dimensions: each cell is 1 tile with 1-tile walls between.
	cellW := (req.Width - 1) / 2
	cellH := (req.Height - 1) / 2
	maze := newMazeCells(cellW, cellH)
	maze.carve(stream)

	grid := NewGrid(req.Width, req.Height, TileWall)
	maze.toTiles(&grid)

	rooms := carveRooms(&grid, stream, req.FloorIndex)
	widenCorridors(&grid, stream, req.FloorIndex)
	addWaterPatches(&grid, rooms, stream)

	// Enforce border walls.
	for x := 0; x < grid.Width; x++ {
		grid.Tiles[grid.Index(x, 0)] = TileWall
		grid.Tiles[grid.Index(x, grid.Height-1)] = TileWall
	}
	for y := 0; y < grid.Height; y++ {
		grid.Tiles[grid.Index(0, y)] = TileWall
		grid.Tiles[grid.Index(grid.Width-1, y)] = TileWall
	}

	anchors := placeAnchors(maze, rooms, req, stream)

	// Anchor tiles must be passable regardless of what post-processing left
	// behind.
	for _, a := range anchors {
		grid.Tiles[grid.Index(a.X, a.Y)] = TileFloor
	}

	start, _ := findAnchor(anchors, AnchorPlayerStart)
	reach := reachableFrom(grid, start.X, start.Y)
	for _, a := range anchors {
		if !reach[grid.Index(a.X, a.Y)] {
			return Floor{}, fmt.Errorf("procgen: anchor %s at (%d,%d) unreachable from start", a.Kind, a.X, a.Y)
		}
	}

	return Floor{Grid: grid, Anchors: anchors}, nil
}

// mazeCells is the coarse maze topology: which walls between adjacent cells
// have been opened.
type mazeCells struct {
	w, h      int
	rightOpen []bool
	downOpen  []bool
}

func newMazeCells(w, h int) *mazeCells {
	return &mazeCells{
		w:         w,
		h:         h,
		rightOpen: make([]bool, w*h),
		downOpen:  make([]bool, w*h),
	}
}

func (m *mazeCells) index(cx, cy int) int { return cy*m.w + cx }

func (m *mazeCells) openWall(cx1, cy1, cx2, cy2 int) {
	switch {
	case cx2 == cx1+1 && cy2 == cy1:
		m.rightOpen[m.index(cx1, cy1)] = true
	case cx1 == cx2+1 && cy1 == cy2:
		m.rightOpen[m.index(cx2, cy2)] = true
	case cy2 == cy1+1 && cx2 == cx1:
		m.downOpen[m.index(cx1, cy1)] = true
	case cy1 == cy2+1 && cx1 == cx2:
		m.downOpen[m.index(cx2, cy2)] = true
	}
}

// openWallCount returns how many passages a cell has. A count of one marks
// a dead end, which anchor placement prefers.
func (m *mazeCells) openWallCount(cx, cy int) int {
	count := 0
	idx := m.index(cx, cy)
	if cx > 0 && m.rightOpen[m.index(cx-1, cy)] {
		count++
	}
	if cx+1 < m.w && m.rightOpen[idx] {
		count++
	}
	if cy > 0 && m.downOpen[m.index(cx, cy-1)] {
		count++
	}
	if cy+1 < m.h && m.downOpen[idx] {
		count++
	}
	return count
}

// carve runs the recursive backtracker with an explicit stack.
func (m *mazeCells) carve(stream *rng.Stream) {
	visited := make([]bool, m.w*m.h)
	type cell struct{ x, y int }
	stack := []cell{{0, 0}}
	visited[0] = true

	var neighbors []cell
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		neighbors = neighbors[:0]
		if cur.x > 0 && !visited[m.index(cur.x-1, cur.y)] {
			neighbors = append(neighbors, cell{cur.x - 1, cur.y})
		}
		if cur.x+1 < m.w && !visited[m.index(cur.x+1, cur.y)] {
			neighbors = append(neighbors, cell{cur.x + 1, cur.y})
		}
		if cur.y > 0 && !visited[m.index(cur.x, cur.y-1)] {
			neighbors = append(neighbors, cell{cur.x, cur.y - 1})
		}
		if cur.y+1 < m.h && !visited[m.index(cur.x, cur.y+1)] {
			neighbors = append(neighbors, cell{cur.x, cur.y + 1})
		}

		if len(neighbors) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := neighbors[stream.Intn(len(neighbors))]
		m.openWall(cur.x, cur.y, next.x, next.y)
		visited[m.index(next.x, next.y)] = true
		stack = append(stack, next)
	}
}

func cellToTile(cx, cy int) (int, int) {
	return 1 + cx*2, 1 + cy*2
}

func wallBetween(cx1, cy1, cx2, cy2 int) (int, int) {
	tx1, ty1 := cellToTile(cx1, cy1)
	tx2, ty2 := cellToTile(cx2, cy2)
	return (tx1 + tx2) / 2, (ty1 + ty2) / 2
}

// toTiles stamps the carved maze onto an all-wall tile grid.
func (m *mazeCells) toTiles(grid *Grid) {
	for cy := 0; cy < m.h; cy++ {
		for cx := 0; cx < m.w; cx++ {
			tx, ty := cellToTile(cx, cy)
			grid.Tiles[grid.Index(tx, ty)] = TileFloor

			idx := m.index(cx, cy)
			if cx+1 < m.w && m.rightOpen[idx] {
				wx, wy := wallBetween(cx, cy, cx+1, cy)
				grid.Tiles[grid.Index(wx, wy)] = TileFloor
			}
			if cy+1 < m.h && m.downOpen[idx] {
				wx, wy := wallBetween(cx, cy, cx, cy+1)
				grid.Tiles[grid.Index(wx, wy)] = TileFloor
			}
		}
	}
}

type room struct {
	x, y, w, h int
	cx, cy     int
}

// carveRooms opens a few rectangular rooms. Deeper floors allow slightly
// more rooms.
func carveRooms(grid *Grid, stream *rng.Stream, floorIndex int) []room {
	extra := floorIndex / 3
	if extra > 2 {
		extra = 2
	}
	roomCount := 2 + stream.Intn(3+extra)

	var rooms []room
	for i := 0; i < roomCount; i++ {
		rw := 3 + stream.Intn(3)
		rh := 3 + stream.Intn(2)

		xSpace := grid.Width - (rw + 3)
		ySpace := grid.Height - (rh + 3)
		if xSpace <= 0 || ySpace <= 0 {
			continue
		}

		for try := 0; try < 20; try++ {
			rx := 2 + stream.Intn(xSpace)
			ry := 2 + stream.Intn(ySpace)
			if rx+rw >= grid.Width-1 || ry+rh >= grid.Height-1 {
				continue
			}

			for dy := 0; dy < rh; dy++ {
				for dx := 0; dx < rw; dx++ {
					grid.Tiles[grid.Index(rx+dx, ry+dy)] = TileFloor
				}
			}

			rooms = append(rooms, room{
				x: rx, y: ry, w: rw, h: rh,
				cx: rx + rw/2, cy: ry + rh/2,
			})
			break
		}
	}
	return rooms
}

// widenCorridors knocks out occasional walls next to floor tiles so the maze
// is not uniformly one tile wide. Deeper floors widen a bit more.
func widenCorridors(grid *Grid, stream *rng.Stream, floorIndex int) {
	chance := 20 + floorIndex
	if chance > 35 {
		chance = 35
	}
	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 2; y < grid.Height-2; y++ {
		for x := 2; x < grid.Width-2; x++ {
			if grid.Tile(x, y) != TileFloor {
				continue
			}
			if stream.Intn(100) >= chance {
				continue
			}

			d := dirs[stream.Intn(4)]
			nx, ny := x+d[0], y+d[1]
			if nx == 0 || ny == 0 || nx >= grid.Width-1 || ny >= grid.Height-1 {
				continue
			}
			if grid.Tile(nx, ny) == TileWall {
				grid.Tiles[grid.Index(nx, ny)] = TileFloor
			}
		}
	}
}

// addWaterPatches sprinkles water inside room interiors. Water stays
// walkable; it only changes terrain flavor.
func addWaterPatches(grid *Grid, rooms []room, stream *rng.Stream) {
	for _, r := range rooms {
		if stream.Intn(3) == 0 {
			continue
		}
		count := 1 + stream.Intn(3)
		for i := 0; i < count; i++ {
			wSpace := r.w - 2
			hSpace := r.h - 2
			if wSpace <= 0 || hSpace <= 0 {
				continue
			}
			wx := r.x + 1 + stream.Intn(wSpace)
			wy := r.y + 1 + stream.Intn(hSpace)
			grid.Tiles[grid.Index(wx, wy)] = TileWater
		}
	}
}

// findDeadEnd picks a random dead-end cell inside a cell-region, or reports
// false if the region has none.
func findDeadEnd(m *mazeCells, minCX, minCY, maxCX, maxCY int, stream *rng.Stream) (int, int, bool) {
	type cell struct{ x, y int }
	var deadEnds []cell
	for cy := minCY; cy < maxCY; cy++ {
		for cx := minCX; cx < maxCX; cx++ {
			if m.openWallCount(cx, cy) == 1 {
				deadEnds = append(deadEnds, cell{cx, cy})
			}
		}
	}
	if len(deadEnds) == 0 {
		return 0, 0, false
	}
	pick := deadEnds[stream.Intn(len(deadEnds))]
	return pick.x, pick.y, true
}

// anyCell picks a random cell inside a cell-region.
func anyCell(m *mazeCells, minCX, minCY, maxCX, maxCY int, stream *rng.Stream) (int, int) {
	w := maxCX - minCX
	if w < 1 {
		w = 1
	}
	h := maxCY - minCY
	if h < 1 {
		h = 1
	}
	cx := minCX + stream.Intn(w)
	cy := minCY + stream.Intn(h)
	if cx > m.w-1 {
		cx = m.w - 1
	}
	if cy > m.h-1 {
		cy = m.h - 1
	}
	return cx, cy
}

// regionTile resolves a region to a tile position: a dead end if the region
// has one, any cell otherwise.
func regionTile(m *mazeCells, minCX, minCY, maxCX, maxCY int, stream *rng.Stream) (int, int) {
	cx, cy, ok := findDeadEnd(m, minCX, minCY, maxCX, maxCY, stream)
	if !ok {
		cx, cy = anyCell(m, minCX, minCY, maxCX, maxCY, stream)
	}
	return cellToTile(cx, cy)
}

// placeAnchors assigns anchors by quadrant: player start in a top-left dead
// end, exit in a bottom-right dead end, and beacons, relics, and switches
// in room centers or the remaining quadrants. Requested counts beyond the
// quadrant slots fall back to random cells.
func placeAnchors(m *mazeCells, rooms []room, req Request, stream *rng.Stream) []Anchor {
	halfW := m.w / 2
	halfH := m.h / 2

	used := make(map[[2]int]bool)
	place := func(kind AnchorKind, x, y int, anchors []Anchor) []Anchor {
		for used[[2]int{x, y}] {
			cx, cy := anyCell(m, 0, 0, m.w, m.h, stream)
			x, y = cellToTile(cx, cy)
		}
		used[[2]int{x, y}] = true
		return append(anchors, Anchor{Kind: kind, X: x, Y: y})
	}

	var anchors []Anchor

	sx, sy := regionTile(m, 0, 0, halfW, halfH, stream)
	anchors = place(AnchorPlayerStart, sx, sy, anchors)

	ex, ey := regionTile(m, halfW, halfH, m.w, m.h, stream)
	anchors = place(AnchorExit, ex, ey, anchors)

	// roomSpot hands out room centers in order, then falls back to the
	// given quadrant.
	roomIdx := 0
	roomSpot := func(minCX, minCY, maxCX, maxCY int) (int, int) {
		if roomIdx < len(rooms) {
			r := rooms[roomIdx]
			roomIdx++
			return r.cx, r.cy
		}
		return regionTile(m, minCX, minCY, maxCX, maxCY, stream)
	}

	for i := 0; i < req.Beacons; i++ {
		x, y := roomSpot(halfW/2, halfH/2, m.w-halfW/2, m.h-halfH/2)
		anchors = place(AnchorBeacon, x, y, anchors)
	}
	for i := 0; i < req.Relics; i++ {
		x, y := roomSpot(halfW, 0, m.w, halfH)
		anchors = place(AnchorRelic, x, y, anchors)
	}
	for i := 0; i < req.Switches; i++ {
		x, y := roomSpot(0, halfH, halfW, m.h)
		anchors = place(AnchorSwitch, x, y, anchors)
	}

	return anchors
}

func findAnchor(anchors []Anchor, kind AnchorKind) (Anchor, bool) {
	for _, a := range anchors {
		if a.Kind == kind {
			return a, true
		}
	}
	return Anchor{}, false
}

// reachableFrom floods the grid from a start tile and returns the visited
// set, used to validate that every anchor is on the start's component.
func reachableFrom(grid Grid, sx, sy int) []bool {
	visited := make([]bool, len(grid.Tiles))
	if !grid.Walkable(sx, sy) {
		return visited
	}
	type pos struct{ x, y int }
	queue := []pos{{sx, sy}}
	visited[grid.Index(sx, sy)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if !grid.Walkable(nx, ny) {
				continue
			}
			ni := grid.Index(nx, ny)
			if !visited[ni] {
				visited[ni] = true
				queue = append(queue, pos{nx, ny})
			}
		}
	}
	return visited
}
