package engine

import (
	"slices"
	"testing"
)

func TestSlideScenarios(t *testing.T) {
	tests := []struct {
		name    string
		cells   []int
		dir     Direction
		want    []int
		gained  int
		changed bool
	}{
		{
			name:    "2x2 merge right",
			cells:   []int{2, 2, 0, 0},
			dir:     DirRight,
			want:    []int{0, 4, 0, 0},
			gained:  4,
			changed: true,
		},
		{
			name:    "2x2 column merge down",
			cells:   []int{2, 0, 2, 0},
			dir:     DirDown,
			want:    []int{0, 0, 4, 0},
			gained:  4,
			changed: true,
		},
		{
			name:    "2x2 stuck board",
			cells:   []int{2, 4, 4, 2},
			dir:     DirLeft,
			want:    []int{2, 4, 4, 2},
			gained:  0,
			changed: false,
		},
		{
			name: "left",
			cells: []int{
				2, 2, 0, 0,
				4, 0, 4, 0,
				2, 2, 2, 2,
				0, 0, 0, 2,
			},
			dir: DirLeft,
			want: []int{
				4, 0, 0, 0,
				8, 0, 0, 0,
				4, 4, 0, 0,
				2, 0, 0, 0,
			},
			gained:  20,
			changed: true,
		},
		{
			name: "right",
			cells: []int{
				2, 2, 0, 0,
				4, 0, 4, 0,
				2, 2, 2, 2,
				0, 0, 0, 2,
			},
			dir: DirRight,
			want: []int{
				0, 0, 0, 4,
				0, 0, 0, 8,
				0, 0, 4, 4,
				0, 0, 0, 2,
			},
			gained:  20,
			changed: true,
		},
		{
			name: "up",
			cells: []int{
				2, 4, 2, 0,
				2, 0, 2, 0,
				0, 4, 2, 0,
				0, 0, 2, 2,
			},
			dir: DirUp,
			want: []int{
				4, 8, 4, 2,
				0, 0, 4, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
			gained:  20,
			changed: true,
		},
		{
			name: "down",
			cells: []int{
				2, 4, 2, 2,
				2, 0, 2, 0,
				0, 4, 2, 0,
				0, 0, 2, 0,
			},
			dir: DirDown,
			want: []int{
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 4, 0,
				4, 8, 4, 2,
			},
			gained:  20,
			changed: true,
		},
		{
			name: "three in a row merges the leading pair",
			cells: []int{
				2, 2, 2, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
			dir: DirLeft,
			want: []int{
				4, 2, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
			gained:  4,
			changed: true,
		},
		{
			name: "slide across gaps",
			cells: []int{
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 4, 0, 8,
			},
			dir: DirUp,
			want: []int{
				0, 4, 0, 8,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
			gained:  0,
			changed: true,
		},
		{
			name: "distinct pairs both merge",
			cells: []int{
				2, 0, 0, 0,
				2, 0, 0, 0,
				4, 0, 0, 0,
				4, 0, 0, 0,
			},
			dir: DirDown,
			want: []int{
				0, 0, 0, 0,
				0, 0, 0, 0,
				4, 0, 0, 0,
				8, 0, 0, 0,
			},
			gained:  12,
			changed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.cells)
			res := b.Slide(tt.dir)

			if got := b.Cells(); !slices.Equal(got, tt.want) {
				t.Errorf("Slide(%s): got\n%v\nwant\n%v", tt.dir, got, tt.want)
			}
			if res.Changed != tt.changed {
				t.Errorf("Slide(%s) changed = %v, want %v", tt.dir, res.Changed, tt.changed)
			}
			if res.Gained != tt.gained {
				t.Errorf("Slide(%s) gained = %d, want %d", tt.dir, res.Gained, tt.gained)
			}
			if b.Score() != tt.gained {
				t.Errorf("Score() = %d, want %d", b.Score(), tt.gained)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 8, 0] left becomes [8, 8, 0, 0], not [16, 0, 0, 0]
	b := mustBoard(t, []int{
		4, 4, 8, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	res := b.Slide(DirLeft)

	want := []int{8, 8, 0, 0}
	if got := b.Cells()[:4]; !slices.Equal(got, want) {
		t.Errorf("first row = %v, want %v (one merge per tile per move)", got, want)
	}
	if res.Gained != 8 {
		t.Errorf("gained = %d, want 8", res.Gained)
	}
	if !slices.Equal(res.Merged, []int{0}) {
		t.Errorf("Merged = %v, want [0]", res.Merged)
	}
}

func TestFourEqualTilesMergeInPairs(t *testing.T) {
	b := mustBoard(t, []int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		4, 4, 4, 4,
	})

	res := b.Slide(DirRight)

	want := []int{0, 0, 8, 8}
	if got := b.Cells()[12:]; !slices.Equal(got, want) {
		t.Errorf("last row = %v, want %v", got, want)
	}
	if res.Gained != 16 {
		t.Errorf("gained = %d, want 16", res.Gained)
	}
	if !slices.Equal(res.Merged, []int{14, 15}) {
		t.Errorf("Merged = %v, want [14 15]", res.Merged)
	}
}

func TestChangedFlagIsSticky(t *testing.T) {
	// The 2 slides first; the later 8 is blocked by the 4. The move must
	// still count as changed.
	b := mustBoard(t, []int{
		0, 2,
		4, 8,
	})

	res := b.Slide(DirLeft)
	if !res.Changed {
		t.Error("move with an early slide and a later no-op should be changed")
	}
	if got := b.Cells(); !slices.Equal(got, []int{2, 0, 4, 8}) {
		t.Errorf("Cells() = %v, want [2 0 4 8]", got)
	}
}

func TestBoundaryNoOp(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		dir   Direction
	}{
		{"top row up", []int{2, 4, 8, 0, 0, 0, 0, 0, 0}, DirUp},
		{"bottom row down", []int{0, 0, 0, 0, 0, 0, 2, 4, 8}, DirDown},
		{"left column left", []int{2, 0, 0, 4, 0, 0, 8, 0, 0}, DirLeft},
		{"right column right", []int{0, 0, 2, 0, 0, 4, 0, 0, 8}, DirRight},
		{"empty board", make([]int, 9), DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.cells)
			res := b.Move(tt.dir)

			if res.Changed || res.HasSpawn {
				t.Errorf("Move(%s) = %+v, want no change and no spawn", tt.dir, res)
			}
			if got := b.Cells(); !slices.Equal(got, tt.cells) {
				t.Errorf("board changed: got %v, want %v", got, tt.cells)
			}
			if b.Moves() != 0 {
				t.Errorf("Moves() = %d, want 0", b.Moves())
			}
		})
	}
}

func TestMoveSpawnsAfterChange(t *testing.T) {
	// Empty cells after the slide are [0, 2, 3]; pick the second one, value 2.
	b, err := FromCells([]int{2, 2, 0, 0}, &scriptedSource{ints: []int{1}, floats: []float64{0.5}})
	if err != nil {
		t.Fatal(err)
	}

	res := b.Move(DirRight)

	if !res.Changed || !res.HasSpawn {
		t.Fatalf("Move(right) = %+v, want changed with spawn", res)
	}
	if res.Spawned != 2 {
		t.Errorf("Spawned = %d, want 2", res.Spawned)
	}
	if got := b.Cells(); !slices.Equal(got, []int{0, 4, 2, 0}) {
		t.Errorf("Cells() = %v, want [0 4 2 0]", got)
	}
	if b.Score() != 4 {
		t.Errorf("Score() = %d, want 4", b.Score())
	}
	if index, ok := b.LastSpawn(); !ok || index != 2 {
		t.Errorf("LastSpawn() = (%d, %v), want (2, true)", index, ok)
	}
	if b.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", b.Moves())
	}
}

func TestMoveSpawnLandsInEmptyCell(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b, _ := FromCells([]int{2, 2, 0, 0}, NewSource(seed))
		res := b.Move(DirRight)

		if !res.HasSpawn {
			t.Fatalf("seed %d: expected a spawn", seed)
		}
		if res.Spawned == 1 {
			t.Fatalf("seed %d: spawned on top of the merged tile", seed)
		}
		if got := len(b.EmptyCells()); got != 2 {
			t.Fatalf("seed %d: empty cells = %d, want 2", seed, got)
		}
	}
}

func TestStuckBoardNeverSpawns(t *testing.T) {
	b := mustBoard(t, []int{2, 4, 4, 2})

	if !b.IsFinished() {
		t.Fatal("[2 4 4 2] should be finished")
	}
	for _, dir := range Directions {
		res := b.Move(dir)
		if res.Changed || res.HasSpawn {
			t.Errorf("Move(%s) on a finished board = %+v, want no-op", dir, res)
		}
	}
	if got := b.Cells(); !slices.Equal(got, []int{2, 4, 4, 2}) {
		t.Errorf("Cells() = %v, want unchanged", got)
	}
}

func TestTraversalOrder(t *testing.T) {
	b := mustBoard(t, make([]int, 9))

	tests := []struct {
		dir  Direction
		want []int
	}{
		{DirUp, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{DirDown, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{DirLeft, []int{0, 3, 6, 1, 4, 7, 2, 5, 8}},
		{DirRight, []int{2, 5, 8, 1, 4, 7, 0, 3, 6}},
	}

	for _, tt := range tests {
		if got := b.traversal(tt.dir); !slices.Equal(got, tt.want) {
			t.Errorf("traversal(%s) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}
