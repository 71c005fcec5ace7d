package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// pts builds a point list from x,y pairs.
func pts(coords ...int) []core.Point {
	out := make([]core.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, core.Pt(coords[i], coords[i+1]))
	}
	return out
}

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		h    Heading
		want core.Point
	}{
		{Left, core.Pt(-1, 0)},
		{Right, core.Pt(1, 0)},
		{Up, core.Pt(0, 1)},
		{Down, core.Pt(0, -1)},
	}
	for _, tt := range tests {
		if got := tt.h.Delta(); got != tt.want {
			t.Errorf("%s.Delta() = %v, expected %v", tt.h, got, tt.want)
		}
	}
}

func TestHeadingOpposite(t *testing.T) {
	for _, h := range Headings {
		if h.Opposite().Opposite() != h {
			t.Errorf("%s: opposite of opposite should be itself", h)
		}
		if h.Opposite() == h {
			t.Errorf("%s: opposite should differ", h)
		}
		if sum := h.Delta().Add(h.Opposite().Delta()); sum != (core.Point{}) {
			t.Errorf("%s: deltas of opposites should cancel, got %v", h, sum)
		}
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		in      string
		want    Heading
		wantErr bool
	}{
		{"left", Left, false},
		{"u", Up, false},
		{"R", Right, false},
		{"down", Down, false},
		{"north", Up, true},
		{"", Up, true},
	}
	for _, tt := range tests {
		got, err := ParseHeading(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHeading(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHeading(%q) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}

func TestMoveCanonicalStart(t *testing.T) {
	in := pts(3, 3, 3, 2)
	m := Move(in, Up)

	if want := pts(3, 4, 3, 3); !slices.Equal(m.Segments, want) {
		t.Errorf("Segments = %v, expected %v", m.Segments, want)
	}
	if m.Head() != core.Pt(3, 4) {
		t.Errorf("Head() = %v, expected (3,4)", m.Head())
	}
	if m.LastTail != core.Pt(3, 2) {
		t.Errorf("LastTail = %v, expected (3,2)", m.LastTail)
	}
	if !slices.Equal(m.Snapshot, pts(3, 3, 3, 2)) {
		t.Errorf("Snapshot = %v, expected pre-move positions", m.Snapshot)
	}
	if !slices.Equal(in, pts(3, 3, 3, 2)) {
		t.Errorf("Move modified its input: %v", in)
	}
}

func TestMoveFollowsPredecessor(t *testing.T) {
	in := pts(5, 5, 4, 5, 4, 4, 3, 4)
	m := Move(in, Right)

	if len(m.Segments) != len(in) {
		t.Fatalf("length changed: %d -> %d", len(in), len(m.Segments))
	}
	for i := 1; i < len(in); i++ {
		if m.Segments[i] != in[i-1] {
			t.Errorf("segment %d = %v, expected %v", i, m.Segments[i], in[i-1])
		}
	}
	if m.Head() != core.Pt(6, 5) {
		t.Errorf("Head() = %v, expected (6,5)", m.Head())
	}
}

func TestMoveSingleSegment(t *testing.T) {
	m := Move(pts(2, 2), Left)
	if !slices.Equal(m.Segments, pts(1, 2)) {
		t.Errorf("Segments = %v, expected [(1,2)]", m.Segments)
	}
	if m.LastTail != core.Pt(2, 2) {
		t.Errorf("LastTail = %v, expected (2,2)", m.LastTail)
	}
}

func TestMoveEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Move with no segments should panic")
		}
	}()
	Move(nil, Up)
}

func TestWorldApplyRecordsTail(t *testing.T) {
	w := NewWorld(core.Bounds{Width: 12, Height: 12}, 5)
	if _, ok := w.LastTail(); ok {
		t.Fatal("fresh world should have no last tail")
	}

	w.apply(Move(w.segments, w.heading))

	tail, ok := w.LastTail()
	if !ok || tail != StartBody {
		t.Errorf("LastTail() = %v, %v, expected %v, true", tail, ok, StartBody)
	}
	if w.Head() != core.Pt(3, 4) {
		t.Errorf("Head() = %v, expected (3,4)", w.Head())
	}
}

func TestHeadingActionSteers(t *testing.T) {
	for _, h := range Headings {
		got, ok := candidateHeading(core.InputOf(h.Action()))
		if !ok || got != h {
			t.Errorf("%s.Action() steers to %s (ok=%v)", h, got, ok)
		}
	}
}
