package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: new box should be empty")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("Size failed: expected zero size for empty box, got %v", bbox.Size())
	}

	bbox.Extend(NewVector3(1, 1, 0))
	if bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: box with one point should not be empty")
	}
}

func TestBoundingBoxCenterAndMaxDimension(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	center := bbox.Center()
	expected := NewVector3(5, 10, 15)
	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}

	if math.Abs(bbox.MaxDimension()-30) > 1e-10 {
		t.Errorf("MaxDimension failed: expected 30, got %v", bbox.MaxDimension())
	}
}
