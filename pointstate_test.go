package rigid2d

import "testing"

func TestGetPointStatesAddPersistRemove(t *testing.T) {
	idA := NewContactID(0, 1, FeatureVertex, FeatureVertex)
	idB := NewContactID(0, 2, FeatureVertex, FeatureVertex)
	idC := NewContactID(0, 3, FeatureVertex, FeatureVertex)

	m1 := Manifold{
		PointCount: 2,
		Points: [MaxManifoldPoints]ManifoldPoint{
			{ID: idA},
			{ID: idB},
		},
	}
	m2 := Manifold{
		PointCount: 2,
		Points: [MaxManifoldPoints]ManifoldPoint{
			{ID: idB},
			{ID: idC},
		},
	}

	var state1, state2 [MaxManifoldPoints]PointState
	GetPointStates(&state1, &state2, m1, m2)

	if state1[0] != StateRemove {
		t.Errorf("state1[0] (idA, gone in m2) = %v, want remove", state1[0])
	}
	if state1[1] != StatePersist {
		t.Errorf("state1[1] (idB, present in m2) = %v, want persist", state1[1])
	}
	if state2[0] != StatePersist {
		t.Errorf("state2[0] (idB, present in m1) = %v, want persist", state2[0])
	}
	if state2[1] != StateAdd {
		t.Errorf("state2[1] (idC, new) = %v, want add", state2[1])
	}

	addCount, persistCount, removeCount := 0, 0, 0
	for _, s := range state2[:m2.PointCount] {
		if s == StateAdd {
			addCount++
		}
		if s == StatePersist {
			persistCount++
		}
	}
	for _, s := range state1[:m1.PointCount] {
		if s == StateRemove {
			removeCount++
		}
	}
	if addCount+persistCount != m2.PointCount {
		t.Errorf("add+persist = %d, want m2.pointCount = %d", addCount+persistCount, m2.PointCount)
	}
	gotPersistInState1 := 0
	for _, s := range state1[:m1.PointCount] {
		if s == StatePersist {
			gotPersistInState1++
		}
	}
	if removeCount+gotPersistInState1 != m1.PointCount {
		t.Errorf("remove+persist = %d, want m1.pointCount = %d", removeCount+gotPersistInState1, m1.PointCount)
	}
}

func TestGetPointStatesEmptyToEmpty(t *testing.T) {
	var state1, state2 [MaxManifoldPoints]PointState
	GetPointStates(&state1, &state2, Manifold{}, Manifold{})

	for i := range state1 {
		if state1[i] != StateNull || state2[i] != StateNull {
			t.Errorf("state1[%d]=%v state2[%d]=%v, want null", i, state1[i], i, state2[i])
		}
	}
}
