package nfa

import "testing"

func TestBuilder_BuildRejectsEmptyFinalSet(t *testing.T) {
	b := NewBuilder()
	s := b.AddState()
	if _, err := b.Build(s, nil); err != ErrNoFinalStates {
		t.Fatalf("got error %v, want ErrNoFinalStates", err)
	}
}

func TestBuilder_TransitionOrderIsDeterministic(t *testing.T) {
	b := NewBuilder()
	s := b.AddState()
	a := b.AddState()
	c := b.AddState()
	d := b.AddState()
	_ = b.AddTransition(s, Pred("a"), a)
	_ = b.AddTransition(s, Pred("b"), c)
	_ = b.AddTransition(s, Pred("c"), d)

	nfaVal, err := b.Build(s, []StateID{d})
	if err != nil {
		t.Fatal(err)
	}
	trs := nfaVal.Transitions(s)
	if len(trs) != 3 {
		t.Fatalf("got %d transitions, want 3", len(trs))
	}
	want := []string{"a", "b", "c"}
	for i, tr := range trs {
		if tr.Label.Predicate != want[i] {
			t.Errorf("transition %d: got predicate %q, want %q", i, tr.Label.Predicate, want[i])
		}
	}
}

func TestBuilder_AddTransitionOutOfBounds(t *testing.T) {
	b := NewBuilder()
	s := b.AddState()
	if err := b.AddTransition(s, Eps, StateID(99)); err == nil {
		t.Fatal("expected error for out-of-bounds target")
	}
	if err := b.AddTransition(StateID(99), Eps, s); err == nil {
		t.Fatal("expected error for out-of-bounds source")
	}
}

func TestNFA_Invert_TogglesDirectionOnly(t *testing.T) {
	b := NewBuilder()
	s := b.AddState()
	f := b.AddState()
	_ = b.AddTransition(s, Pred("knows"), f)
	_ = b.AddTransition(s, Eps, f)
	n, err := b.Build(s, []StateID{f})
	if err != nil {
		t.Fatal(err)
	}

	inv := n.Invert()
	if inv.Start() != n.Start() {
		t.Errorf("Invert changed start state")
	}
	if !inv.IsFinal(f) {
		t.Errorf("Invert lost final state membership")
	}

	trs := inv.Transitions(s)
	var sawReversePred, sawEps bool
	for _, tr := range trs {
		switch {
		case tr.Label.Epsilon:
			sawEps = true
			if tr.Label.Reverse {
				t.Errorf("epsilon transition should never be marked Reverse")
			}
		case tr.Label.Predicate == "knows":
			sawReversePred = true
			if !tr.Label.Reverse {
				t.Errorf("predicate transition should be inverted")
			}
		}
	}
	if !sawReversePred || !sawEps {
		t.Fatalf("Invert dropped a transition: %+v", trs)
	}
}

func TestLabel_InvertIsIdempotentInPairs(t *testing.T) {
	l := Pred("knows")
	twice := l.Invert().Invert()
	if twice != l {
		t.Errorf("Invert(Invert(l)) = %+v, want %+v", twice, l)
	}
	if Eps.Invert() != Eps {
		t.Errorf("Invert(Eps) must be Eps")
	}
}
