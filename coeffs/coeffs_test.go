package coeffs

import "testing"

func TestByNameKnownModels(t *testing.T) {
	if m, ok := ByName("JRM09"); !ok || m.MaxDegree != 10 {
		t.Errorf("JRM09: ok=%v maxDegree=%v, want ok=true maxDegree=10", ok, m.MaxDegree)
	}
	if m, ok := ByName("JRM33"); !ok || m.MaxDegree != 18 {
		t.Errorf("JRM33: ok=%v maxDegree=%v, want ok=true maxDegree=18", ok, m.MaxDegree)
	}
	if _, ok := ByName("bogus"); ok {
		t.Error("expected ok=false for an unknown model name")
	}
}

func TestValidateDegreeRange(t *testing.T) {
	if err := JRM09.Validate(10); err != nil {
		t.Errorf("degree 10 should be valid for JRM09: %v", err)
	}
	if err := JRM09.Validate(0); err == nil {
		t.Error("expected error for degree 0")
	}
	if err := JRM09.Validate(11); err == nil {
		t.Error("expected error for degree above MaxDegree")
	}
}

func TestDipoleTermSeeded(t *testing.T) {
	if JRM09.G[1][0] != 410244.7 {
		t.Errorf("JRM09 g(1,0) = %v, want 410244.7", JRM09.G[1][0])
	}
	if JRM09.H[1][0] != 0 {
		t.Errorf("JRM09 h(1,0) = %v, want 0", JRM09.H[1][0])
	}
}
