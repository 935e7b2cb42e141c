package invariant

import (
	"errors"
	"testing"
)

func TestCheck_PassingConditionNeverPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Expected no panic for a satisfied invariant, got %v", r)
		}
	}()
	Check(true, "always fine")
	CheckErr(nil)
}

func TestCheck_FailingConditionFollowsBuildMode(t *testing.T) {
	panicked := func(fn func()) (p bool) {
		defer func() {
			if recover() != nil {
				p = true
			}
		}()
		fn()
		return false
	}

	if got := panicked(func() { Check(false, "node %s missing", "L0:N1") }); got != Enabled {
		t.Errorf("Check panic = %v, expected %v", got, Enabled)
	}
	if got := panicked(func() { CheckErr(errors.New("boom")) }); got != Enabled {
		t.Errorf("CheckErr panic = %v, expected %v", got, Enabled)
	}
}
