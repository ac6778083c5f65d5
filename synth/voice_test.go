package synth

import (
	"math"
	"testing"
)

func TestVoiceAttackRamp(t *testing.T) {
	v := newVoice(69, 1.0, 0.01)

	if got := v.AttackGain(1.0); got != 0 {
		t.Fatalf("AttackGain at press instant = %v, want 0", got)
	}
	if got := v.AttackGain(1.005); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("AttackGain at half attack = %v, want 0.5", got)
	}
	if got := v.AttackGain(1.01); got != 1 {
		t.Fatalf("AttackGain at full attack = %v, want 1", got)
	}
	// Holds at 1 for all later times while active.
	for _, dt := range []float64{0.02, 1, 100} {
		if got := v.AttackGain(1.0 + dt); got != 1 {
			t.Fatalf("AttackGain at +%v = %v, want 1", dt, got)
		}
	}
	// Never negative before the press time.
	if got := v.AttackGain(0.5); got != 0 {
		t.Fatalf("AttackGain before press = %v, want 0", got)
	}
}

func TestVoiceReleaseRamp(t *testing.T) {
	v := newVoice(69, 0, 0.01)

	if got := v.ReleaseGain(100); got != 1 {
		t.Fatalf("ReleaseGain while active = %v, want 1", got)
	}

	v.releaseAt(2.0, 0.01)

	if v.Active() {
		t.Fatal("voice should not be active after release")
	}
	if got := v.ReleaseGain(2.0); got != 1 {
		t.Fatalf("ReleaseGain at release instant = %v, want 1", got)
	}
	if got := v.ReleaseGain(2.005); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("ReleaseGain at half release = %v, want 0.5", got)
	}
	if got := v.ReleaseGain(2.01); got > 1e-12 {
		t.Fatalf("ReleaseGain at full release = %v, want ~0", got)
	}
	if got := v.ReleaseGain(10); got != 0 {
		t.Fatalf("ReleaseGain long after release = %v, want 0 (floored)", got)
	}
}

func TestVoiceIsDead(t *testing.T) {
	v := newVoice(60, 0, 0.01)

	// Active voices are never dead, no matter how old.
	if v.IsDead(1e6) {
		t.Fatal("active voice reported dead")
	}

	v.releaseAt(1.0, 0.01)

	if v.IsDead(1.005) {
		t.Fatal("voice dead mid-release")
	}
	// Just past the release boundary, with headroom for the inexact
	// binary representation of the times involved.
	if !v.IsDead(1.0100001) {
		t.Fatal("voice not dead at end of release")
	}
	if !v.IsDead(5) {
		t.Fatal("voice should stay dead after release completes")
	}
}

func TestVoiceAmplitudeIsShapedOscillator(t *testing.T) {
	v := newVoice(69, 0, 0.01)
	v.releaseAt(0.5, 0.1)

	for _, at := range []float64{0, 0.004, 0.02, 0.5, 0.55, 0.61} {
		want := Sample(at, 69) * v.AttackGain(at) * v.ReleaseGain(at)
		if got := v.AmplitudeAt(at); got != want {
			t.Fatalf("AmplitudeAt(%v) = %v, want %v", at, got, want)
		}
	}
}

func TestVoiceAmplitudeZeroAtPress(t *testing.T) {
	v := newVoice(64, 3.25, 0.01)
	if got := v.AmplitudeAt(3.25); got != 0 {
		t.Fatalf("AmplitudeAt(pressedAt) = %v, want 0", got)
	}
}
