package synth

import (
	"strconv"
	"testing"
)

func BenchmarkEngine_Render(b *testing.B) {
	voices := []int{1, 4, 16, 64}
	for _, n := range voices {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			e, err := New(WithSampleRate(48000))
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < n; i++ {
				e.NoteOn(30 + i)
			}

			dst := make([]float64, 512)

			b.SetBytes(int64(len(dst) * 8))
			b.ResetTimer()

			for range b.N {
				e.Render(dst)
			}
		})
	}
}

func BenchmarkPool_MixAt(b *testing.B) {
	p := NewPool(ModePoly)
	for i := 0; i < 16; i++ {
		p.NoteOn(40+i, 0)
	}

	b.ResetTimer()

	t := 0.0
	for range b.N {
		_ = p.MixAt(t)
		t += 1.0 / 48000
	}
}
