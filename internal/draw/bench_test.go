package draw

import (
	"testing"

	"github.com/casedrop/casedrop/internal/domain"
)

func BenchmarkSelect(b *testing.B) {
	table := starterTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Select(table, float64(i%100))
	}
}

func BenchmarkBuildReel(b *testing.B) {
	engine := NewEngine(NewRandSource())
	table := starterTable()
	committed := table[2]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.BuildReel(table, committed, DefaultReelLength, DefaultRevealIndex)
	}
}

var sinkOutcome domain.CardOutcome

func BenchmarkEngineDraw(b *testing.B) {
	engine := NewEngine(NewRandSource())
	table := starterTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o, _ := engine.Draw(table)
		sinkOutcome = o
	}
}
