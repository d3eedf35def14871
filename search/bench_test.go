package search

import (
	"strings"
	"testing"
)

var benchSource = u(strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 2000) + "needle")

func BenchmarkForwardLongPattern(b *testing.B) {
	pattern := u("consectetur adipiscing")
	for i := 0; i < b.N; i++ {
		_ = Forward(benchSource, pattern, 0, 0)
	}
}

func BenchmarkForwardRare(b *testing.B) {
	pattern := u("needle")
	for i := 0; i < b.N; i++ {
		_ = Forward(benchSource, pattern, 0, 1)
	}
}

func BenchmarkReverseRare(b *testing.B) {
	pattern := u("Lorem ipsum")
	for i := 0; i < b.N; i++ {
		_ = Reverse(benchSource, pattern, 0, 1)
	}
}

func BenchmarkSkipAll(b *testing.B) {
	pattern := u("sit")
	for i := 0; i < b.N; i++ {
		_ = SkipAll(benchSource, pattern, 0, 0)
	}
}
