package dds

import (
	"strconv"
	"testing"
)

func BenchmarkNewUhrigSingleAxis(b *testing.B) {
	for _, n := range []int{8, 128, 2048} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := NewUhrigSingleAxis(1e-3, n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewWalshSingleAxis(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewWalshSingleAxis(1e-3, UpperBoundPaleyOrder); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewXYConcatenated(b *testing.B) {
	for _, order := range []int{2, 4, 5} {
		b.Run(strconv.Itoa(order), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := NewXYConcatenated(1e-3, order); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
