package inin_test

import (
	"testing"

	"github.com/amirhosseinab/inin"
)

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := inin.Parse("0451726707")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Padded(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := inin.Parse("451726707")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Invalid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := inin.Parse("12345678ab"); err == nil {
			b.Fatal("expected error")
		}
	}
}
