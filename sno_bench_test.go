package sno

import (
	"strconv"
	"strings"
	"testing"
)

func BenchmarkSpanDigits(b *testing.B) {
	line := []byte(strings.Repeat("1234567890", 8) + "x")
	b.ReportAllocs()
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		v := BindBytes(line)
		_ = Span(&v, Digits)
	}
}

func BenchmarkBreakLine(b *testing.B) {
	buf := []byte(strings.Repeat("key = value\n", 64))
	nl := Bind("\n")
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		v := BindBytes(buf)
		for !v.Empty() {
			_ = Break(&v, nl)
			_ = Any(&v, nl)
		}
	}
}

func BenchmarkInt(b *testing.B) {
	in := []byte("-9223372036854775 rest")
	b.ReportAllocs()
	var n int
	for i := 0; i < b.N; i++ {
		v := BindBytes(in)
		_ = Int(&v, &n)
	}
}

// strconv baseline for BenchmarkInt
func BenchmarkAtoi(b *testing.B) {
	in := "-9223372036854775"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = strconv.Atoi(in)
	}
}

func BenchmarkKeyValue(b *testing.B) {
	line := []byte("  width = 80 # columns")
	eq := Bind("=")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := BindBytes(line)
		var n int
		_ = Skip(&v, Whitespace) && Span(&v, Letters) && Skip(&v, Whitespace) &&
			Lit(&v, eq) && Skip(&v, Whitespace) && Int(&v, &n)
	}
}
