package services

import (
	"math"
	"testing"
)

func TestNumberToChinese(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "零元整"},
		{"single digit", 5, "伍元整"},
		{"ten", 10, "壹拾元整"},
		{"hundred", 100, "壹佰元整"},
		{"thousand", 1000, "壹仟元整"},
		{"ten thousand", 10000, "壹萬元整"},
		{"hundred million", 100000000, "壹億元整"},
		{"interior zero", 1005, "壹仟零伍元整"},
		{"interior zero before tens", 1050, "壹仟零伍拾元整"},
		{"no zeros", 1234, "壹仟貳佰參拾肆元整"},
		{"typical total", 157500, "壹拾伍萬柒仟伍佰元整"},
		{"large", 1234567890, "壹拾貳億參仟肆佰伍拾陸萬柒仟捌佰玖拾元整"},
		{"jiao only", 0.5, "伍角"},
		{"fen only", 0.05, "伍分"},
		{"yuan and jiao", 1.5, "壹元伍角"},
		{"full fraction", 123.45, "壹佰貳拾參元肆角伍分"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberToChinese(tt.amount)
			if got != tt.want {
				t.Errorf("NumberToChinese(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestNumberToChinese_InvalidAmounts(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"negative", -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberToChinese(tt.amount)
			if got != "零元整" {
				t.Errorf("NumberToChinese(%v) = %q, want 零元整", tt.amount, got)
			}
		})
	}
}
