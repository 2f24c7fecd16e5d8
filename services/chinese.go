package services

import (
	"math"
	"regexp"
)

var chineseDigits = []string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"}

var (
	chineseBlockUnits = []string{"元", "萬", "億"}
	chinesePlaceUnits = []string{"", "拾", "佰", "仟"}
	chineseFracUnits  = []string{"角", "分"}
)

var (
	reTrailingZeros  = regexp.MustCompile(`(零.)*零$`)
	reZeroBeforeYuan = regexp.MustCompile(`(零.)*零元`)
	reZeroRuns       = regexp.MustCompile(`(零.)+`)
)

// NumberToChinese renders an amount in traditional Chinese financial
// numerals (國字大寫), e.g. 1050 → "壹仟零伍拾元整", 1.5 → "壹元伍角".
// Whole amounts end in "整". NaN and negative amounts render as "零元整".
func NumberToChinese(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return "零元整"
	}

	// Fraction part: 角 (tenths) and 分 (hundredths), zero digits skipped.
	s := ""
	for i, u := range chineseFracUnits {
		d := int64(math.Floor(amount*10*math.Pow(10, float64(i)))) % 10
		if d != 0 {
			s += chineseDigits[d] + u
		}
	}
	if s == "" {
		s = "整"
	}

	// Integer part in blocks of four digits: 元, 萬, 億.
	n := int64(math.Floor(amount))
	for i := 0; i < len(chineseBlockUnits) && n > 0; i++ {
		p := ""
		for j := 0; j < len(chinesePlaceUnits) && n > 0; j++ {
			p = chineseDigits[n%10] + chinesePlaceUnits[j] + p
			n /= 10
		}
		p = reTrailingZeros.ReplaceAllString(p, "")
		if p == "" {
			p = "零"
		}
		s = p + chineseBlockUnits[i] + s
	}

	s = reZeroBeforeYuan.ReplaceAllString(s, "元")
	s = reZeroRuns.ReplaceAllString(s, "零")
	if s == "整" {
		s = "零元整"
	}
	return s
}
