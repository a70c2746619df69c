package util

import (
	"math"
	"strconv"
)

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseFloatKey 解析形如 "35" 或 "35.5" 的键，失败时返回 false
func ParseFloatKey(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
