package guess

import "strings"

// 猜词反馈文案
const (
	HintCorrect  = "猜对了！"
	HintNearMiss = "就差一点，答案和这个词很像"
)

// 编辑距离在此范围内视为"接近答案"，提示但不公开词语
const nearMissDistance = 2

// Result 一次猜词的判定结果
type Result struct {
	Matched bool   // 是否命中
	Hint    string // 反馈文案，完全不沾边时为空
}

// Evaluate 判定一次猜词
// 两侧均做小写化和去首尾空白处理，纯函数，无副作用
func Evaluate(secretWord, rawGuess string) Result {
	secret := Normalize(secretWord)
	attempt := Normalize(rawGuess)

	switch dist := Distance(secret, attempt); {
	case dist == 0:
		return Result{Matched: true, Hint: HintCorrect}
	case dist <= nearMissDistance:
		return Result{Matched: false, Hint: HintNearMiss}
	default:
		return Result{Matched: false}
	}
}

// Normalize 统一词语格式：小写 + 去首尾空白
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Distance 计算两个字符串的 Levenshtein 编辑距离（按 rune 计算）
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// 滚动数组，只保留上一行
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
