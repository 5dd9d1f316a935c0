package words

import (
	"math/rand/v2"

	"github.com/palemoky/draw-and-guess/internal/apperrors"
)

// 支持的主题
const (
	ThemeAnimals     = "动物"
	ThemeFood        = "食物"
	ThemeObjects     = "物品"
	ThemeVerbs       = "动作"
	ThemeProfessions = "职业"
	ThemePlaces      = "地点"
)

// Bank 内置词库，按主题提供打乱后的候选词
type Bank struct{}

// ForTheme 返回指定主题的候选词（每次调用独立洗牌，不会修改词库本身）
// 未知主题返回 apperrors.ErrUnknownTheme
func (Bank) ForTheme(theme string) ([]string, error) {
	bank, ok := banks[theme]
	if !ok {
		return nil, apperrors.ErrUnknownTheme
	}

	pool := make([]string, len(bank))
	copy(pool, bank)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool, nil
}

// Themes 返回所有可选主题
func Themes() []string {
	return []string{
		ThemeAnimals, ThemeFood, ThemeObjects,
		ThemeVerbs, ThemeProfessions, ThemePlaces,
	}
}
