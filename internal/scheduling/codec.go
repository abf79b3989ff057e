package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/pkg/memo"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// DateCodec преобразует даты и время на границах сервиса (YYYY-MM-DD, HH:MM).
// Результаты разбора дат мемоизируются во внедряемом кэше; кэш не влияет на результат.
type DateCodec struct {
	parsed memo.Cache[string, types.CivilDate]
}

// NewDateCodec создаёт кодек; nil cache отключает мемоизацию
func NewDateCodec(cache memo.Cache[string, types.CivilDate]) *DateCodec {
	if cache == nil {
		cache = memo.Noop[string, types.CivilDate]{}
	}
	return &DateCodec{parsed: cache}
}

// ParseDate разбирает каноническую строку YYYY-MM-DD
func (c *DateCodec) ParseDate(s string) (types.CivilDate, error) {
	key := cacheKey(s, types.CivilDateLayout)
	if d, ok := c.parsed.Get(key); ok {
		return d, nil
	}

	d, err := types.ParseCivilDate(s)
	if err != nil {
		return types.CivilDate{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}

	c.parsed.Add(key, d)
	return d, nil
}

// FormatDate возвращает каноническую строку YYYY-MM-DD
func (c *DateCodec) FormatDate(d types.CivilDate) string {
	return d.String()
}

// FromLocalInput строит дату из локальных полей календаря (год, месяц, день)
func (c *DateCodec) FromLocalInput(year, month, day int) (types.CivilDate, error) {
	d, err := types.NewCivilDate(year, month, day)
	if err != nil {
		return types.CivilDate{}, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	return d, nil
}

// ParseTime разбирает время суток HH:MM
func (c *DateCodec) ParseTime(s string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return t, nil
}

// Reset очищает кэш (например, между логическими сессиями)
func (c *DateCodec) Reset() {
	c.parsed.Purge()
}

func cacheKey(value, pattern string) string {
	return pattern + "|" + value
}
