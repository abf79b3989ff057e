package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// CivilDateLayout канонический формат календарной даты (YYYY-MM-DD)
const CivilDateLayout = "2006-01-02"

var (
	// ErrInvalidCivilDate возвращается, когда год, месяц или день вне допустимого диапазона
	ErrInvalidCivilDate = errors.New("invalid civil date")

	// ErrInvalidCivilDateFormat возвращается, когда строка не соответствует формату YYYY-MM-DD
	ErrInvalidCivilDateFormat = errors.New("invalid civil date format")
)

// sakamotoOffsets смещения месяцев для алгоритма Сакамото (день недели, пролептический григорианский календарь)
var sakamotoOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// CivilDate календарная дата без времени суток и часового пояса.
// Нулевое значение не является валидной датой.
type CivilDate struct {
	year  int
	month time.Month
	day   int
}

// NewCivilDate создаёт дату из целочисленных полей (год, месяц, день),
// например из локальных полей календаря в UI.
// Никогда не проходит через промежуточное представление в виде момента времени.
func NewCivilDate(year, month, day int) (CivilDate, error) {
	if year < 1 || year > 9999 {
		return CivilDate{}, fmt.Errorf("%w: year %d out of range", ErrInvalidCivilDate, year)
	}
	if month < 1 || month > 12 {
		return CivilDate{}, fmt.Errorf("%w: month %d out of range", ErrInvalidCivilDate, month)
	}
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return CivilDate{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidCivilDate, day, year, month)
	}
	return CivilDate{year: year, month: time.Month(month), day: day}, nil
}

// MustCivilDate как NewCivilDate, но паникует при ошибке. Только для констант и тестов.
func MustCivilDate(year, month, day int) CivilDate {
	d, err := NewCivilDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// CivilDateOf извлекает календарные поля из t в его собственной локации.
// Локация не меняется: дата берётся такой, какой её видит владелец t.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{year: y, month: m, day: d}
}

// ParseCivilDate разбирает строку строго в формате YYYY-MM-DD
func ParseCivilDate(s string) (CivilDate, error) {
	if len(s) != len(CivilDateLayout) || s[4] != '-' || s[7] != '-' {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrInvalidCivilDateFormat, s)
	}

	year, ok := parseDigits(s[0:4])
	if !ok {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrInvalidCivilDateFormat, s)
	}
	month, ok := parseDigits(s[5:7])
	if !ok {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrInvalidCivilDateFormat, s)
	}
	day, ok := parseDigits(s[8:10])
	if !ok {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrInvalidCivilDateFormat, s)
	}

	return NewCivilDate(year, month, day)
}

func (d CivilDate) Year() int         { return d.year }
func (d CivilDate) Month() time.Month { return d.month }
func (d CivilDate) Day() int          { return d.day }

// IsZero возвращает true для нулевого (невалидного) значения
func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

// String возвращает дату в каноническом формате YYYY-MM-DD
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Weekday возвращает день недели 0..6, где 0 = воскресенье
func (d CivilDate) Weekday() int {
	y := d.year
	if d.month < time.March {
		y--
	}
	return (y + y/4 - y/100 + y/400 + sakamotoOffsets[d.month-1] + d.day) % 7
}

// AddDays возвращает дату, сдвинутую на n календарных дней
func (d CivilDate) AddDays(n int) CivilDate {
	shifted := d.civil().AddDays(n)
	return CivilDate{year: shifted.Year, month: shifted.Month, day: shifted.Day}
}

// DaysSince возвращает количество календарных дней от other до d
func (d CivilDate) DaysSince(other CivilDate) int {
	return d.civil().DaysSince(other.civil())
}

// Compare возвращает -1, 0 или 1 (лексикографически по году, месяцу, дню)
func (d CivilDate) Compare(other CivilDate) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d CivilDate) Before(other CivilDate) bool { return d.Compare(other) < 0 }
func (d CivilDate) After(other CivilDate) bool  { return d.Compare(other) > 0 }

// MarshalText реализует encoding.TextMarshaler
func (d CivilDate) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (d *CivilDate) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = CivilDate{}
		return nil
	}
	parsed, err := ParseCivilDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок типа DATE
func (d *CivilDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = CivilDate{}
		return nil
	case time.Time:
		*d = CivilDateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidCivilDateFormat, src)
	}
}

// Value реализует driver.Valuer; дата передаётся в БД строкой, без перевода в момент времени
func (d CivilDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *CivilDate) scanString(s string) error {
	// Драйвер может вернуть DATE как "2024-06-15T00:00:00Z"
	if len(s) > len(CivilDateLayout) {
		s = s[:len(CivilDateLayout)]
	}
	parsed, err := ParseCivilDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CivilDate) civil() civil.Date {
	return civil.Date{Year: d.year, Month: d.month, Day: d.day}
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
