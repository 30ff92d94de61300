package utils

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"guaranihost/constants"
)

// PriceFormatter formatea montos como moneda local sin decimales
type PriceFormatter struct {
	unit currency.Unit
	tag  language.Tag
}

// NewPriceFormatter crea un formateador para un código ISO 4217 y un locale BCP 47
func NewPriceFormatter(code, locale string) (*PriceFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, err
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return &PriceFormatter{unit: unit, tag: tag}, nil
}

var (
	mu               sync.RWMutex
	defaultFormatter = &PriceFormatter{unit: currency.MustParseISO("PYG"), tag: language.MustParse("es-PY")}
)

// SetDefaultFormatter cambia el formateador que usa FormatPrice
func SetDefaultFormatter(f *PriceFormatter) {
	if f == nil {
		return
	}
	mu.Lock()
	defaultFormatter = f
	mu.Unlock()
}

func current() *PriceFormatter {
	mu.RLock()
	defer mu.RUnlock()
	return defaultFormatter
}

// FormatPrice formatea value como moneda o devuelve "Consultar"
func FormatPrice(value any) string {
	return current().FormatOr(value, constants.PriceFallback)
}

// FormatPriceOr es FormatPrice con otro texto de reemplazo (por ejemplo "$0")
func FormatPriceOr(value any, fallback string) string {
	return current().FormatOr(value, fallback)
}

// Format formatea value o devuelve "Consultar"
func (f *PriceFormatter) Format(value any) string {
	return f.FormatOr(value, constants.PriceFallback)
}

// FormatOr formatea value; si no es un número finito devuelve fallback
func (f *PriceFormatter) FormatOr(value any, fallback string) string {
	v, ok := ToNumber(value)
	if !ok {
		return fallback
	}
	v = math.Round(v)
	p := message.NewPrinter(f.tag)
	symbol := p.Sprint(currency.Symbol(f.unit))
	return symbol + " " + p.Sprint(number.Decimal(v, number.Scale(0)))
}

// ToNumber convierte números, textos numéricos y json.Number a float64.
// Devuelve false si el valor no es un número finito.
func ToNumber(value any) (float64, bool) {
	var v float64
	switch x := value.(type) {
	case nil:
		return 0, false
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	case *float64:
		if x == nil {
			return 0, false
		}
		v = *x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	case interface{ Float64() (float64, error) }:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
