package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ToAmount coerces a numeric value of any representation the data layer produces
// into a float64. Values that cannot be parsed yield 0.
func ToAmount(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case decimal.Decimal:
		return finite(v.InexactFloat64())
	case *decimal.Decimal:
		if v == nil {
			return 0
		}
		return finite(v.InexactFloat64())
	case decimal.NullDecimal:
		if !v.Valid {
			return 0
		}
		return finite(v.Decimal.InexactFloat64())
	case *big.Int:
		if v == nil {
			return 0
		}
		return finite(decimal.NewFromBigInt(v, 0).InexactFloat64())
	case *big.Float:
		if v == nil {
			return 0
		}
		f, _ := v.Float64()
		return finite(f)
	case *big.Rat:
		if v == nil {
			return 0
		}
		f, _ := v.Float64()
		return finite(f)
	case json.Number:
		return parseAmount(string(v))
	case string:
		return parseAmount(v)
	case []byte:
		return parseAmount(string(v))
	case fmt.Stringer:
		return parseAmount(v.String())
	default:
		return 0
	}
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return finite(d.InexactFloat64())
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Round2 rounds v to 2 decimal places, half away from zero
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
