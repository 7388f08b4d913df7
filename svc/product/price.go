package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type priceState uint8

const (
	priceBlank priceState = iota
	priceNumber
	priceInvalid
)

// Price is an optional decimal amount. The zero value is blank. A price
// parsed from text that is not a number keeps the raw text so validation can
// report it instead of silently turning it into zero.
type Price struct {
	state priceState
	value float64
	raw   string
}

// NewPrice returns a numeric price.
func NewPrice(v float64) Price {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Price{state: priceInvalid, raw: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return Price{state: priceNumber, value: v}
}

// ParsePrice parses user input. Whitespace-only input yields a blank price.
func ParsePrice(s string) Price {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Price{state: priceInvalid, raw: s}
	}
	return Price{state: priceNumber, value: v}
}

func (p Price) IsBlank() bool  { return p.state == priceBlank }
func (p Price) IsNumber() bool { return p.state == priceNumber }

// Float64 returns the amount and whether the price holds a number.
func (p Price) Float64() (float64, bool) {
	return p.value, p.state == priceNumber
}

func (p Price) String() string {
	switch p.state {
	case priceNumber:
		return strconv.FormatFloat(p.value, 'f', -1, 64)
	case priceInvalid:
		return p.raw
	default:
		return ""
	}
}

// MarshalJSON encodes a number, null for blank, or the raw text.
func (p Price) MarshalJSON() ([]byte, error) {
	switch p.state {
	case priceNumber:
		return json.Marshal(p.value)
	case priceInvalid:
		return json.Marshal(p.raw)
	default:
		return []byte("null"), nil
	}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = priceFromAny(v)
	return nil
}

func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("price: expected a scalar, got yaml kind %d", node.Kind)
	}
	if node.Tag == "!!null" {
		*p = Price{}
		return nil
	}
	*p = ParsePrice(node.Value)
	return nil
}

// Scan implements sql.Scanner.
func (p *Price) Scan(src any) error {
	*p = priceFromAny(src)
	if p.state == priceInvalid {
		return fmt.Errorf("price: cannot scan %T %q", src, p.raw)
	}
	return nil
}

// Value implements driver.Valuer. Blank prices are stored as NULL.
func (p Price) Value() (driver.Value, error) {
	switch p.state {
	case priceNumber:
		return p.value, nil
	case priceInvalid:
		return nil, fmt.Errorf("price: %q is not a number", p.raw)
	default:
		return nil, nil
	}
}

func priceFromAny(v any) Price {
	switch t := v.(type) {
	case nil:
		return Price{}
	case string:
		return ParsePrice(t)
	case []byte:
		return ParsePrice(string(t))
	case bool:
		return Price{state: priceInvalid, raw: strconv.FormatBool(t)}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Price{state: priceInvalid, raw: fmt.Sprint(v)}
	}
	return NewPrice(f)
}
