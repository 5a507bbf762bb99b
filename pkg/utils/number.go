package utils

import (
	"math"
	"strconv"
	"strings"
)

// Numeric aceita número, string numérica ou null no JSON dos fornecedores.
// Valores ausentes ou inválidos viram zero.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*n = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*n = 0
		return nil
	}

	*n = Numeric(value)
	return nil
}

func (n Numeric) Float() float64 {
	return float64(n)
}

func (n Numeric) Int() int64 {
	return int64(math.Round(float64(n)))
}

// FromMicros converte unidades micro (1/1.000.000) para a unidade monetária
func (n Numeric) FromMicros() float64 {
	return float64(n) / 1_000_000
}

// AsPercent converte uma fração (0.024) em percentual (2.4)
func (n Numeric) AsPercent() float64 {
	return float64(n) * 100
}
