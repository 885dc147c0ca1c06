package recipe

import (
	"math"
	"regexp"
	"strconv"
)

// Nutrition holds per-serving nutrition facts as free-form strings, the way
// data entry captures them ("250 kcal", "12 g", "trace"). Numeric access
// goes through the Amount helpers; a field with no leading number yields NaN.
type Nutrition struct {
	Servings     string `json:"servings"`
	Energy       string `json:"energy"`
	Carbohydrate string `json:"carbohydrate"`
	Protein      string `json:"protein"`
	Fat          string `json:"fat"`
	SaturatedFat string `json:"saturated_fat"`
	Cholesterol  string `json:"cholesterol"`
	Fibre        string `json:"fibre"`
	Sodium       string `json:"sodium"`
}

var leadingNumberRe = regexp.MustCompile(`^-?\d+(\.\d+)?`)

// Amount extracts the leading numeric value of a nutrition string.
// Leading sign and decimals are honored; anything after the number is
// ignored. A string that does not start with a number yields NaN.
func Amount(s string) float64 {
	match := leadingNumberRe.FindString(s)
	if match == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// EnergyValue returns the numeric energy amount
func (n Nutrition) EnergyValue() float64 { return Amount(n.Energy) }

// CarbohydrateValue returns the numeric carbohydrate amount
func (n Nutrition) CarbohydrateValue() float64 { return Amount(n.Carbohydrate) }

// ProteinValue returns the numeric protein amount
func (n Nutrition) ProteinValue() float64 { return Amount(n.Protein) }

// CholesterolValue returns the numeric cholesterol amount
func (n Nutrition) CholesterolValue() float64 { return Amount(n.Cholesterol) }

// SodiumValue returns the numeric sodium amount
func (n Nutrition) SodiumValue() float64 { return Amount(n.Sodium) }
