package expression

import (
	"math"
)

// Function is a unary math function usable in expressions
type Function uint8

const (
	FuncAbs Function = iota
	FuncAcos
	FuncAsin
	FuncAtan
	FuncCeil
	FuncCos
	FuncCosh
	FuncDeg
	FuncExp
	FuncFac
	FuncFloor
	FuncLog
	FuncLog10
	FuncRad
	FuncRan
	FuncRound
	FuncSin
	FuncSinh
	FuncSqr
	FuncSqrt
	FuncTan
	FuncTanh
	FuncTrunc
)

// constants maps lowercase names to their values
var constants = map[string]float64{
	"pi":   math.Pi,
	"i":    1,
	"ii":   2,
	"iii":  3,
	"iv":   4,
	"v":    5,
	"vi":   6,
	"vii":  7,
	"viii": 8,
	"ix":   9,
	"x":    10,
}

// functions maps lowercase names, including the opening parenthesis, to
// functions
var functions = map[string]Function{
	"abs(":   FuncAbs,
	"acos(":  FuncAcos,
	"asin(":  FuncAsin,
	"atan(":  FuncAtan,
	"ceil(":  FuncCeil,
	"cos(":   FuncCos,
	"cosh(":  FuncCosh,
	"deg(":   FuncDeg,
	"exp(":   FuncExp,
	"fac(":   FuncFac,
	"floor(": FuncFloor,
	"log(":   FuncLog,
	"log10(": FuncLog10,
	"rad(":   FuncRad,
	"ran(":   FuncRan,
	"round(": FuncRound,
	"sin(":   FuncSin,
	"sinh(":  FuncSinh,
	"sqr(":   FuncSqr,
	"sqrt(":  FuncSqrt,
	"tan(":   FuncTan,
	"tanh(":  FuncTanh,
	"trunc(": FuncTrunc,

	// aliases
	"logten(": FuncLog10,
	"todeg(":  FuncDeg,
}

// lookupConstant returns the value of a named constant
func lookupConstant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// lookupFunction returns the function called name, without its parenthesis
func lookupFunction(name string) (Function, bool) {
	f, ok := functions[name+"("]
	return f, ok
}

// Apply evaluates the function at x. ran draws from r.
func (f Function) Apply(x float64, r Roller) float64 {
	switch f {
	case FuncAbs:
		return math.Abs(x)
	case FuncAcos:
		return math.Acos(x)
	case FuncAsin:
		return math.Asin(x)
	case FuncAtan:
		return math.Atan(x)
	case FuncCeil:
		return math.Ceil(x)
	case FuncCos:
		return math.Cos(x)
	case FuncCosh:
		return math.Cosh(x)
	case FuncDeg:
		return x * 180 / math.Pi
	case FuncExp:
		return math.Exp(x)
	case FuncFac:
		return Factorial(x)
	case FuncFloor:
		return math.Floor(x)
	case FuncLog:
		return math.Log(x)
	case FuncLog10:
		return math.Log10(x)
	case FuncRad:
		return x * math.Pi / 180
	case FuncRan:
		return ran(x, r)
	case FuncRound:
		return math.Round(x)
	case FuncSin:
		return math.Sin(x)
	case FuncSinh:
		return math.Sinh(x)
	case FuncSqr:
		return x * x
	case FuncSqrt:
		return math.Sqrt(x)
	case FuncTan:
		return math.Tan(x)
	case FuncTanh:
		return math.Tanh(x)
	case FuncTrunc:
		return math.Trunc(x)
	default:
		return math.NaN()
	}
}

// Factorial of x rounded to the nearest integer. Stops once the result
// overflows to infinity.
func Factorial(x float64) float64 {
	x = math.Round(x)

	result := 1.0
	for n := 1.0; n <= x; n++ {
		result *= n
		if math.IsInf(result, 1) {
			return result
		}
	}
	return result
}

// ran returns a random integer between 1 and max
func ran(max float64, r Roller) float64 {
	max = math.Trunc(max)
	if !(max >= 1) {
		max = 0
	}
	if max > math.MaxUint32 {
		max = math.MaxUint32
	}
	return float64(r.Random(uint32(max)))
}
