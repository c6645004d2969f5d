package calcs

import "github.com/reusee/gens/results"

type Calculator interface {
	Add(a, b int) int
	Subtract(a, b int) int
	Multiply(a, b int) int
	Divide(a, b int) results.Result[int]
	Fibonacci(n int) int
}

type AdvancedMath interface {
	Factorial(n int) results.Result[int]
	IsPrime(n int) bool
	GCD(a, b int) int
}

type stdMath struct{}

func New() Calculator {
	return stdMath{}
}

func NewAdvanced() AdvancedMath {
	return stdMath{}
}

func (stdMath) Add(a, b int) int {
	return a + b
}

func (stdMath) Subtract(a, b int) int {
	return a - b
}

func (stdMath) Multiply(a, b int) int {
	return a * b
}

func (stdMath) Divide(a, b int) results.Result[int] {
	if b == 0 {
		return results.Err[int]("Division by zero")
	}
	// floor division
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return results.Ok(q)
}

func (stdMath) Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for range n - 1 {
		a, b = b, a+b
	}
	return b
}

func (stdMath) Factorial(n int) results.Result[int] {
	if n < 0 {
		return results.Err[int]("Factorial undefined for negative numbers")
	}
	if n > 20 {
		return results.Err[int]("Factorial too large (would overflow)")
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return results.Ok(result)
}

func (stdMath) IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func (stdMath) GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
