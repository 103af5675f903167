// Package pricing implements the Black-Scholes-Merton closed forms as pure
// float64 functions.
//
// Every function takes the same scalar inputs: s is the spot price, k the
// strike, t the time to expiry in years, r the annualized risk-free rate,
// sigma the annualized implied volatility and q the continuous dividend
// yield. Expired (t <= 0) and zero-volatility (sigma <= 0) inputs are valid
// and return intrinsic-value limits rather than NaN.
package pricing

import "math"

// D1 in the BSM formula.
func D1(s, k, t, r, sigma, q float64) float64 {
	return (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
}

// D2 in the BSM formula.
func D2(s, k, t, r, sigma, q float64) float64 {
	return D1(s, k, t, r, sigma, q) - sigma*math.Sqrt(t)
}

// CallPrice is the European call price.
func CallPrice(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 {
		return math.Max(0, s-k)
	}

	if sigma <= 0 {
		return math.Max(0, s*math.Exp(-q*t)-k*math.Exp(-r*t))
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)

	return s*math.Exp(-q*t)*NormCDF(d1) - k*math.Exp(-r*t)*NormCDF(d2)
}

// PutPrice is the European put price.
func PutPrice(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 {
		return math.Max(0, k-s)
	}

	if sigma <= 0 {
		return math.Max(0, k*math.Exp(-r*t)-s*math.Exp(-q*t))
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)

	return k*math.Exp(-r*t)*NormCDF(-d2) - s*math.Exp(-q*t)*NormCDF(-d1)
}

// CallDelta is dPrice/dS for a call. At expiry it collapses to a step
// function on strict moneyness; at zero volatility the step is discounted
// by the dividend yield.
func CallDelta(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 {
		if s > k {
			return 1.0
		}
		return 0.0
	}

	if sigma <= 0 {
		if s > k {
			return math.Exp(-q * t)
		}
		return 0.0
	}

	return math.Exp(-q*t) * NormCDF(D1(s, k, t, r, sigma, q))
}

// PutDelta is dPrice/dS for a put.
func PutDelta(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 {
		if s < k {
			return -1.0
		}
		return 0.0
	}

	if sigma <= 0 {
		if s < k {
			return -math.Exp(-q * t)
		}
		return 0.0
	}

	return -math.Exp(-q*t) * NormCDF(-D1(s, k, t, r, sigma, q))
}

// Gamma is d2Price/dS2, identical for calls and puts.
func Gamma(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)

	return math.Exp(-q*t) * NormPDF(d1) / (s * sigma * math.Sqrt(t))
}

// CallTheta is dPrice/dT per year for a call, negative for long options
// under normal market conditions.
func CallTheta(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)
	common := -(s * math.Exp(-q*t) * NormPDF(d1) * sigma) / (2 * math.Sqrt(t))

	return common + q*s*math.Exp(-q*t)*NormCDF(d1) - r*k*math.Exp(-r*t)*NormCDF(d2)
}

// PutTheta is dPrice/dT per year for a put.
func PutTheta(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)
	common := -(s * math.Exp(-q*t) * NormPDF(d1) * sigma) / (2 * math.Sqrt(t))

	return common - q*s*math.Exp(-q*t)*NormCDF(-d1) + r*k*math.Exp(-r*t)*NormCDF(-d2)
}

// Vega is dPrice/dSigma, identical for calls and puts.
func Vega(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)

	return s * math.Exp(-q*t) * NormPDF(d1) * math.Sqrt(t)
}

// CallRho is dPrice/dR for a call.
func CallRho(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d2 := D2(s, k, t, r, sigma, q)

	return k * t * math.Exp(-r*t) * NormCDF(d2)
}

// PutRho is dPrice/dR for a put.
func PutRho(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d2 := D2(s, k, t, r, sigma, q)

	return -k * t * math.Exp(-r*t) * NormCDF(-d2)
}
