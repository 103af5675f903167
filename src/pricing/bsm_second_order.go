package pricing

import "math"

// Vanna is dDelta/dSigma (equivalently dVega/dS), identical for calls and
// puts.
func Vanna(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)

	return -math.Exp(-q*t) * NormPDF(d1) * d2 / sigma
}

// Volga (vomma) is dVega/dSigma, identical for calls and puts.
func Volga(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)

	return Vega(s, k, t, r, sigma, q) * d1 * d2 / sigma
}

// CallCharm is dDelta/dT (delta decay) for a call.
func CallCharm(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)
	sqrtT := math.Sqrt(t)
	common := math.Exp(-q*t) * NormPDF(d1) * (2*(r-q)*t - d2*sigma*sqrtT) / (2 * t * sigma * sqrtT)

	return -q*math.Exp(-q*t)*NormCDF(d1) + common
}

// PutCharm is dDelta/dT (delta decay) for a put.
func PutCharm(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)
	sqrtT := math.Sqrt(t)
	common := math.Exp(-q*t) * NormPDF(d1) * (2*(r-q)*t - d2*sigma*sqrtT) / (2 * t * sigma * sqrtT)

	return q*math.Exp(-q*t)*NormCDF(-d1) + common
}

// Veta is dVega/dT, identical for calls and puts.
func Veta(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)
	sqrtT := math.Sqrt(t)

	return -s * math.Exp(-q*t) * NormPDF(d1) * sqrtT * (q + (r-q)*d1/(sigma*sqrtT) - (1+d1*d2)/(2*t))
}

// Speed is dGamma/dS, identical for calls and puts.
func Speed(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	gamma := Gamma(s, k, t, r, sigma, q)

	return -(gamma / s) * (1 + d1/(sigma*math.Sqrt(t)))
}

// Color is dGamma/dT, identical for calls and puts.
func Color(s, k, t, r, sigma, q float64) float64 {
	if t <= 0 || sigma <= 0 {
		return 0.0
	}

	d1 := D1(s, k, t, r, sigma, q)
	d2 := d1 - sigma*math.Sqrt(t)
	sqrtT := math.Sqrt(t)

	return -math.Exp(-q*t) * NormPDF(d1) / (2 * s * t * sigma * sqrtT) *
		(2*q*t + 1 + d1*(2*(r-q)*t-d2*sigma*sqrtT)/(sigma*sqrtT))
}
