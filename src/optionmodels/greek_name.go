package optionmodels

// GreekName identifies one field of a FullGreeks record.
type GreekName string

const (
	GreekDelta GreekName = "delta"
	GreekGamma GreekName = "gamma"
	GreekTheta GreekName = "theta"
	GreekVega  GreekName = "vega"
	GreekRho   GreekName = "rho"
	GreekVanna GreekName = "vanna"
	GreekVolga GreekName = "volga"
	GreekCharm GreekName = "charm"
	GreekVeta  GreekName = "veta"
	GreekSpeed GreekName = "speed"
	GreekColor GreekName = "color"
)

// AllGreekNames lists every greek in report order.
var AllGreekNames = []GreekName{
	GreekDelta,
	GreekGamma,
	GreekTheta,
	GreekVega,
	GreekRho,
	GreekVanna,
	GreekVolga,
	GreekCharm,
	GreekVeta,
	GreekSpeed,
	GreekColor,
}
