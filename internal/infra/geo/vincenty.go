package geo

import (
	"math"

	"addressbook/config"
	"addressbook/internal/domain/entity"
)

// WGS-84 ellipsoid.
const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
	wgs84B = wgs84A * (1 - wgs84F)

	metersPerKm = 1000.0

	vincentyMaxIterations = 200
	vincentyTolerance     = 1e-12
)

// Vincenty computes the geodesic distance on the WGS-84 ellipsoid with
// Vincenty's inverse formula, accurate to well under a millimetre.
// The iteration does not converge for nearly antipodal points; those fall
// back to the spherical distance.
type Vincenty struct {
	fallback *Haversine
}

// NewVincenty creates an ellipsoidal distance calculator.
func NewVincenty() *Vincenty {
	return &Vincenty{fallback: NewHaversine()}
}

// Name returns the formula name.
func (v *Vincenty) Name() string {
	return config.FormulaVincenty
}

// DistanceKm returns the ellipsoidal distance in kilometres.
func (v *Vincenty) DistanceKm(from, to entity.Coordinate) float64 {
	meters, ok := vincentyInverse(from, to)
	if !ok {
		return v.fallback.DistanceKm(from, to)
	}

	return meters / metersPerKm
}

// vincentyInverse returns the distance in metres and false when the
// iteration fails to converge.
func vincentyInverse(from, to entity.Coordinate) (float64, bool) {
	if from == to {
		return 0, true
	}

	l := radians(to.Lng - from.Lng)
	u1 := math.Atan((1 - wgs84F) * math.Tan(radians(from.Lat)))
	u2 := math.Atan((1 - wgs84F) * math.Tan(radians(to.Lat)))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	for range vincentyMaxIterations {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma := math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			return 0, true // coincident points
		}
		cosSigma := sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma := math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha := 1 - sinAlpha*sinAlpha

		// cosSqAlpha is zero on the equator
		cos2SigmaM := 0.0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := wgs84F / 16 * cosSqAlpha * (4 + wgs84F*(4-3*cosSqAlpha))
		prev := lambda
		lambda = l + (1-c)*wgs84F*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < vincentyTolerance {
			uSq := cosSqAlpha * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
			a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := b * sinSigma * (cos2SigmaM + b/4*
				(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
					b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

			return wgs84B * a * (sigma - deltaSigma), true
		}
	}

	return 0, false
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
