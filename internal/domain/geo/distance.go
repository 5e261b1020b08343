// Package geo computes distances between coordinates on the WGS84 ellipsoid.
package geo

import (
	"math"

	"foodcart/internal/domain/entity"

	orbgeo "github.com/paulmach/orb/geo"
)

// WGS84 ellipsoid parameters.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	semiMinorAxis = (1 - flattening) * semiMajorAxis

	maxIterations = 200
	convergence   = 1e-12
)

// Distance returns the ellipsoidal geodesic distance in kilometres, using
// Vincenty's inverse formula. For nearly antipodal points, where the
// iteration does not converge, the spherical distance is returned instead.
func Distance(from, to entity.Coordinate) float64 {
	meters, ok := vincentyInverse(from, to)
	if !ok {
		meters = orbgeo.DistanceHaversine(from.Point(), to.Point())
	}

	return meters / 1000
}

func vincentyInverse(from, to entity.Coordinate) (float64, bool) {
	lonDelta := toRadians(to.Lon - from.Lon)
	reducedLat1 := math.Atan((1 - flattening) * math.Tan(toRadians(from.Lat)))
	reducedLat2 := math.Atan((1 - flattening) * math.Tan(toRadians(to.Lat)))
	sinU1, cosU1 := math.Sincos(reducedLat1)
	sinU2, cosU2 := math.Sincos(reducedLat2)

	lambda := lonDelta
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64

	converged := false
	for range maxIterations {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma = math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			// Coincident points.
			return 0, true
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		cos2SigmaM = 0 // equatorial line
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = lonDelta + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < convergence {
			converged = true

			break
		}
	}

	if !converged {
		return 0, false
	}

	uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
	a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := b * sinSigma * (cos2SigmaM + b/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return semiMinorAxis * a * (sigma - deltaSigma), true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
