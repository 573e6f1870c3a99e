package sampler

import "github.com/munilab/transit-sampler-go/internal/spatial"

// sfPerimeter traces the San Francisco city boundary, ordered clockwise from
// the southeast corner. Digitized by hand from the map; the polygon is highly
// irregular, so membership tests must handle the non-convex case.
var sfPerimeter = []spatial.Point{
	{Lat: 37.708266, Lon: -122.393657}, {Lat: 37.708440, Lon: -122.485511}, {Lat: 37.724103, Lon: -122.485019},
	{Lat: 37.726958, Lon: -122.483816}, {Lat: 37.729338, Lon: -122.485621}, {Lat: 37.730333, Lon: -122.489504},
	{Lat: 37.728905, Lon: -122.491802}, {Lat: 37.729554, Lon: -122.493661}, {Lat: 37.729121, Lon: -122.496561},
	{Lat: 37.731501, Lon: -122.498748}, {Lat: 37.725358, Lon: -122.503452}, {Lat: 37.727045, Lon: -122.506133},
	{Lat: 37.732658, Lon: -122.507427}, {Lat: 37.735427, Lon: -122.506825}, {Lat: 37.775045, Lon: -122.511305},
	{Lat: 37.778698, Lon: -122.513720}, {Lat: 37.779853, Lon: -122.509438}, {Lat: 37.780845, Lon: -122.509633},
	{Lat: 37.781737, Lon: -122.493314}, {Lat: 37.787528, Lon: -122.493787}, {Lat: 37.787908, Lon: -122.491871},
	{Lat: 37.787112, Lon: -122.491174}, {Lat: 37.788406, Lon: -122.489796}, {Lat: 37.788844, Lon: -122.489989},
	{Lat: 37.790350, Lon: -122.485654}, {Lat: 37.810905, Lon: -122.477056}, {Lat: 37.809361, Lon: -122.476045},
	{Lat: 37.808615, Lon: -122.471663}, {Lat: 37.803555, Lon: -122.459563}, {Lat: 37.804439, Lon: -122.453015},
	{Lat: 37.805638, Lon: -122.453891}, {Lat: 37.806730, Lon: -122.447791}, {Lat: 37.805212, Lon: -122.447251},
	{Lat: 37.805851, Lon: -122.442263}, {Lat: 37.806650, Lon: -122.442499}, {Lat: 37.807502, Lon: -122.435893},
	{Lat: 37.806277, Lon: -122.435657}, {Lat: 37.804999, Lon: -122.433769}, {Lat: 37.806064, Lon: -122.425545},
	{Lat: 37.807901, Lon: -122.421703}, {Lat: 37.808061, Lon: -122.417793}, {Lat: 37.808301, Lon: -122.415838},
	{Lat: 37.809073, Lon: -122.415939}, {Lat: 37.808860, Lon: -122.412669}, {Lat: 37.807768, Lon: -122.407479},
	{Lat: 37.806384, Lon: -122.404715}, {Lat: 37.803774, Lon: -122.401547}, {Lat: 37.792636, Lon: -122.390954},
	{Lat: 37.791064, Lon: -122.389047}, {Lat: 37.789640, Lon: -122.388360}, {Lat: 37.787995, Lon: -122.387738},
	{Lat: 37.778371, Lon: -122.387480}, {Lat: 37.777149, Lon: -122.390399}, {Lat: 37.776547, Lon: -122.389927},
	{Lat: 37.776615, Lon: -122.387459}, {Lat: 37.771519, Lon: -122.386676}, {Lat: 37.768839, Lon: -122.385056},
	{Lat: 37.765330, Lon: -122.386579}, {Lat: 37.763624, Lon: -122.387109}, {Lat: 37.763124, Lon: -122.386537},
	{Lat: 37.763081, Lon: -122.385244}, {Lat: 37.762142, Lon: -122.385285}, {Lat: 37.761762, Lon: -122.383279},
	{Lat: 37.759570, Lon: -122.381891}, {Lat: 37.759547, Lon: -122.381410}, {Lat: 37.758147, Lon: -122.381303},
	{Lat: 37.757705, Lon: -122.381607}, {Lat: 37.755286, Lon: -122.381178}, {Lat: 37.755058, Lon: -122.384233},
	{Lat: 37.754531, Lon: -122.384091}, {Lat: 37.754464, Lon: -122.383106}, {Lat: 37.754479, Lon: -122.383072},
	{Lat: 37.753239, Lon: -122.383082}, {Lat: 37.753120, Lon: -122.384104}, {Lat: 37.748432, Lon: -122.382347},
	{Lat: 37.748126, Lon: -122.386309}, {Lat: 37.747807, Lon: -122.390386}, {Lat: 37.748806, Lon: -122.392968},
	{Lat: 37.747466, Lon: -122.393263}, {Lat: 37.746633, Lon: -122.390767}, {Lat: 37.746935, Lon: -122.375659},
	{Lat: 37.740055, Lon: -122.367982}, {Lat: 37.739688, Lon: -122.374093}, {Lat: 37.732913, Lon: -122.375795},
	{Lat: 37.732139, Lon: -122.374232}, {Lat: 37.734052, Lon: -122.372238}, {Lat: 37.731735, Lon: -122.369059},
	{Lat: 37.731634, Lon: -122.365114}, {Lat: 37.729890, Lon: -122.362227}, {Lat: 37.728079, Lon: -122.362141},
	{Lat: 37.728514, Lon: -122.357474}, {Lat: 37.726166, Lon: -122.357899}, {Lat: 37.725731, Lon: -122.365537},
	{Lat: 37.723636, Lon: -122.362980}, {Lat: 37.722097, Lon: -122.364197}, {Lat: 37.719901, Lon: -122.363036},
	{Lat: 37.716778, Lon: -122.364195}, {Lat: 37.724967, Lon: -122.377806}, {Lat: 37.722607, Lon: -122.381104},
	{Lat: 37.724809, Lon: -122.387145}, {Lat: 37.721685, Lon: -122.383194}, {Lat: 37.720367, Lon: -122.383779},
	{Lat: 37.716056, Lon: -122.376343}, {Lat: 37.709382, Lon: -122.381688}, {Lat: 37.710458, Lon: -122.390474},
	{Lat: 37.708142, Lon: -122.393783},
}

// SanFrancisco returns the default sampling boundary
func SanFrancisco() *Boundary {
	b, err := NewBoundary(sfPerimeter)
	if err != nil {
		// the vertex table is a compile-time constant; this cannot happen
		panic(err)
	}
	return b
}
