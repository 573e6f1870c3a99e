package models

// TravelMode is one of the four transport modes the directions UI offers
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeTransit TravelMode = "transit"
	ModeWalk    TravelMode = "walk"
	ModeBicycle TravelMode = "bicycle"
)

// TravelModes lists all modes in the order they are queried each cycle
var TravelModes = []TravelMode{ModeDriving, ModeTransit, ModeWalk, ModeBicycle}

// DurationEstimate maps a travel mode to whole minutes. A missing key means
// the UI never produced a readable duration for that mode within the retry
// budget.
type DurationEstimate map[TravelMode]int

// Complete reports whether every travel mode has an estimate
func (d DurationEstimate) Complete() bool {
	for _, mode := range TravelModes {
		if _, ok := d[mode]; !ok {
			return false
		}
	}
	return true
}

// TripRecord is one persisted observation: a directional leg between two
// sampled locations, with travel-time estimates for each mode.
type TripRecord struct {
	ArriveAddress string  `json:"arrive_add" db:"arrive_add"`
	ArriveLat     float64 `json:"arrive_lat" db:"arrive_lat"`
	ArriveLon     float64 `json:"arrive_lon" db:"arrive_lon"`
	DepartAddress string  `json:"depart_add" db:"depart_add"`
	DepartLat     float64 `json:"depart_lat" db:"depart_lat"`
	DepartLon     float64 `json:"depart_lon" db:"depart_lon"`

	// Minutes per mode; nil when the UI gave no answer for that mode
	Bicycle *int `json:"bicycle" db:"bicycle"`
	Driving *int `json:"driving" db:"driving"`
	Transit *int `json:"transit" db:"transit"`
	Walk    *int `json:"walk" db:"walk"`

	Timestamp string `json:"timestamp" db:"timestamp"`
}

// Complete reports whether all four duration fields are set. Records with a
// gap are dropped at assembly time and never reach the recorder.
func (r *TripRecord) Complete() bool {
	return r.Bicycle != nil && r.Driving != nil && r.Transit != nil && r.Walk != nil
}

// SetDuration assigns one mode's estimate
func (r *TripRecord) SetDuration(mode TravelMode, minutes int) {
	m := minutes
	switch mode {
	case ModeBicycle:
		r.Bicycle = &m
	case ModeDriving:
		r.Driving = &m
	case ModeTransit:
		r.Transit = &m
	case ModeWalk:
		r.Walk = &m
	}
}

// ApplyEstimate copies every present mode from the estimate onto the record
func (r *TripRecord) ApplyEstimate(est DurationEstimate) {
	for mode, minutes := range est {
		r.SetDuration(mode, minutes)
	}
}
