package get_day_schedule

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// Request asks for the derived schedule of one calendar date.
type Request struct {
	Date time.Time
}

// Response carries the derived day schedule. An empty Windows slice means
// no availability on that date, which is a normal answer, not an error.
type Response struct {
	Date    time.Time
	Windows []Window
}

// Window is one open window with its occupancy state.
type Window struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Booked    bool
}
