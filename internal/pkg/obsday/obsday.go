package obsday

import (
	"regexp"
	"strconv"
	"time"

	"exposurelog-be/internal/pkg/apperror"
)

// Observation IDs look like "LC_O_20240101_000123":
// a two-letter telescope code, a controller code, the observation day
// and a six digit sequence number.
var obsIDRegex = regexp.MustCompile(`^[A-Z][A-Z]_[A-Z]_(\d{8})_(\d{6})$`)

// Current returns the current time and the current observation day.
// The observatory convention is day_obs = now - 12 hours, as an integer
// of the form YYYYMMDD, so that a whole night of observing shares one day.
func Current() (time.Time, int) {
	now := time.Now().UTC()
	dayObs, _ := strconv.Atoi(now.Add(-12 * time.Hour).Format("20060102"))
	return now, dayObs
}

// ParseObsID extracts day_obs and seq_num from an observation ID.
func ParseObsID(obsID string) (dayObs int, seqNum int, err error) {
	match := obsIDRegex.FindStringSubmatch(obsID)
	if match == nil {
		return 0, 0, apperror.BadRequest("invalid obs_id %q", obsID)
	}
	dayObs, _ = strconv.Atoi(match[1])
	seqNum, _ = strconv.Atoi(match[2])
	return dayObs, seqNum, nil
}

// CheckObsID validates the format of an obs_id for an exposure that is not
// yet registered, and requires its day_obs to be within one day of
// currentDayObs. Returns the parsed day_obs and seq_num.
func CheckObsID(obsID string, currentDayObs int) (dayObs int, seqNum int, err error) {
	dayObs, seqNum, err = ParseObsID(obsID)
	if err != nil {
		return 0, 0, err
	}
	if dayObs < currentDayObs-1 || dayObs > currentDayObs+1 {
		return 0, 0, apperror.BadRequest(
			"invalid obs_id %q: day_obs=%d not within one day of current day_obs=%d",
			obsID, dayObs, currentDayObs)
	}
	return dayObs, seqNum, nil
}
