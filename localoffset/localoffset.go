/*
Package localoffset determines the UTC offset in effect on the host.

The host's local zone is read from the TZ environment variable, and
failing that from the operating system. Because the environment may be
mutated concurrently by other goroutines, or by cgo code, reading it is
only unconditionally safe during start-up. A [Source] is therefore
constructed deliberately, with a [Soundness] stating when the zone is
read:

	src := localoffset.NewSource(localoffset.Sound) // at start-up
	...
	now, err := src.NowLocal()

A Source is safe for concurrent use.
*/
package localoffset

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/JesseCoretta/go-chronos"
)

/*
Soundness states when a [Source] reads the host's local zone.
*/
type Soundness uint8

const (
	// Sound sources read the zone once, when constructed.
	Sound Soundness = iota

	// Unsound sources read the zone from the environment on every
	// query. The caller accepts that this races with any concurrent
	// mutation of the environment.
	Unsound

	// Disabled sources never determine an offset; every query
	// returns chronos.ErrIndeterminateOffset.
	Disabled
)

var soundnessNames = [...]string{"sound", "unsound", "disabled"}

func (r Soundness) String() string {
	if int(r) < len(soundnessNames) {
		return soundnessNames[r]
	}
	return "Soundness(" + fmt.Sprint(uint8(r)) + ")"
}

/*
ParseSoundness returns the Soundness named by s, ignoring case.
*/
func ParseSoundness(s string) (Soundness, error) {
	for i, name := range soundnessNames {
		if strings.EqualFold(s, name) {
			return Soundness(i), nil
		}
	}
	return Disabled, fmt.Errorf("localoffset: unknown soundness %q", s)
}

func (r Soundness) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Soundness) UnmarshalText(b []byte) (err error) {
	*r, err = ParseSoundness(string(b))
	return
}

/*
Source implements a capability for reading the UTC offset of the host's
local zone. The zero value is a Disabled source.
*/
type Source struct {
	mode Soundness
	loc  *time.Location // set for Sound sources only
	err  error
}

/*
NewSource returns a [Source] of the given [Soundness]. A Sound source
reads the zone immediately; any failure to do so is reported by each
later query.
*/
func NewSource(mode Soundness) Source {
	src := Source{mode: mode}
	switch mode {
	case Sound:
		src.loc, src.err = loadZone()
	case Unsound:
	default:
		src.mode = Disabled
	}
	return src
}

// Soundness returns the mode the receiver was constructed with.
func (r Source) Soundness() Soundness {
	if r.mode == Sound && r.loc == nil && r.err == nil {
		return Disabled
	}
	return r.mode
}

func (r Source) location() (*time.Location, error) {
	switch r.Soundness() {
	case Sound:
		return r.loc, r.err
	case Unsound:
		return loadZone()
	}
	return nil, chronos.ErrIndeterminateOffset
}

/*
OffsetAt returns the offset of the host's local zone at the instant
odt.
*/
func (r Source) OffsetAt(odt chronos.OffsetDateTime) (chronos.UtcOffset, error) {
	loc, err := r.location()
	if err != nil {
		return chronos.UTC, err
	}
	_, secs := odt.Std().In(loc).Zone()
	return chronos.UtcOffsetFromWholeSeconds(int32(secs))
}

/*
CurrentOffset returns the offset of the host's local zone at this
moment.
*/
func (r Source) CurrentOffset() (chronos.UtcOffset, error) {
	return r.OffsetAt(chronos.NowUTC())
}

/*
NowLocal returns the current instant, displayed in the offset of the
host's local zone.
*/
func (r Source) NowLocal() (chronos.OffsetDateTime, error) {
	now := chronos.NowUTC()
	offset, err := r.OffsetAt(now)
	if err != nil {
		return now, err
	}
	return now.ToOffset(offset), nil
}

/*
loadZone resolves the local zone the way the Go runtime does: TZ unset
selects the system zone, TZ empty selects UTC, and any other value
names a zone in the tz database, optionally prefixed with ':'.
*/
func loadZone() (*time.Location, error) {
	tz, set := os.LookupEnv("TZ")
	if !set {
		return time.Local, nil
	}
	tz = strings.TrimPrefix(tz, ":")
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: TZ=%q: %v", chronos.ErrIndeterminateOffset, tz, err)
	}
	return loc, nil
}
