// Package resultdir creates the timestamped directories runner reports are
// written to.
package resultdir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout renders as YYYYMMDD_HHMMSS.
const TimestampLayout = "20060102_150405"

// Location identifies one run's output directory.
type Location struct {
	Base      string
	Domain    string
	SubDomain string
	Timestamp string
}

// Path joins the location into a filesystem path.
func (l Location) Path() string {
	return filepath.Join(l.Base, l.Domain, l.SubDomain, l.Timestamp)
}

// Resolver stamps and creates result directories under Base/Domain/SubDomain.
// Either segment may be empty.
type Resolver struct {
	Base      string
	Domain    string
	SubDomain string
	Clock     func() time.Time // defaults to time.Now
}

// Locate computes the location for the current time without touching disk.
func (r Resolver) Locate() Location {
	now := time.Now
	if r.Clock != nil {
		now = r.Clock
	}
	return Location{
		Base:      r.Base,
		Domain:    r.Domain,
		SubDomain: r.SubDomain,
		Timestamp: now().Local().Format(TimestampLayout),
	}
}

// Resolve computes the location and creates every missing directory on the
// way to it. An existing directory is not an error; two calls within the same
// second return the same path.
func (r Resolver) Resolve() (Location, error) {
	loc := r.Locate()
	if err := os.MkdirAll(loc.Path(), 0o755); err != nil {
		return Location{}, fmt.Errorf("create results directory %s: %w", loc.Path(), err)
	}
	return loc, nil
}
