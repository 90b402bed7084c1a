package keplerian

import (
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
)

// OrbitalBody holds the instantaneous state of a body orbiting a celestial
// object. The position and velocity vectors and the mass are the primary
// attributes; every orbital element is derived lazily from them and cached
// for the lifetime of the body. There is no cache invalidation: mutating R or
// V after a derivation has run will not be reflected in derived values.
type OrbitalBody struct {
	Name   string
	R, V   []float64 // inertial position (km) and velocity (km/s)
	Mass   float64   // kg
	Origin CelestialObject

	cache     map[Attribute]Value
	resolving map[Attribute]bool

	// Epoch state for time propagation.
	Mt       float64 // mean anomaly at epoch
	epoch    float64 // epoch tick
	epochSet bool

	logger kitlog.Logger
}

// NewOrbitalBody creates a body from its primary attributes. The parent body
// supplies the gravitational parameter.
func NewOrbitalBody(name string, R, V []float64, mass float64, origin CelestialObject) *OrbitalBody {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "body", name)
	return &OrbitalBody{Name: name, R: R, V: V, Mass: mass, Origin: origin,
		cache: make(map[Attribute]Value), resolving: make(map[Attribute]bool), logger: klog}
}

// SetLogger replaces the logger of this body.
func (b *OrbitalBody) SetLogger(logger kitlog.Logger) {
	b.logger = logger
}

// SetEpoch anchors the anomaly pipeline: Mt is the mean anomaly at the given
// simulation tick. The tick itself is always passed explicitly to the
// *At methods, there is no process-wide clock.
func (b *OrbitalBody) SetEpoch(tick, Mt float64) {
	b.epoch = tick
	b.Mt = Mt
	b.epochSet = true
}

// SetAttribute stores a precomputed value for the given attribute. The
// resolver treats it exactly like a derived value: it is never recomputed,
// and derivations depending on it use it as-is.
func (b *OrbitalBody) SetAttribute(attr Attribute, val Value) {
	b.cache[attr] = val
}

// GetAttribute returns the cached value of the requested attribute, deriving
// it (and, recursively, its prerequisites) on first use.
func (b *OrbitalBody) GetAttribute(attr Attribute) (Value, error) {
	if val, ok := b.cache[attr]; ok {
		return val, nil
	}
	if err := b.require(attr); err != nil {
		return Value{}, err
	}
	return b.cache[attr], nil
}

// ScalarAttribute is GetAttribute for scalar attributes.
func (b *OrbitalBody) ScalarAttribute(attr Attribute) (float64, error) {
	val, err := b.GetAttribute(attr)
	if err != nil {
		return 0, err
	}
	return val.Scalar(), nil
}

// VectorAttribute is GetAttribute for vector attributes.
func (b *OrbitalBody) VectorAttribute(attr Attribute) ([]float64, error) {
	val, err := b.GetAttribute(attr)
	if err != nil {
		return nil, err
	}
	return val.Vector(), nil
}

// cached returns an attribute which a derivation has declared as a
// prerequisite. The resolver guarantees presence, so absence is a bug in the
// derivation table.
func (b *OrbitalBody) cached(attr Attribute) Value {
	val, ok := b.cache[attr]
	if !ok {
		panic(fmt.Errorf("attribute %s used before being resolved", attr))
	}
	return val
}

func (b *OrbitalBody) scalar(attr Attribute) float64 {
	return b.cached(attr).Scalar()
}

func (b *OrbitalBody) vector(attr Attribute) []float64 {
	return b.cached(attr).Vector()
}

// Apoapsis returns the apoapsis radius.
func (b *OrbitalBody) Apoapsis() (float64, error) {
	return b.ScalarAttribute(AttrApoapsis)
}

// Periapsis returns the periapsis radius.
func (b *OrbitalBody) Periapsis() (float64, error) {
	return b.ScalarAttribute(AttrPeriapsis)
}

// Period returns the period of this orbit.
func (b *OrbitalBody) Period() (time.Duration, error) {
	seconds, err := b.ScalarAttribute(AttrPeriod)
	if err != nil {
		return 0, err
	}
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration, nil
}

// String implements the Stringer interface.
func (b *OrbitalBody) String() string {
	return fmt.Sprintf("%s orbiting %s (|R|=%.1f km |V|=%.3f km/s)", b.Name, b.Origin.Name, norm(b.R), norm(b.V))
}

