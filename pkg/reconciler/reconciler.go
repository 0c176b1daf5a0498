// Package reconciler merges normalized provider attributes into one vehicle
// record. For every output field it consults the sources in the order the
// strategy gives, takes the first non-empty value, and records which source
// supplied it. Values that fail plausibility checks or are placeholders are
// rejected and the next source is tried. A missing variant is synthesized
// from other resolved fields.
//
// A Merger holds no mutable state and is safe for concurrent use. Merging
// never fails: absent, malformed or empty payloads degrade to null fields.
package reconciler

import (
	"maps"
	"slices"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/pkg/constants"
	"github.com/agentstation/carmap/pkg/enhancer"
	"github.com/agentstation/carmap/pkg/normalize"
	"github.com/agentstation/carmap/pkg/plausibility"
	"github.com/agentstation/carmap/pkg/provenance"
	"github.com/agentstation/carmap/pkg/sources"
	"github.com/agentstation/carmap/pkg/vehicle"
)

// Merger reconciles provider payloads into vehicle records.
type Merger struct {
	strategy    Strategy
	normalizers map[sources.ID]normalize.Normalizer
	order       []sources.ID // providers in fallback order
	clock       func() utc.Time
	logger      *zerolog.Logger
	tracking    bool
}

// New creates a new Merger with options.
func New(opts ...Option) (*Merger, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	// Built-in providers first, then custom ones by name
	var order []sources.ID
	for _, id := range sources.Providers() {
		if _, ok := options.normalizers[id]; ok {
			order = append(order, id)
		}
	}
	for _, id := range slices.Sorted(maps.Keys(options.normalizers)) {
		if !slices.Contains(order, id) {
			order = append(order, id)
		}
	}

	return &Merger{
		strategy:    options.strategy,
		normalizers: options.normalizers,
		order:       order,
		clock:       options.clock,
		logger:      options.logger,
		tracking:    options.tracking,
	}, nil
}

var defaultMerger, _ = New(WithProvenance(false))

// Merge reconciles a primary and a secondary payload with the default
// Merger. Either payload may be nil.
func Merge(primary, secondary []byte) *vehicle.Record {
	return defaultMerger.Merge(primary, secondary)
}

// Merge reconciles a primary and a secondary payload. Either may be nil.
func (m *Merger) Merge(primary, secondary []byte) *vehicle.Record {
	return m.Reconcile(map[sources.ID][]byte{
		sources.Primary:   primary,
		sources.Secondary: secondary,
	}).Record
}

// Sources returns the providers the merger reads, in fallback order.
func (m *Merger) Sources() []sources.ID {
	return slices.Clone(m.order)
}

// Strategy returns the strategy used to order sources.
func (m *Merger) Strategy() Strategy {
	return m.strategy
}

// WithLogger returns a copy of the merger that logs to logger. A nil
// logger returns m unchanged.
func (m *Merger) WithLogger(logger *zerolog.Logger) *Merger {
	if logger == nil {
		return m
	}
	c := *m
	c.logger = logger
	return &c
}

// merge holds the state of one Reconcile call.
type merge struct {
	*Merger
	attrs      map[sources.ID]*vehicle.Attributes // valid sources only
	valid      []sources.ID
	record     *vehicle.Record
	tracker    provenance.Tracker
	rejections []Rejection
}

// Reconcile merges payloads keyed by source. Sources without a normalizer
// are ignored; sources that are missing from srcs count as null.
func (m *Merger) Reconcile(srcs map[sources.ID][]byte) *Result {
	run := &merge{
		Merger:  m,
		attrs:   make(map[sources.ID]*vehicle.Attributes, len(m.order)),
		record:  &vehicle.Record{},
		tracker: provenance.NewTracker(m.tracking),
	}

	for id := range srcs {
		if _, ok := m.normalizers[id]; !ok {
			m.logger.Debug().Str("source", id.String()).Msg("No normalizer for source, ignoring payload")
		}
	}

	// Step 1: normalize and gate on validity
	for _, id := range m.order {
		attrs := m.normalizers[id].Normalize(srcs[id])
		if !attrs.IsValid() {
			m.logger.Debug().Str("source", id.String()).Msg("Source carries no usable data")
			continue
		}
		run.attrs[id] = attrs
		run.valid = append(run.valid, id)
	}

	// Steps 3 to 5: per-field selection with fallback
	for _, b := range vehicle.Schema() {
		run.resolve(b)
	}

	// Step 2: free-text fallback fills what the structured data left empty
	run.fillFromDescription()

	// Step 6: variant synthesis
	run.synthesizeVariant()

	run.trackUnresolved()

	run.record.DataSources = vehicle.DataSources{
		Primary:   slices.Contains(run.valid, sources.Primary),
		Secondary: slices.Contains(run.valid, sources.Secondary),
		Timestamp: m.clock(),
	}
	run.record.FieldSources = provenance.Tree(run.record)

	result := &Result{
		Record:     run.record,
		Provenance: run.tracker.Map(),
		Rejections: run.rejections,
		Sources:    run.valid,
	}

	m.logger.Debug().
		Strs("sources", idStrings(run.valid)).
		Int("resolved", result.Resolved()).
		Int("rejected", len(run.rejections)).
		Msg("Reconciled vehicle record")

	return result
}

// resolve selects the value of one field.
func (run *merge) resolve(b vehicle.Binding) {
	path := b.Path()
	preferred := run.preferred(path)
	selected := false

	for _, id := range run.strategy.Order(path, run.valid) {
		value := b.Value(run.attrs[id])
		if vehicle.IsEmpty(value) {
			continue
		}

		if rejected, reason := run.check(path, value); rejected {
			run.reject(path, id, value, reason)
			continue
		}

		entry := provenance.Provenance{
			Source:   id,
			Value:    deref(value),
			Priority: run.strategy.Priority(path, id),
		}
		if selected {
			entry.Reason = provenance.ReasonOutranked
			run.tracker.Track(path, entry)
			continue
		}

		b.Assign(run.record, value, id)
		selected = true
		entry.Selected = true
		entry.Reason = provenance.ReasonFallback
		if id == preferred {
			entry.Reason = provenance.ReasonPreferred
		}
		run.tracker.Track(path, entry)
	}
}

// check applies the field-specific rejection rules to a non-empty value.
func (run *merge) check(path string, value any) (bool, string) {
	switch path {
	case vehicle.PathModel:
		if s, ok := value.(*string); ok && plausibility.ModelField(s) == nil {
			return true, provenance.ReasonImplausible
		}
	case vehicle.PathVariant:
		if s, ok := value.(*string); ok && enhancer.IsPlaceholder(s) {
			return true, provenance.ReasonPlaceholder
		}
	}
	return false, ""
}

func (run *merge) reject(path string, id sources.ID, value any, reason string) {
	r := Rejection{Field: path, Source: id, Value: deref(value), Reason: reason}
	run.rejections = append(run.rejections, r)
	run.tracker.Track(path, provenance.Provenance{Source: id, Value: r.Value, Reason: reason})
	run.logger.Debug().
		Str("field", path).
		Str("source", id.String()).
		Interface("value", r.Value).
		Str("reason", reason).
		Msg("Rejected candidate value")
}

// preferred returns the source the strategy puts first for path when every
// provider is present.
func (run *merge) preferred(path string) sources.ID {
	if order := run.strategy.Order(path, run.order); len(order) > 0 {
		return order[0]
	}
	return ""
}

// fillFromDescription parses a valuation description when make, model or
// fuel type is still null, and fills only the fields that are.
func (run *merge) fillFromDescription() {
	rec := run.record
	if !rec.Make.IsNull() && !rec.Model.IsNull() && !rec.Specifications.FuelType.IsNull() {
		return
	}

	id, desc := run.description()
	if desc == "" {
		return
	}
	parsed := enhancer.ParseDescription(desc)
	run.logger.Debug().Str("source", id.String()).Str("description", desc).Msg("Extracting attributes from description")

	if rec.Make.IsNull() && parsed.Make != nil {
		run.fill(vehicle.PathMake, parsed.Make, id)
	}
	if rec.Model.IsNull() && parsed.Model != nil {
		if plausibility.ModelField(parsed.Model) == nil {
			run.reject(vehicle.PathModel, id, parsed.Model, provenance.ReasonImplausible)
		} else {
			run.fill(vehicle.PathModel, parsed.Model, id)
		}
	}
	if rec.Specifications.FuelType.IsNull() && parsed.FuelType != nil {
		if fuel := normalize.FuelType(*parsed.FuelType); fuel != constants.Unknown {
			run.fill(vehicle.PathFuelType, &fuel, id)
		}
	}
}

// description returns the first valuation description in fallback order.
func (run *merge) description() (sources.ID, string) {
	b, _ := vehicle.Lookup("valuation.description")
	for _, id := range run.strategy.Order(b.Path(), run.valid) {
		if s, ok := b.Value(run.attrs[id]).(*string); ok && !vehicle.IsEmpty(s) {
			return id, *s
		}
	}
	return "", ""
}

func (run *merge) fill(path string, value *string, id sources.ID) {
	b, _ := vehicle.Lookup(path)
	b.Assign(run.record, value, id)
	run.tracker.Track(path, provenance.Provenance{
		Source:   id,
		Value:    *value,
		Reason:   provenance.ReasonFreeText,
		Selected: true,
	})
}

// synthesizeVariant derives the variant when no source supplied one.
func (run *merge) synthesizeVariant() {
	rec := run.record
	if !rec.Variant.IsNull() {
		return
	}

	variant := enhancer.SynthesizeVariant(enhancer.VariantInputs{
		EngineSize:  rec.Specifications.EngineSize.Value,
		VariantCode: run.variantCode(),
		FuelType:    rec.Specifications.FuelType.Value,
		Doors:       rec.Specifications.Doors.Value,
	})
	if variant == nil {
		return
	}

	b, _ := vehicle.Lookup(vehicle.PathVariant)
	b.Assign(rec, variant, sources.Synthesized)
	run.tracker.Track(vehicle.PathVariant, provenance.Provenance{
		Source:   sources.Synthesized,
		Value:    *variant,
		Reason:   provenance.ReasonSynthesized,
		Selected: true,
	})
	run.logger.Debug().Str("variant", *variant).Msg("Synthesized variant")
}

// variantCode returns the first manufacturer variant code in the order
// sources are consulted for the variant.
func (run *merge) variantCode() *string {
	for _, id := range run.strategy.Order(vehicle.PathVariant, run.valid) {
		if code := run.attrs[id].VariantCode; !enhancer.IsPlaceholder(code) {
			return code
		}
	}
	return nil
}

// trackUnresolved records the fields no source supplied.
func (run *merge) trackUnresolved() {
	if !run.tracking {
		return
	}
	vehicle.Walk(run.record, func(path string, leaf vehicle.Leaf) {
		if leaf.IsNull() {
			run.tracker.Track(path, provenance.Provenance{Reason: provenance.ReasonUnresolved})
		}
	})
}

// deref returns the value a typed attribute pointer points to.
func deref(v any) any {
	switch t := v.(type) {
	case *string:
		return *t
	case *int:
		return *t
	case *float64:
		return *t
	}
	return v
}

func idStrings(ids []sources.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
