package events

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"fxtool/core/resource"

	"go.uber.org/zap"
)

// Location is one place a script touches an event.
type Location struct {
	Path string
	Line int
	// Type is the script side: client, server or shared.
	Type string
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

// Occurrence collects everywhere a single event is referenced in one role
// (handled, emitted or registered). One location is kept per file.
type Occurrence struct {
	Event     string
	locations map[string]Location
}

func (o *Occurrence) add(loc Location) {
	if o.locations == nil {
		o.locations = map[string]Location{}
	}
	o.locations[loc.Path] = loc
}

// Locations returns the collected locations sorted by path.
func (o *Occurrence) Locations() []Location {
	paths := make([]string, 0, len(o.locations))
	for p := range o.locations {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]Location, 0, len(paths))
	for _, p := range paths {
		out = append(out, o.locations[p])
	}
	return out
}

// Options configures an event scan.
type Options struct {
	// IgnoreEvents extends the default ignored-event globs.
	IgnoreEvents    []string
	IgnoreResources []string
	IgnorePaths     []string
}

// Service scans resources for event handlers and emitters.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new events service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Index is the outcome of a scan, events keyed by name per role.
type Index struct {
	Handlers  map[string]*Occurrence
	Emitters  map[string]*Occurrence
	Registers map[string]*Occurrence
}

// Scan walks the resources under root and indexes every event reference in
// their scripts.
func (s *Service) Scan(root string, opts Options) (*Index, error) {
	ignored := append(append([]string{}, DefaultIgnoredEvents...), opts.IgnoreEvents...)

	resources, err := resource.Scan(root, resource.ScanOptions{
		IgnoreResources: opts.IgnoreResources,
		IgnorePaths:     opts.IgnorePaths,
	}, s.logger)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		Handlers:  map[string]*Occurrence{},
		Emitters:  map[string]*Occurrence{},
		Registers: map[string]*Occurrence{},
	}

	for _, r := range resources {
		for _, f := range r.ScriptFiles() {
			s.logger.Debug("processing script",
				zap.String("type", f.Type),
				zap.String("path", f.Path),
			)
			s.scanScript(idx, f, ignored)
		}
	}

	return idx, nil
}

func (s *Service) scanScript(idx *Index, f resource.ScriptFile, ignored []string) {
	contents, err := resource.ReadScript(f)
	if err != nil {
		s.logger.Error("unable to read script", zap.String("path", f.Path), zap.Error(err))
		return
	}

	pattern := luaEvents
	if filepath.Ext(f.Path) == ".js" {
		pattern = jsEvents
	}

	for _, m := range pattern.FindAllStringSubmatchIndex(contents, -1) {
		fn := contents[m[2]:m[3]]
		event := contents[m[4]:m[5]]

		if ignoredEvent(event, ignored) {
			s.logger.Debug("skipping ignored event", zap.String("event", event))
			continue
		}

		loc := Location{
			Path: f.Path,
			Line: resource.LineAt(contents, m[0]),
			Type: f.Type,
		}

		if handlerFuncs[fn] {
			idx.record(idx.Handlers, event, loc)
		}
		if emitterFuncs[fn] {
			idx.record(idx.Emitters, event, loc)
		}
		if registerFuncs[fn] {
			idx.record(idx.Registers, event, loc)
		}
	}
}

func (idx *Index) record(role map[string]*Occurrence, event string, loc Location) {
	o, ok := role[event]
	if !ok {
		o = &Occurrence{Event: event}
		role[event] = o
	}
	o.add(loc)
}

func ignoredEvent(event string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := path.Match(p, event); ok {
			return true
		}
	}
	return false
}

// Orphans returns events present in check but absent from compare, sorted by
// event name. With triggers=false that is handlers nothing emits; with
// triggers=true, emitters nothing handles.
func (idx *Index) Orphans(triggers bool) []*Occurrence {
	check, compare := idx.Handlers, idx.Emitters
	if triggers {
		check, compare = idx.Emitters, idx.Handlers
	}

	var out []*Occurrence
	for event, o := range check {
		if _, ok := compare[event]; !ok {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Event < out[j].Event })
	return out
}

// Lines renders an orphan report.
func Lines(orphans []*Occurrence, triggers bool) []string {
	var lines []string

	if triggers {
		lines = append(lines,
			"Listing file paths for triggered events,",
			"that **possibly** do not have defined handlers anywhere",
		)
	} else {
		lines = append(lines,
			"Listing file paths for events that have defined handlers,",
			"and are **possibly** not triggered anywhere",
		)
	}
	lines = append(lines, "")

	for _, o := range orphans {
		lines = append(lines, "# "+o.Event)
		for _, loc := range o.Locations() {
			lines = append(lines, loc.String())
		}
		lines = append(lines, "")
	}

	return lines
}
