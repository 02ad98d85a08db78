package showroom

import (
	"fmt"
	"sync"
	"time"

	"github.com/kiltia/showroom/pkg/log"
)

// Operation names the kind of write that produced a [Change].
type Operation string

const (
	OpUpdateConfiguration Operation = "update_configuration"
	OpUpdateSection       Operation = "update_section"
	OpSetCurrentLayout    Operation = "set_current_layout"
	OpReset               Operation = "reset"
	OpImport              Operation = "import"
)

// Change is delivered to subscribers after every successful write.
type Change struct {
	Operation     Operation
	Section       Section
	Revision      uint64
	Configuration Configuration
}

type subscription struct {
	id int
	fn func(Change)
}

// Store is the single source of truth for the editor configuration. Every
// mutator is one atomic transaction: readers see the tree either before or
// after it, never in between.
type Store struct {
	mu       sync.RWMutex
	cfg      Configuration
	revision uint64

	subMu  sync.Mutex
	subs   []subscription
	nextID int

	log log.Logger
	now func() time.Time
}

type Option func(*Store)

// WithLogger sets the channel import diagnostics are reported to.
func WithLogger(l log.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the wall clock used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store holding a fresh copy of the default
// configuration.
func NewStore(opts ...Option) *Store {
	s := &Store{
		cfg: DefaultConfiguration(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configuration returns the current tree. Slices inside it are shared with
// the store and must not be modified.
func (s *Store) Configuration() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Revision counts successful writes since the store was created.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) Typography() Typography { return s.Configuration().Typography }
func (s *Store) Button() Button         { return s.Configuration().Button }
func (s *Store) Gallery() Gallery       { return s.Configuration().Gallery }
func (s *Store) Layout() Layout         { return s.Configuration().Layout }
func (s *Store) Stroke() Stroke         { return s.Configuration().Stroke }
func (s *Store) Product() Product       { return s.Configuration().Product }

func (s *Store) CurrentLayout() LayoutType {
	return s.Configuration().CurrentLayout
}

// UpdateConfiguration replaces every section present in patch and leaves
// the rest of the tree alone. Sections are swapped wholesale, not merged.
func (s *Store) UpdateConfiguration(patch ConfigurationPatch) {
	s.write(OpUpdateConfiguration, "", patch.apply)
}

// UpdateSection merges patch into the named section only.
func (s *Store) UpdateSection(section Section, patch SectionPatch) error {
	if !section.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if patch == nil {
		return fmt.Errorf("%w: nil patch for %s", ErrSectionMismatch, section)
	}
	if patch.Section() != section {
		return fmt.Errorf(
			"%w: %s patch for %s",
			ErrSectionMismatch,
			patch.Section(),
			section,
		)
	}
	s.write(OpUpdateSection, section, patch.mergeInto)
	return nil
}

func (s *Store) UpdateTypography(patch TypographyPatch) {
	s.write(OpUpdateSection, SectionTypography, patch.mergeInto)
}

func (s *Store) UpdateButton(patch ButtonPatch) {
	s.write(OpUpdateSection, SectionButton, patch.mergeInto)
}

func (s *Store) UpdateGallery(patch GalleryPatch) {
	s.write(OpUpdateSection, SectionGallery, patch.mergeInto)
}

func (s *Store) UpdateLayout(patch LayoutPatch) {
	s.write(OpUpdateSection, SectionLayout, patch.mergeInto)
}

func (s *Store) UpdateStroke(patch StrokePatch) {
	s.write(OpUpdateSection, SectionStroke, patch.mergeInto)
}

func (s *Store) UpdateProduct(patch ProductPatch) {
	s.write(OpUpdateSection, SectionProduct, patch.mergeInto)
}

// SetCurrentLayout replaces the layout discriminant only.
func (s *Store) SetCurrentLayout(layout LayoutType) {
	s.write(OpSetCurrentLayout, "", func(c Configuration) Configuration {
		c.CurrentLayout = layout
		return c
	})
}

// Reset installs a fresh copy of the compiled-in default.
func (s *Store) Reset() {
	s.write(OpReset, "", func(Configuration) Configuration {
		return DefaultConfiguration()
	})
}

// Subscribe registers fn to be called after every successful write. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) write(
	op Operation,
	section Section,
	fn func(Configuration) Configuration,
) {
	s.mu.Lock()
	s.cfg = fn(s.cfg)
	s.revision++
	change := Change{
		Operation:     op,
		Section:       section,
		Revision:      s.revision,
		Configuration: s.cfg,
	}
	s.mu.Unlock()

	s.notify(change)
}

// notify runs outside the tree lock so subscribers may read the store.
func (s *Store) notify(change Change) {
	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}
