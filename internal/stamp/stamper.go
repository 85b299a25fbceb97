package stamp

import "time"

// Stamper composes names against a single clock reading so that every name
// produced during one invocation carries the same stamp.
type Stamper struct {
	opts Options
	now  time.Time
}

// NewStamper captures the current local time
func NewStamper(opts Options) *Stamper {
	return NewStamperAt(time.Now(), opts)
}

// NewStamperAt uses t as the clock reading
func NewStamperAt(t time.Time, opts Options) *Stamper {
	return &Stamper{opts: opts, now: t}
}

// Now returns the clock reading the stamper was created with
func (s *Stamper) Now() time.Time {
	return s.now
}

// Stamp renders the stamp alone
func (s *Stamper) Stamp() string {
	return FormatStamp(s.now, s.opts.IncludeTime)
}

// Name stamps the last segment of rawName
func (s *Stamper) Name(rawName string) string {
	return Compose(s.now, SplitFilename(rawName), s.opts)
}

// WithExtension stamps base and appends ext, for outputs such as directory
// archives whose extension is chosen by the caller.
func (s *Stamper) WithExtension(base, ext string) string {
	return ComposeStampedName(s.now, base, ext, s.opts.Suffix, s.opts.IncludeTime)
}

// Restamp replaces the stamp of rawName's last segment with a fresh one
func (s *Stamper) Restamp(rawName string) (string, bool) {
	return Restamp(s.now, rawName, s.opts)
}
