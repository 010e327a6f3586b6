package camera

import "github.com/stellarbridge/alpacaserver/internal/ascomerr"

// CachedRadio adapts a native radio-choice widget (a configuration value
// chosen from a fixed string list) to ASCOM's index-based properties. The
// choice list is snapshotted once at construction so a native widget that
// mutates its choice list mid-session can never shift index meaning out
// from under an in-flight client (§4.8.1).
type CachedRadio struct {
	native  NativeCamera
	widget  string
	choices []string
}

// NewCachedRadio snapshots widget's current choice list from native.
func NewCachedRadio(native NativeCamera, widget string) (*CachedRadio, error) {
	choices, err := native.RadioChoices(widget)
	if err != nil {
		return nil, err
	}
	cached := make([]string, len(choices))
	copy(cached, choices)
	return &CachedRadio{native: native, widget: widget, choices: cached}, nil
}

// Choices returns the cached choice list.
func (r *CachedRadio) Choices() []string {
	out := make([]string, len(r.choices))
	copy(out, r.choices)
	return out
}

// Index resolves the widget's current choice against the cached list. A
// current value no longer present in the cached snapshot reports
// UNSPECIFIED — it should never happen on well-behaved hardware.
func (r *CachedRadio) Index() (int, *ascomerr.Error) {
	current, err := r.native.GetRadioChoice(r.widget)
	if err != nil {
		return 0, ascomerr.Unspecifiedf("%s: %s", r.widget, err)
	}
	for i, c := range r.choices {
		if c == current {
			return i, nil
		}
	}
	return 0, ascomerr.New(ascomerr.Unspecified, "current choice not found in cached list")
}

// SetIndex writes the widget by cached index. An out-of-range index is
// INVALID_VALUE per §4.8.1.
func (r *CachedRadio) SetIndex(i int) *ascomerr.Error {
	if i < 0 || i >= len(r.choices) {
		return ascomerr.InvalidValuef("index %d out of range [0,%d)", i, len(r.choices))
	}
	if err := r.native.SetRadioChoice(r.widget, r.choices[i]); err != nil {
		return ascomerr.Unspecifiedf("%s: %s", r.widget, err)
	}
	return nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
