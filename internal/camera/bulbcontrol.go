package camera

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
)

// BulbControlKind identifies which mechanism, if any, a camera uses for
// timed exposures beyond its native shutter speed range (§4.8.2).
type BulbControlKind int

const (
	BulbNone BulbControlKind = iota
	BulbStandard
	BulbEosRemoteRelease
)

// DetectBulbControl probes, at camera construction, for a "bulb" toggle
// widget first, then an "eosremoterelease" radio widget; neither existing
// means the camera has no bulb mechanism at all.
func DetectBulbControl(native NativeCamera) (BulbControlKind, *CachedRadio, error) {
	for _, t := range native.Toggles() {
		if t == "bulb" {
			return BulbStandard, nil, nil
		}
	}
	for _, r := range native.Radios() {
		if r == "eosremoterelease" {
			radio, err := NewCachedRadio(native, "eosremoterelease")
			if err != nil {
				return BulbNone, nil, err
			}
			return BulbEosRemoteRelease, radio, nil
		}
	}
	return BulbNone, nil, nil
}

// BulbExposure is an open shutter obtained through whichever mechanism
// DetectBulbControl found. Stop must be called on every exit path once a
// BulbExposure exists, including failure paths; it is idempotent.
type BulbExposure struct {
	native  NativeCamera
	kind    BulbControlKind
	radio   *CachedRadio
	mu      sync.Mutex
	stopped bool
}

// StartBulb opens the shutter via kind/radio as detected by
// DetectBulbControl. BulbNone is a programmer error — callers must check
// the detected kind for BulbNone before starting a bulb exposure, as
// Camera.StartExposure does for a duration that requires bulb mode.
func StartBulb(native NativeCamera, kind BulbControlKind, radio *CachedRadio) (*BulbExposure, *ascomerr.Error) {
	switch kind {
	case BulbStandard:
		if err := native.SetToggle("bulb", true); err != nil {
			return nil, ascomerr.Unspecifiedf("bulb: %s", err)
		}
	case BulbEosRemoteRelease:
		idx := indexOf(radio.Choices(), "Immediate")
		if idx < 0 {
			return nil, ascomerr.New(ascomerr.Unspecified, "eosremoterelease: no Immediate choice")
		}
		if err := radio.SetIndex(idx); err != nil {
			return nil, err
		}
	default:
		return nil, ascomerr.New(ascomerr.InvalidValue, "camera does not support bulb exposures")
	}
	return &BulbExposure{native: native, kind: kind, radio: radio}, nil
}

// Stop closes the shutter. Safe to call multiple times and on a nil
// receiver (the no-bulb-needed case), so callers can defer it unconditionally.
func (b *BulbExposure) Stop() *ascomerr.Error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return nil
	}
	b.stopped = true
	b.mu.Unlock()
	switch b.kind {
	case BulbStandard:
		if err := b.native.SetToggle("bulb", false); err != nil {
			return ascomerr.Unspecifiedf("bulb: %s", err)
		}
	case BulbEosRemoteRelease:
		idx := indexOf(b.radio.Choices(), "Release Full")
		if idx < 0 {
			return ascomerr.New(ascomerr.Unspecified, "eosremoterelease: no Release Full choice")
		}
		if err := b.radio.SetIndex(idx); err != nil {
			return err
		}
	}
	return nil
}
