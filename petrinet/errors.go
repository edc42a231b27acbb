package petrinet

import "errors"

// ErrCancelled is returned by Fire when its context is cancelled while
// blocked waiting for a transition to become enabled. The net's marking is
// left unchanged; no transition is considered to have fired.
var ErrCancelled = errors.New("petrinet: fire cancelled")
