package view

import "time"

// DefaultDismissDelay is how long an error banner stays up on its own
const DefaultDismissDelay = 5 * time.Second

// Dismisser is the error banner state machine. Every error arms a new
// token; a timer may only hide the banner with the latest token.
type Dismisser struct {
	delay time.Duration
	token uint64
	shown bool
}

// NewDismisser creates a hidden banner with the given auto-dismiss delay
func NewDismisser(delay time.Duration) *Dismisser {
	if delay <= 0 {
		delay = DefaultDismissDelay
	}
	return &Dismisser{delay: delay}
}

// Delay returns the auto-dismiss delay
func (d *Dismisser) Delay() time.Duration {
	return d.delay
}

// SetDelay changes the delay used for banners armed from now on
func (d *Dismisser) SetDelay(delay time.Duration) {
	if delay > 0 {
		d.delay = delay
	}
}

// Shown reports whether the banner is up
func (d *Dismisser) Shown() bool {
	return d.shown
}

// Arm shows the banner and returns the token its timer must carry.
// Arming again invalidates every earlier token.
func (d *Dismisser) Arm() uint64 {
	d.token++
	d.shown = true
	return d.token
}

// Disarm hides the banner and invalidates any pending timer
func (d *Dismisser) Disarm() {
	d.token++
	d.shown = false
}

// Due reports whether a timer carrying token should hide the banner now
func (d *Dismisser) Due(token uint64) bool {
	return d.shown && token == d.token
}
