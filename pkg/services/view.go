package services

import "time"

// MessageKind selects the style of the status message
type MessageKind string

const (
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// View is the surface the controller drives: a message box, a submit
// control and the form inputs.
type View interface {
	HideMessage()
	ShowMessage(message string, kind MessageKind)
	SetSubmitEnabled(enabled bool)
	SetSubmitLabel(label string)
	ResetFields()
}

// Navigator sends the user to another page
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(url string)

func (f NavigatorFunc) Navigate(url string) { f(url) }

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules on the runtime timer
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// ImmediateScheduler runs f synchronously, ignoring the delay. Used when
// the delay is carried out by the client (meta refresh, JSON field).
type ImmediateScheduler struct{}

func (ImmediateScheduler) AfterFunc(_ time.Duration, f func()) {
	f()
}
