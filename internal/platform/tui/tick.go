// Package tui provides the Bubble Tea front end of the landing page.
// The LandingModel owns all mutable page state; timers and user actions
// reach it only as messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ShadeTickMsg advances the background shade. Gen identifies the timer
// generation that scheduled it; ticks from a stopped generation are dropped.
type ShadeTickMsg struct {
	Gen int
}

// FrameMsg drives the animations.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// PopupExpiredMsg hides the copy notice if Seq is still the latest one shown.
type PopupExpiredMsg struct {
	Seq int
}

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	Err error
}

// OpenResultMsg reports the outcome of opening an outbound link.
type OpenResultMsg struct {
	Name string
	URL  string
	Err  error
}

// shadeTickCmd schedules the next shade change.
func shadeTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ShadeTickMsg{Gen: gen}
	})
}

// frameCmd schedules the next animation frame at the given rate.
func frameCmd(tickRate int, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

// popupTimerCmd schedules the end of a copy notice.
func popupTimerCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PopupExpiredMsg{Seq: seq}
	})
}
