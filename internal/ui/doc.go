// Package ui contains the Bubble Tea program that hosts the demo widgets.
// The Model focuses on message orchestration; the widgets own all
// interaction state and the view only projects their declarative output.
//
// Message flow:
//   - Key presses are translated by internal/keys into engine input events
//     and handed to the widget holding keyboard input. Tab and Shift+Tab
//     move between widgets when the widget leaves them unhandled.
//   - Mouse events are hit-tested against the regions recorded by the last
//     render and delivered as widget.Pointer values.
//   - Timers are scheduled on a timer.Scheduler. Their expiry arrives as a
//     timer.Expired message and is routed to the snackbar, the tooltip and
//     then each widget until one claims it.
//
// Menu commits resolve to a menu.Action through the menu registry and run on
// the command bus (internal/ui/command). The resulting ActionResult updates
// the document context and is announced through the snackbar.
package ui
