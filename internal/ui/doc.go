// Package ui contains the Bubble Tea program that powers the wallpaper
// picker. The Model type focuses on message orchestration, while dedicated
// helpers own key routing, pointer routing, preview management, and
// rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the rename dialog is open, messages go to the rename form first.
//     Otherwise the message is routed through a typed handler registry so
//     each tea.Msg kind is handled by a focused function.
//   - Key presses resolve through the configurable keybinding profile into a
//     small action value (internal/ui/input.go); the model applies the action
//     and reports a terminal outcome (item chosen, quit) by quitting the
//     program with the choice recorded.
//
// State ownership:
//   - The visible list (filtering, cursor, viewport, multi-select) lives in
//     internal/ui/state.List. The model owns the active category, the mode,
//     and the preview bookkeeping.
//   - Decoded previews live in the internal/preview cache; the model holds a
//     retained reference to whichever frame is on screen, so cache eviction
//     never blanks the display.
//
// Concurrency:
//   - Decode work runs inside tea.Cmd closures off the main loop; results
//     come back as frameLoadedMsg values and are consumed on the update
//     loop, which is the only place model state mutates. Completions for
//     identities no longer selected still land in the cache but are not
//     shown.
//   - A backend.Watcher streams wallpaper directory changes; the model
//     refreshes the catalog from those events the same way.
package ui
