// Package ui contains the Bubble Tea program that inspects a live menu stack.
// Model focuses on message orchestration while input.go owns key handling and
// filtering and view.go owns rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses mutate the engine's stack or the world directly (toggle,
//     push, remove, despawn) or raise signals (close, pause). Nothing is
//     reconciled until the next tick.
//   - A backend.Watcher streams tick events. Each one is handed to the
//     dispatcher, which runs a single engine pass; the published transitions
//     are appended to the rolling log. Local mutations nudge the watcher so
//     their effects show up without waiting a full interval.
//
// State ownership:
//   - The picker (internal/ui/state.Picker) tracks the entry list, filter,
//     cursor, and viewport. Entries are rebuilt from the world after every tick.
//   - The primary window cursor is owned by the engine's reactors; the model
//     only mirrors changes onto the terminal as mouse and cursor commands.
package ui
