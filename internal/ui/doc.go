// Package ui contains the Bubble Tea program that renders the Trombone
// sidebar shell: a column of places on the left and the content area on the
// right.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so every message kind is handled
//     by a focused function (key presses, window sizes, backend updates,
//     sidebar outputs and command results).
//   - Key presses are interpreted per mode (sidebar, overflow menu, account
//     switcher, find prompt, shortcuts overlay) in navigation.go, menu.go,
//     accounts.go and find.go.
//
// State ownership:
//   - The sidebar.Sidebar owns the rows, the current place and the menu. The
//     model never edits rows directly; gestures go through ActivateRow,
//     ActivateMenu, RequestAddAccount and RequestSwitchAccount.
//   - Outputs raised by the sidebar are queued during one Update and
//     delivered afterwards with tea.Sequence, so the parent handlers observe
//     them in gesture order and never while the sidebar is dispatching.
//   - Cursor and viewport state for each row list lives in
//     internal/ui/state.Cursor.
//   - Actions run through internal/ui/command, which wraps the action
//     dispatcher into tea.Cmd values and traces their results.
//
// Backend interactions:
//   - A backend.Watcher polls lists and badge counts; Update waits for those
//     events and hands them to the data dispatcher, which reconciles the
//     sidebar rows in place.
package ui
