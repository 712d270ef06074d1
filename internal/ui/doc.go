// Package ui contains the Bubble Tea program that hosts the orders grid and
// its context menus.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards messages to the active modal first (a prompt form, the
//     column customiser or the details panel). Otherwise the message is routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Mouse presses are routed by mouse.go: a secondary press asks the grid
//     for the descriptor under the pointer, which builds the action tree and
//     opens the shared menu.State; the popup.View then positions the tree.
//     Presses outside an open popup fire the registry's outside-pointer
//     listeners, escape fires the escape listeners.
//
// Side effects:
//   - Menu actions run synchronously inside Update. Actions that touch the
//     store, the clipboard or the filesystem queue a command.Request on the
//     command bus; the resulting command.Result reports success or failure in
//     the status line and triggers a reload through the backend watcher.
//   - A backend.Watcher streams order snapshots; the dispatcher folds them
//     into the order store and the grid is refreshed when they change.
package ui
