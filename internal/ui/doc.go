// Package ui contains the Bubble Tea program that plays the part of a grid
// menu host for a single terminal user.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse input, resizes, refresh ticks).
//   - Key and mouse handlers translate input into clicks and drags on raw
//     slots. The Host turns those into menu.ClickEvent and menu.DragEvent
//     values, hands them to the menu.Registry and applies the interaction
//     to its own slots only when the event was not cancelled.
//
// State ownership:
//   - Host owns every surface the registry created, the user's inventory and
//     the item held on the cursor. It implements menu.Host and
//     menu.FeedbackHost.
//   - Sessions and their buttons live in internal/menu. The model never
//     writes menu slots directly.
//
// The program exits once no surface is left on screen, closing every session
// on the way out.
package ui
