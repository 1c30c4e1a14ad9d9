// Package menu implements modal, grid-based menus on top of a host-owned
// display surface.
//
// A Menu declares a title, a size, an optional Background and a Setup
// callback that places Buttons. Opening a Menu through a Registry produces a
// Session bound to one surface handle; the host then hands every raw
// interaction for that surface back to the Registry, which routes it to the
// owning Session.
//
// Event flow:
//   - The host calls Registry.DispatchClick or Registry.DispatchDrag with a
//     raw event. Unknown handles are ignored.
//   - The Session asks its Validator to classify the event. Illegal and
//     consumed interactions are cancelled; dispatchable ones resolve a
//     Button through the session Grid and invoke its Action.
//   - Actions may refresh the session, close it or open another menu. These
//     calls are synchronous and re-entrant.
//   - The host reports surface closure through Registry.NotifyClosed and
//     shutdown through Registry.CloseAll.
//
// The Grid is the single owner of the slot to Button mapping of a session.
// The surface only ever receives content through Grid.Render and
// Session.Refresh, so the two cannot drift apart.
package menu
