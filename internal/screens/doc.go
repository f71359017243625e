// Package screens implements the four onboarding steps as small state
// machines over the gateway.
//
// Each screen is Idle until its primary action runs, Submitting while the
// single gateway call is in flight and Advanced once it succeeded. Invoking
// the action again while it is in flight joins the running call instead of
// issuing a second one. Local validation failures (bad phone, no receipt,
// unknown course) never reach the network. Every failure is shown through the
// domain.Notifier and leaves the screen Idle.
package screens
