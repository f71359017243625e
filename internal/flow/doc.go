// Package flow drives the onboarding steps in their fixed order.
//
// Controller is the router: it maps locations to steps, redirects unknown
// locations to the contract step and only moves forward one step at a time
// after the current step's screen succeeded. Runner mounts a fresh screen for
// the current step, feeds it input from a UI and follows its outcome until
// the payment screen exits the app or the user leaves.
package flow
