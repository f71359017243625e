// Package hostbridge adapts the host container to the domain.HostBridge
// capability set.
//
// The Terminal bridge plays the host for a console session: it holds the
// identity token handed to the process, prints alerts, asks yes/no questions
// on the console and signals exit through Done. The startup handshake
// (ready, expand, enable exit confirmation) runs once no matter how often
// Start is called.
package hostbridge
