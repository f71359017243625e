// Package gateway provides the HTTP implementation of the domain.Gateway
// interface used by the onboarding flow.
//
// The backend is a REST-like user/course service. This package offers a
// concrete client for it:
//   - Listing the course catalogue and fetching a single course.
//   - Recording contract acceptance, the selected course and the phone number.
//   - Uploading the payment receipt as a multipart body.
//   - Reading the current user record and subscription.
//
// Every request carries "Authorization: tma <token>" when the host supplied an
// identity token, plus a fresh X-Request-ID. Calls are never retried; non-2xx
// statuses, transport failures and undecodable bodies are returned as *Error
// values classified as ErrNetwork, ErrUnauthorized, ErrValidation or
// ErrServer.
package gateway
