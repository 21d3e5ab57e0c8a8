package session

import "context"

// Session holds the bearer credential for the signed-in operator.
// An empty token means unauthenticated; the token lives in memory only.
type Session interface {
	Token() string
	Label() string
	SignOut()
}

// PhoneSignIn is the two-step OTP flow: request a code for a phone
// number, then confirm it. Start requires a challenge token bound to
// the page that initiated the sign-in.
type PhoneSignIn interface {
	StartPhoneSignIn(ctx context.Context, phone, challenge string) error
	ConfirmPhoneSignIn(ctx context.Context, code string) error
}

// TokenPaste accepts a manually supplied bearer token (dev variant).
type TokenPaste interface {
	SetToken(token string) error
}
