package console

import (
	"net/http"
	"strings"

	"jnv/console/internal/session"
)

func (c *Console) handleTokenSignIn(w http.ResponseWriter, r *http.Request) {
	paster, ok := c.Session.(session.TokenPaste)
	if !ok {
		c.Status.Set("Token sign-in is not enabled.")
		redirectHome(w, r)
		return
	}

	if err := paster.SetToken(strings.TrimSpace(r.FormValue("token"))); err != nil {
		c.Status.Fail(err)
		redirectHome(w, r)
		return
	}
	c.Status.Set("Signed in as %s.", c.Session.Label())
	redirectHome(w, r)
}

func (c *Console) handlePhoneStart(w http.ResponseWriter, r *http.Request) {
	phones, ok := c.Session.(session.PhoneSignIn)
	if !ok {
		c.Status.Set("Phone sign-in is not enabled.")
		redirectHome(w, r)
		return
	}

	phone := strings.TrimSpace(r.FormValue("phone"))
	challenge := r.FormValue("challenge")
	if err := phones.StartPhoneSignIn(r.Context(), phone, challenge); err != nil {
		c.Status.Fail(err)
		redirectHome(w, r)
		return
	}
	c.Status.Set("OTP sent to %s.", phone)
	redirectHome(w, r)
}

func (c *Console) handlePhoneConfirm(w http.ResponseWriter, r *http.Request) {
	phones, ok := c.Session.(session.PhoneSignIn)
	if !ok {
		c.Status.Set("Phone sign-in is not enabled.")
		redirectHome(w, r)
		return
	}

	if err := phones.ConfirmPhoneSignIn(r.Context(), strings.TrimSpace(r.FormValue("code"))); err != nil {
		c.Status.Fail(err)
		redirectHome(w, r)
		return
	}
	c.Status.Set("Signed in as %s.", c.Session.Label())
	redirectHome(w, r)
}

func (c *Console) handleSignOut(w http.ResponseWriter, r *http.Request) {
	c.Session.SignOut()
	c.Status.Set("Signed out.")
	redirectHome(w, r)
}
