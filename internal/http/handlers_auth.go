package httpx

import (
	"net/http"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/route"
	"github.com/bluelatex/blue-web/internal/ports"
	"github.com/bluelatex/blue-web/internal/service"
)

type loginForm struct {
	UserName string
}

// LoginPage renders the login form.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusOK, nav, loginForm{})
}

// Login authenticates against the backend. On success the navigator picks
// the destination: the remembered page, or the home page.
// POST /login.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	if err := h.Sessions.Login(r.Context(), sess, username, r.PostFormValue("password")); err != nil {
		h.logger().InfoContext(r.Context(), "login rejected", "user", username, "error", err)
		h.render(w, r, http.StatusOK, nav, loginForm{UserName: username})
		return
	}
	h.sessionChanged(w, r, sess, route.LoginPath)
}

// LogoutPage renders the logout confirmation.
func (h *UIHandlers) LogoutPage(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusOK, nav, nil)
}

// Logout closes the backend session. On success the held paper list is
// dropped and the browser goes to the login page; on failure the user stays
// logged in and sees the error on the paper list.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, _ service.Navigation) {
	if err := h.Sessions.Logout(r.Context(), sess); err != nil {
		h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		redirect(w, r, route.PapersPath)
		return
	}
	h.Papers.Forget(sess.ID)
	h.sessionChanged(w, r, sess, route.LoginPath)
}

type registerForm struct {
	Registration ports.Registration
}

// RegisterPage renders the registration form.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusOK, nav, registerForm{})
}

// Register creates an account and sends the visitor to the login page.
// POST /register.
func (h *UIHandlers) Register(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	reg := ports.Registration{
		UserName:    r.PostFormValue("username"),
		FirstName:   r.PostFormValue("first_name"),
		LastName:    r.PostFormValue("last_name"),
		Email:       r.PostFormValue("email"),
		Affiliation: r.PostFormValue("affiliation"),
	}
	if err := h.Users.Register(r.Context(), sess, reg); err != nil {
		h.render(w, r, http.StatusOK, nav, registerForm{Registration: reg})
		return
	}
	h.saveAndRedirect(w, r, sess, route.LoginPath)
}

type resetForm struct {
	UserName string
}

// ResetPage renders the reset request form.
func (h *UIHandlers) ResetPage(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusOK, nav, resetForm{})
}

// RequestReset asks the backend to mail a reset link.
// POST /reset.
func (h *UIHandlers) RequestReset(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	if err := h.Users.RequestReset(r.Context(), sess, username); err != nil {
		h.render(w, r, http.StatusOK, nav, resetForm{UserName: username})
		return
	}
	h.saveAndRedirect(w, r, sess, route.LoginPath)
}

type resetPasswordForm struct {
	UserName string
	Token    string
}

// ResetPasswordPage renders the new password form of a mailed reset link.
func (h *UIHandlers) ResetPasswordPage(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusOK, nav, resetPasswordForm{UserName: nav.Params["username"], Token: nav.Params["token"]})
}

// ResetPassword sets the new password.
// POST /{username}/reset/{token}.
func (h *UIHandlers) ResetPassword(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	reset := ports.PasswordReset{
		UserName:    nav.Params["username"],
		Token:       nav.Params["token"],
		NewPassword: r.PostFormValue("new_password1"),
		Confirm:     r.PostFormValue("new_password2"),
	}
	if err := h.Users.ResetPassword(r.Context(), sess, reset); err != nil {
		h.render(w, r, http.StatusOK, nav, resetPasswordForm{UserName: reset.UserName, Token: reset.Token})
		return
	}
	h.saveAndRedirect(w, r, sess, route.LoginPath)
}

type profileView struct {
	Profile ports.UserProfile
	Loaded  bool
}

// Profile renders the logged-in user's profile.
func (h *UIHandlers) Profile(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation) {
	p, err := h.Users.Profile(r.Context(), sess)
	h.render(w, r, http.StatusOK, nav, profileView{Profile: p, Loaded: err == nil})
}
