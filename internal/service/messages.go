package service

import (
	"net/http"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
)

// Operation names a user action whose failures surface as flash messages.
type Operation string

const (
	OpListPapers    Operation = "list_papers"
	OpDeletePaper   Operation = "delete_paper"
	OpNewPaper      Operation = "new_paper"
	OpLogout        Operation = "logout"
	OpLogin         Operation = "login"
	OpRegister      Operation = "register"
	OpResetRequest  Operation = "reset"
	OpResetPassword Operation = "reset_password"
	OpProfile       Operation = "profile"
	OpViewPaper     Operation = "view_paper"
	OpEditPaper     Operation = "edit_paper"
)

// StatusMessages maps the backend status of a failed operation to a message key.
// Statuses without an entry use Default.
type StatusMessages struct {
	ByStatus map[int]string
	Default  string
}

// Key returns the message key for status.
func (m StatusMessages) Key(status int) string {
	if key, ok := m.ByStatus[status]; ok {
		return key
	}
	return m.Default
}

var statusMessages = map[Operation]StatusMessages{
	OpListPapers: {
		ByStatus: map[int]string{
			http.StatusUnauthorized:        "_List_Papers_Not_connected_",
			http.StatusInternalServerError: "_List_Papers_Something_wrong_happened_",
		},
		Default: "_List_Papers_Something_wrong_happened_",
	},
	OpDeletePaper: {
		ByStatus: map[int]string{
			http.StatusUnauthorized:        "_Delete_paper_User_must_be_authentified_",
			http.StatusForbidden:           "_Delete_paper_Authenticated_user_has_no_sufficient_rights_to_delete_the_paper_",
			http.StatusInternalServerError: "_Delete_paper_Something_wrong_happened_",
		},
		Default: "_Delete_paper_Something_wrong_happened_",
	},
	OpNewPaper: {
		ByStatus: map[int]string{
			http.StatusBadRequest:          "_New_paper_Some_parameters_are_missing_",
			http.StatusUnauthorized:        "_New_paper_Not_connected_",
			http.StatusInternalServerError: "_New_paper_Something_wrong_happened_",
		},
		Default: "_New_paper_Something_wrong_happened_",
	},
	OpLogout: {
		ByStatus: map[int]string{
			http.StatusUnauthorized:        "_Logout_Not_connected_",
			http.StatusInternalServerError: "_Logout_Something_wrong_happened_",
		},
		Default: "_Logout_Something_wrong_happened_",
	},
	OpLogin: {
		ByStatus: map[int]string{
			http.StatusBadRequest:   "_Login_Some_parameters_are_missing_",
			http.StatusUnauthorized: "_Login_Wrong_username_and_or_password_",
		},
		Default: "_Login_Something_wrong_happened_",
	},
	OpRegister: {
		ByStatus: map[int]string{
			http.StatusBadRequest: "_Registration_Some_parameters_are_missing_",
			http.StatusConflict:   "_Registration_User_with_the_same_username_already_exists_",
		},
		Default: "_Registration_Something_wrong_happened_",
	},
	OpResetRequest: {
		ByStatus: map[int]string{
			http.StatusBadRequest: "_Reset_Some_parameters_are_missing_",
			http.StatusNotFound:   "_Reset_User_not_found_",
		},
		Default: "_Reset_Something_wrong_happened_",
	},
	OpResetPassword: {
		ByStatus: map[int]string{
			http.StatusBadRequest:   "_Reset_password_Some_parameters_are_missing_",
			http.StatusUnauthorized: "_Reset_password_Not_authorized_to_reset_password_",
		},
		Default: "_Reset_password_Something_wrong_happened_",
	},
	OpProfile: {
		ByStatus: map[int]string{
			http.StatusUnauthorized: "_Profile_Not_connected_",
			http.StatusNotFound:     "_Profile_User_not_found_",
		},
		Default: "_Profile_Something_wrong_happened_",
	},
	OpViewPaper: {
		ByStatus: map[int]string{
			http.StatusUnauthorized: "_Paper_Not_connected_",
			http.StatusForbidden:    "_Paper_Authenticated_user_has_no_sufficient_rights_",
			http.StatusNotFound:     "_Paper_Paper_not_found_",
		},
		Default: "_Paper_Something_wrong_happened_",
	},
	OpEditPaper: {
		ByStatus: map[int]string{
			http.StatusBadRequest:   "_Edit_paper_Some_parameters_are_missing_",
			http.StatusUnauthorized: "_Edit_paper_Not_connected_",
			http.StatusForbidden:    "_Edit_paper_Authenticated_user_has_no_sufficient_rights_",
		},
		Default: "_Edit_paper_Something_wrong_happened_",
	},
}

// StatusMessagesFor returns the message table of op.
func StatusMessagesFor(op Operation) (StatusMessages, bool) {
	m, ok := statusMessages[op]
	return m, ok
}

// Informational message keys.
const (
	InfoRegistered      = "_Registration_Success_Check_your_email_"
	InfoResetRequested  = "_Reset_Check_your_email_"
	InfoPasswordChanged = "_Reset_password_Password_changed_"
	InfoPaperSaved      = "_Edit_paper_Saved_"
)

// Messages manipulates the flash messages carried by a session.
// The zero value is ready to use.
type Messages struct{}

// Clear drops every pending message.
func (Messages) Clear(sess *domainauth.Session) {
	sess.Messages = nil
}

// Error appends an error message. The error text, if any, becomes the detail.
func (Messages) Error(sess *domainauth.Session, key string, err error) {
	msg := domainauth.Message{Level: domainauth.MessageError, Key: key}
	if err != nil {
		msg.Detail = err.Error()
	}
	sess.Messages = append(sess.Messages, msg)
}

// Info appends an informational message.
func (Messages) Info(sess *domainauth.Session, key string) {
	sess.Messages = append(sess.Messages, domainauth.Message{Level: domainauth.MessageInfo, Key: key})
}

// Fail replaces pending messages with exactly one error for a failed op and
// returns the chosen key.
func (m Messages) Fail(sess *domainauth.Session, op Operation, err error) string {
	key := statusMessages[op].Key(apperrors.StatusOf(err))
	m.Clear(sess)
	m.Error(sess, key, err)
	return key
}

// Pop returns the pending messages and clears them.
func (Messages) Pop(sess *domainauth.Session) []domainauth.Message {
	out := sess.Messages
	sess.Messages = nil
	return out
}
