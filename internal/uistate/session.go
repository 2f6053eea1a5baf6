// Package uistate models the page-local UI state of the news frontend as
// explicit state machines: the session (signed out / signed in), the theme,
// the category tabs and the per-card expansion toggles. The server issues no
// token, so a Session value is the only record of who is signed in, and it
// lives exactly as long as the page.
package uistate

type SessionState int

const (
	SignedOut SessionState = iota
	SignedIn
)

// Session drives the sign-in control, the add-news control and the sign-in
// modal. All transitions are client-local; signing out makes no server call
// because there is no server-side session to invalidate.
type Session struct {
	state     SessionState
	userName  string
	modalOpen bool
	formError string
	notice    string
}

func NewSession() *Session {
	return &Session{state: SignedOut}
}

// ClickControl handles a click on the sign-in/sign-out control. Signed out it
// opens the modal without changing state; signed in it resets to SignedOut.
func (s *Session) ClickControl() {
	switch s.state {
	case SignedOut:
		s.modalOpen = true
	case SignedIn:
		s.state = SignedOut
		s.userName = ""
	}
}

// SubmitSuccess applies a successful credential check: the session becomes
// SignedIn, the modal closes and a welcome notice is queued.
func (s *Session) SubmitSuccess(userName string) {
	s.state = SignedIn
	s.userName = userName
	s.modalOpen = false
	s.formError = ""
	s.notice = "Welcome, " + userName + "!"
}

// SubmitFailure records the inline form error; the state stays SignedOut and
// the modal stays open.
func (s *Session) SubmitFailure(message string) {
	s.formError = message
}

func (s *Session) CloseModal() {
	s.modalOpen = false
	s.formError = ""
}

func (s *Session) State() SessionState { return s.state }

func (s *Session) UserName() string { return s.userName }

func (s *Session) ModalOpen() bool { return s.modalOpen }

func (s *Session) FormError() string { return s.formError }

// ControlLabel is the caption of the sign-in/sign-out control.
func (s *Session) ControlLabel() string {
	if s.state == SignedIn {
		return "Sign out"
	}
	return "Sign in"
}

// ShowAddNews reports whether the add-news control is visible.
func (s *Session) ShowAddNews() bool {
	return s.state == SignedIn
}

// TakeNotice returns the pending one-shot notification and clears it.
func (s *Session) TakeNotice() string {
	notice := s.notice
	s.notice = ""
	return notice
}
