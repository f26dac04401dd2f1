package ledger

import (
	"errors"

	"github.com/Veraticus/caisse/internal/common"
	"github.com/Veraticus/caisse/internal/model"
	"github.com/shopspring/decimal"
)

// Session transition errors.
var (
	ErrFormClosed      = errors.New("add-transaction form is not open")
	ErrSubmitInFlight  = errors.New("a transaction is already being saved")
	ErrStoreNotEnabled = errors.New("record store is not configured")
)

// Phase is the state of the add-transaction flow.
type Phase int

// Add-transaction phases.
const (
	PhaseClosed Phase = iota
	PhaseEditing
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Banner is the single shared error message. Seq identifies which failure
// produced it so a delayed expiry cannot clear a newer message.
type Banner struct {
	Message string
	Seq     int
}

// Session is the application state. It is owned by the caller and mutated
// only through its methods, from a single goroutine.
type Session struct {
	formErr       error
	form          Form
	banner        Banner
	snapshot      Snapshot
	bannerSeq     int
	phase         Phase
	enabled       bool
	loading       bool
	refreshing    bool
	refreshQueued bool
}

// NewSession creates a session. A session whose store is not enabled never
// loads and starts with empty lists.
func NewSession(enabled bool) *Session {
	return &Session{
		form:    NewForm(),
		enabled: enabled,
		loading: enabled,
	}
}

// Enabled reports whether the session has a store to talk to.
func (s *Session) Enabled() bool { return s.enabled }

// Loading reports whether a refresh is in flight.
func (s *Session) Loading() bool { return s.loading }

// Snapshot returns the last successfully loaded snapshot.
func (s *Session) Snapshot() Snapshot { return s.snapshot }

// Members returns the current team.
func (s *Session) Members() []model.Member { return s.snapshot.Members }

// Transactions returns the current transactions, newest first.
func (s *Session) Transactions() []model.Transaction { return s.snapshot.Transactions }

// Balance recomputes the balance from the current transactions.
func (s *Session) Balance() decimal.Decimal { return s.snapshot.Balance() }

// Phase returns the add-transaction phase.
func (s *Session) Phase() Phase { return s.phase }

// Form returns the current form fields.
func (s *Session) Form() Form { return s.form }

// FormError returns the last validation error of the form, if any.
func (s *Session) FormError() error { return s.formErr }

// Banner returns the error banner and whether one is showing.
func (s *Session) Banner() (Banner, bool) {
	return s.banner, s.banner.Message != ""
}

// BeginRefresh asks to start a full refresh. It returns false when nothing
// should be started: either the store is not enabled, or a refresh is already
// in flight, in which case one follow-up refresh is queued.
func (s *Session) BeginRefresh() bool {
	if !s.enabled {
		s.loading = false
		return false
	}
	if s.refreshing {
		s.refreshQueued = true
		return false
	}
	s.refreshing = true
	s.loading = true
	return true
}

// EndRefresh records the outcome of a refresh. On success the snapshot is
// replaced; on failure the previous one is kept and the banner is set. It
// returns true when a queued refresh should start now.
func (s *Session) EndRefresh(snapshot Snapshot, err error) bool {
	s.refreshing = false
	s.loading = false

	if err != nil {
		s.ReportError(err)
	} else {
		s.snapshot = snapshot
	}

	if s.refreshQueued {
		s.refreshQueued = false
		s.refreshing = true
		s.loading = true
		return true
	}
	return false
}

// OpenForm moves from Closed to Editing with empty fields.
func (s *Session) OpenForm() bool {
	if s.phase != PhaseClosed {
		return false
	}
	s.phase = PhaseEditing
	s.form = NewForm()
	s.formErr = nil
	return true
}

// CancelForm moves from Editing to Closed and clears the fields. A form that
// is being submitted cannot be cancelled.
func (s *Session) CancelForm() bool {
	if s.phase != PhaseEditing {
		return false
	}
	s.phase = PhaseClosed
	s.form = NewForm()
	s.formErr = nil
	return true
}

// SetForm replaces the form fields while editing.
func (s *Session) SetForm(f Form) {
	if s.phase != PhaseEditing {
		return
	}
	s.form = f
	s.formErr = nil
}

// Submit validates the form and moves to Submitting. The returned draft must
// be written to the store and the outcome reported with SubmitSucceeded or
// SubmitFailed. Invalid forms stay in Editing and never produce a draft.
func (s *Session) Submit() (model.Draft, error) {
	switch s.phase {
	case PhaseClosed:
		return model.Draft{}, ErrFormClosed
	case PhaseSubmitting:
		return model.Draft{}, ErrSubmitInFlight
	}
	if !s.enabled {
		s.formErr = ErrStoreNotEnabled
		return model.Draft{}, ErrStoreNotEnabled
	}

	draft, err := s.form.Validate()
	if err != nil {
		s.formErr = err
		return model.Draft{}, err
	}

	s.formErr = nil
	s.phase = PhaseSubmitting
	return draft, nil
}

// SubmitSucceeded closes the form and clears its fields. The caller starts a
// full refresh.
func (s *Session) SubmitSucceeded() {
	if s.phase != PhaseSubmitting {
		return
	}
	s.phase = PhaseClosed
	s.form = NewForm()
	s.formErr = nil
}

// SubmitFailed returns to Editing with the fields intact and shows the save
// error banner, unless err carries its own user message.
func (s *Session) SubmitFailed(err error) int {
	if s.phase == PhaseSubmitting {
		s.phase = PhaseEditing
	}

	message := common.SaveErrorMessage
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		message = userErr.UserMessage
	}
	return s.setBanner(message)
}

// ReportError overwrites the banner with the message for err and returns the
// banner's sequence number.
func (s *Session) ReportError(err error) int {
	return s.setBanner(common.UserMessage(err))
}

// DismissBanner clears the banner.
func (s *Session) DismissBanner() {
	s.banner = Banner{}
}

// ExpireBanner clears the banner only if it is still the one identified by
// seq.
func (s *Session) ExpireBanner(seq int) bool {
	if s.banner.Message == "" || s.banner.Seq != seq {
		return false
	}
	s.banner = Banner{}
	return true
}

func (s *Session) setBanner(message string) int {
	s.bannerSeq++
	s.banner = Banner{Message: message, Seq: s.bannerSeq}
	return s.bannerSeq
}
