package twilio

import (
	"net/http"
	"net/url"
)

// ConferenceStatus is the lifecycle state of a conference.
type ConferenceStatus string

const (
	ConferenceStatusInit       ConferenceStatus = "init"
	ConferenceStatusInProgress ConferenceStatus = "in-progress"
	ConferenceStatusCompleted  ConferenceStatus = "completed"
)

// ConferenceResponse is a conference resource. Conferences are created
// by TwiML, not by this API, so only read and update actions exist.
type ConferenceResponse struct {
	Sid          string           `json:"sid"`
	FriendlyName string           `json:"friendly_name"`
	Status       ConferenceStatus `json:"status"`
	DateCreated  string           `json:"date_created"`
	DateUpdated  string           `json:"date_updated"`
	AccountSid   string           `json:"account_sid"`
	Region       string           `json:"region"`
	APIVersion   string           `json:"api_version"`
	// CallSidEndingConference identifies the participant whose exit
	// ended the conference, when one did.
	CallSidEndingConference string            `json:"call_sid_ending_conference"`
	ReasonConferenceEnded   string            `json:"reason_conference_ended"`
	URI                     string            `json:"uri"`
	SubresourceURIs         map[string]string `json:"subresource_uris"`
}

// FetchConference reads one conference resource.
type FetchConference struct {
	ResponseOf[ConferenceResponse]
	noQuery
	noForm
	AccountSID    string
	ConferenceSID string
}

func NewFetchConference(accountSID string, conferenceSID string) *FetchConference {
	return &FetchConference{AccountSID: accountSID, ConferenceSID: conferenceSID}
}

func (e *FetchConference) Method() string { return http.MethodGet }

func (e *FetchConference) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.ConferenceSID)
}

// ListConferencesResponse is a page of conference resources.
type ListConferencesResponse struct {
	Conferences []ConferenceResponse `json:"conferences"`
	Pagination
}

// ListConferences reads the conferences collection. Filters:
// FriendlyName, Status, date ranges.
type ListConferences struct {
	ResponseOf[ListConferencesResponse]
	noForm
	AccountSID string
	ListQuery  *Query
}

func NewListConferences(accountSID string) *ListConferences {
	return &ListConferences{AccountSID: accountSID}
}

func (e *ListConferences) WithQuery(q *Query) *ListConferences {
	e.ListQuery = q
	return e
}

func (e *ListConferences) Method() string { return http.MethodGet }

func (e *ListConferences) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences.json",
		"{AccountSid}", e.AccountSID)
}

func (e *ListConferences) Query() url.Values {
	if e.ListQuery == nil {
		return nil
	}
	return e.ListQuery.Values()
}

// UpdateConference ends a conference or plays an announcement into it.
type UpdateConference struct {
	ResponseOf[ConferenceResponse]
	noQuery
	AccountSID     string
	ConferenceSID  string
	Status         *ConferenceStatus
	AnnounceURL    *string
	AnnounceMethod *string
}

func NewUpdateConference(accountSID string, conferenceSID string) *UpdateConference {
	return &UpdateConference{AccountSID: accountSID, ConferenceSID: conferenceSID}
}

// End terminates the conference and hangs up every participant.
func (e *UpdateConference) End() *UpdateConference {
	status := ConferenceStatusCompleted
	e.Status = &status
	return e
}

// WithAnnouncement plays the TwiML at announceURL to all participants.
func (e *UpdateConference) WithAnnouncement(announceURL string) *UpdateConference {
	e.AnnounceURL = String(announceURL)
	return e
}

func (e *UpdateConference) Method() string { return http.MethodPost }

func (e *UpdateConference) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.ConferenceSID)
}

func (e *UpdateConference) Form() (url.Values, error) {
	v := url.Values{}
	if e.Status != nil {
		v.Set("Status", string(*e.Status))
	}
	setString(v, "AnnounceUrl", e.AnnounceURL)
	setString(v, "AnnounceMethod", e.AnnounceMethod)
	return v, nil
}

// ParticipantResponse is one call leg inside a conference.
type ParticipantResponse struct {
	CallSid                string `json:"call_sid"`
	Label                  string `json:"label"`
	ConferenceSid          string `json:"conference_sid"`
	AccountSid             string `json:"account_sid"`
	DateCreated            string `json:"date_created"`
	DateUpdated            string `json:"date_updated"`
	EndConferenceOnExit    bool   `json:"end_conference_on_exit"`
	StartConferenceOnEnter bool   `json:"start_conference_on_enter"`
	Muted                  bool   `json:"muted"`
	Hold                   bool   `json:"hold"`
	Status                 string `json:"status"`
	URI                    string `json:"uri"`
}

// CreateParticipant dials a new call leg into a conference.
type CreateParticipant struct {
	ResponseOf[ParticipantResponse]
	noQuery
	AccountSID             string
	ConferenceSID          string
	From                   string
	To                     string
	Label                  *string
	Muted                  *bool
	Beep                   *string
	StartConferenceOnEnter *bool
	EndConferenceOnExit    *bool
	StatusCallback         *string
	StatusCallbackMethod   *string
	Timeout                *int
}

func NewCreateParticipant(accountSID string, conferenceSID string, from string, to string) *CreateParticipant {
	return &CreateParticipant{AccountSID: accountSID, ConferenceSID: conferenceSID, From: from, To: to}
}

func (e *CreateParticipant) WithLabel(label string) *CreateParticipant {
	e.Label = String(label)
	return e
}

func (e *CreateParticipant) WithStatusCallback(callbackURL string) *CreateParticipant {
	e.StatusCallback = String(callbackURL)
	return e
}

func (e *CreateParticipant) WithEndConferenceOnExit(end bool) *CreateParticipant {
	e.EndConferenceOnExit = Bool(end)
	return e
}

func (e *CreateParticipant) Method() string { return http.MethodPost }

func (e *CreateParticipant) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{ConferenceSid}/Participants.json",
		"{AccountSid}", e.AccountSID, "{ConferenceSid}", e.ConferenceSID)
}

func (e *CreateParticipant) Form() (url.Values, error) {
	v := url.Values{}
	v.Set("From", e.From)
	v.Set("To", e.To)
	setString(v, "Label", e.Label)
	setBool(v, "Muted", e.Muted)
	setString(v, "Beep", e.Beep)
	setBool(v, "StartConferenceOnEnter", e.StartConferenceOnEnter)
	setBool(v, "EndConferenceOnExit", e.EndConferenceOnExit)
	setString(v, "StatusCallback", e.StatusCallback)
	setString(v, "StatusCallbackMethod", e.StatusCallbackMethod)
	setInt(v, "Timeout", e.Timeout)
	return v, nil
}

// FetchParticipant reads one participant by call SID or label.
type FetchParticipant struct {
	ResponseOf[ParticipantResponse]
	noQuery
	noForm
	AccountSID    string
	ConferenceSID string
	CallSID       string
}

func NewFetchParticipant(accountSID string, conferenceSID string, callSID string) *FetchParticipant {
	return &FetchParticipant{AccountSID: accountSID, ConferenceSID: conferenceSID, CallSID: callSID}
}

func (e *FetchParticipant) Method() string { return http.MethodGet }

func (e *FetchParticipant) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{ConferenceSid}/Participants/{CallSid}.json",
		"{AccountSid}", e.AccountSID, "{ConferenceSid}", e.ConferenceSID, "{CallSid}", e.CallSID)
}

// ListParticipantsResponse is a page of participant resources.
type ListParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	Pagination
}

// ListParticipants reads the participants of a conference.
type ListParticipants struct {
	ResponseOf[ListParticipantsResponse]
	noQuery
	noForm
	AccountSID    string
	ConferenceSID string
}

func NewListParticipants(accountSID string, conferenceSID string) *ListParticipants {
	return &ListParticipants{AccountSID: accountSID, ConferenceSID: conferenceSID}
}

func (e *ListParticipants) Method() string { return http.MethodGet }

func (e *ListParticipants) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{ConferenceSid}/Participants.json",
		"{AccountSid}", e.AccountSID, "{ConferenceSid}", e.ConferenceSID)
}

// UpdateParticipant mutes, holds or releases one participant.
type UpdateParticipant struct {
	ResponseOf[ParticipantResponse]
	noQuery
	AccountSID    string
	ConferenceSID string
	CallSID       string
	Muted         *bool
	Hold          *bool
	HoldURL       *string
	HoldMethod    *string
	AnnounceURL   *string
}

func NewUpdateParticipant(accountSID string, conferenceSID string, callSID string) *UpdateParticipant {
	return &UpdateParticipant{AccountSID: accountSID, ConferenceSID: conferenceSID, CallSID: callSID}
}

func (e *UpdateParticipant) WithMuted(muted bool) *UpdateParticipant {
	e.Muted = Bool(muted)
	return e
}

func (e *UpdateParticipant) WithHold(hold bool) *UpdateParticipant {
	e.Hold = Bool(hold)
	return e
}

func (e *UpdateParticipant) Method() string { return http.MethodPost }

func (e *UpdateParticipant) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{ConferenceSid}/Participants/{CallSid}.json",
		"{AccountSid}", e.AccountSID, "{ConferenceSid}", e.ConferenceSID, "{CallSid}", e.CallSID)
}

func (e *UpdateParticipant) Form() (url.Values, error) {
	v := url.Values{}
	setBool(v, "Muted", e.Muted)
	setBool(v, "Hold", e.Hold)
	setString(v, "HoldUrl", e.HoldURL)
	setString(v, "HoldMethod", e.HoldMethod)
	setString(v, "AnnounceUrl", e.AnnounceURL)
	return v, nil
}

// DeleteParticipant kicks a participant out of the conference.
type DeleteParticipant struct {
	ResponseOf[EmptyResponse]
	noQuery
	noForm
	AccountSID    string
	ConferenceSID string
	CallSID       string
}

func NewDeleteParticipant(accountSID string, conferenceSID string, callSID string) *DeleteParticipant {
	return &DeleteParticipant{AccountSID: accountSID, ConferenceSID: conferenceSID, CallSID: callSID}
}

func (e *DeleteParticipant) Method() string { return http.MethodDelete }

func (e *DeleteParticipant) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Conferences/{ConferenceSid}/Participants/{CallSid}.json",
		"{AccountSid}", e.AccountSID, "{ConferenceSid}", e.ConferenceSID, "{CallSid}", e.CallSID)
}
