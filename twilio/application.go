package twilio

import (
	"net/http"
	"net/url"
)

// ApplicationResponse is an application resource: a named bundle of
// voice and messaging webhook configuration that calls can reference by
// SID instead of repeating the URLs.
type ApplicationResponse struct {
	Sid                   string `json:"sid"`
	AccountSid            string `json:"account_sid"`
	FriendlyName          string `json:"friendly_name"`
	APIVersion            string `json:"api_version"`
	VoiceURL              string `json:"voice_url"`
	VoiceMethod           string `json:"voice_method"`
	VoiceFallbackURL      string `json:"voice_fallback_url"`
	VoiceFallbackMethod   string `json:"voice_fallback_method"`
	VoiceCallerIDLookup   bool   `json:"voice_caller_id_lookup"`
	StatusCallback        string `json:"status_callback"`
	StatusCallbackMethod  string `json:"status_callback_method"`
	SmsURL                string `json:"sms_url"`
	SmsMethod             string `json:"sms_method"`
	SmsFallbackURL        string `json:"sms_fallback_url"`
	SmsFallbackMethod     string `json:"sms_fallback_method"`
	SmsStatusCallback     string `json:"sms_status_callback"`
	MessageStatusCallback string `json:"message_status_callback"`
	DateCreated           string `json:"date_created"`
	DateUpdated           string `json:"date_updated"`
	URI                   string `json:"uri"`
}

// ApplicationBody carries the mutable application settings, shared by
// the create and update actions. All fields are optional.
type ApplicationBody struct {
	FriendlyName         *string
	VoiceURL             *string
	VoiceMethod          *string
	VoiceFallbackURL     *string
	VoiceFallbackMethod  *string
	VoiceCallerIDLookup  *bool
	StatusCallback       *string
	StatusCallbackMethod *string
	SmsURL               *string
	SmsMethod            *string
	SmsFallbackURL       *string
	SmsFallbackMethod    *string
}

func (b *ApplicationBody) Form() (url.Values, error) {
	v := url.Values{}
	setString(v, "FriendlyName", b.FriendlyName)
	setString(v, "VoiceUrl", b.VoiceURL)
	setString(v, "VoiceMethod", b.VoiceMethod)
	setString(v, "VoiceFallbackUrl", b.VoiceFallbackURL)
	setString(v, "VoiceFallbackMethod", b.VoiceFallbackMethod)
	setBool(v, "VoiceCallerIdLookup", b.VoiceCallerIDLookup)
	setString(v, "StatusCallback", b.StatusCallback)
	setString(v, "StatusCallbackMethod", b.StatusCallbackMethod)
	setString(v, "SmsUrl", b.SmsURL)
	setString(v, "SmsMethod", b.SmsMethod)
	setString(v, "SmsFallbackUrl", b.SmsFallbackURL)
	setString(v, "SmsFallbackMethod", b.SmsFallbackMethod)
	return v, nil
}

// CreateApplication provisions a new application under an account.
type CreateApplication struct {
	ResponseOf[ApplicationResponse]
	noQuery
	AccountSID string
	Body       *ApplicationBody
}

func NewCreateApplication(accountSID string, body *ApplicationBody) *CreateApplication {
	return &CreateApplication{AccountSID: accountSID, Body: body}
}

func (e *CreateApplication) Method() string { return http.MethodPost }

func (e *CreateApplication) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Applications.json",
		"{AccountSid}", e.AccountSID)
}

func (e *CreateApplication) Form() (url.Values, error) { return e.Body.Form() }

// FetchApplication reads one application resource.
type FetchApplication struct {
	ResponseOf[ApplicationResponse]
	noQuery
	noForm
	AccountSID     string
	ApplicationSID string
}

func NewFetchApplication(accountSID string, applicationSID string) *FetchApplication {
	return &FetchApplication{AccountSID: accountSID, ApplicationSID: applicationSID}
}

func (e *FetchApplication) Method() string { return http.MethodGet }

func (e *FetchApplication) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Applications/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.ApplicationSID)
}

// ListApplicationsResponse is a page of application resources.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination
}

// ListApplications reads the applications collection. Filter:
// FriendlyName.
type ListApplications struct {
	ResponseOf[ListApplicationsResponse]
	noForm
	AccountSID string
	ListQuery  *Query
}

func NewListApplications(accountSID string) *ListApplications {
	return &ListApplications{AccountSID: accountSID}
}

func (e *ListApplications) WithQuery(q *Query) *ListApplications {
	e.ListQuery = q
	return e
}

func (e *ListApplications) Method() string { return http.MethodGet }

func (e *ListApplications) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Applications.json",
		"{AccountSid}", e.AccountSID)
}

func (e *ListApplications) Query() url.Values {
	if e.ListQuery == nil {
		return nil
	}
	return e.ListQuery.Values()
}

// UpdateApplication modifies an application's settings.
type UpdateApplication struct {
	ResponseOf[ApplicationResponse]
	noQuery
	AccountSID     string
	ApplicationSID string
	Body           *ApplicationBody
}

func NewUpdateApplication(accountSID string, applicationSID string, body *ApplicationBody) *UpdateApplication {
	return &UpdateApplication{AccountSID: accountSID, ApplicationSID: applicationSID, Body: body}
}

func (e *UpdateApplication) Method() string { return http.MethodPost }

func (e *UpdateApplication) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Applications/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.ApplicationSID)
}

func (e *UpdateApplication) Form() (url.Values, error) { return e.Body.Form() }

// DeleteApplication removes an application resource.
type DeleteApplication struct {
	ResponseOf[EmptyResponse]
	noQuery
	noForm
	AccountSID     string
	ApplicationSID string
}

func NewDeleteApplication(accountSID string, applicationSID string) *DeleteApplication {
	return &DeleteApplication{AccountSID: accountSID, ApplicationSID: applicationSID}
}

func (e *DeleteApplication) Method() string { return http.MethodDelete }

func (e *DeleteApplication) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{AccountSid}/Applications/{Sid}.json",
		"{AccountSid}", e.AccountSID, "{Sid}", e.ApplicationSID)
}
