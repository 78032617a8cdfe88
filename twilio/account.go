package twilio

import (
	"net/http"
	"net/url"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusClosed    AccountStatus = "closed"
)

// AccountResponse is an account resource, either the main account or a
// subaccount under it.
type AccountResponse struct {
	Sid             string            `json:"sid"`
	FriendlyName    string            `json:"friendly_name"`
	Status          AccountStatus     `json:"status"`
	DateCreated     string            `json:"date_created"`
	DateUpdated     string            `json:"date_updated"`
	AuthToken       string            `json:"auth_token"`
	OwnerAccountSid string            `json:"owner_account_sid"`
	// Type is Trial or Full.
	Type            string            `json:"type"`
	URI             string            `json:"uri"`
	SubresourceURIs map[string]string `json:"subresource_uris"`
}

// FetchAccount reads one account resource.
type FetchAccount struct {
	ResponseOf[AccountResponse]
	noQuery
	noForm
	AccountSID string
}

func NewFetchAccount(accountSID string) *FetchAccount {
	return &FetchAccount{AccountSID: accountSID}
}

func (e *FetchAccount) Method() string { return http.MethodGet }

func (e *FetchAccount) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{Sid}.json", "{Sid}", e.AccountSID)
}

// ListAccountsResponse is a page of account resources.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Pagination
}

// ListAccounts reads the accounts reachable with the credentials: the
// main account and its subaccounts. Filters: FriendlyName, Status.
type ListAccounts struct {
	ResponseOf[ListAccountsResponse]
	noForm
	ListQuery *Query
}

func NewListAccounts() *ListAccounts { return &ListAccounts{} }

func (e *ListAccounts) WithQuery(q *Query) *ListAccounts {
	e.ListQuery = q
	return e
}

func (e *ListAccounts) Method() string { return http.MethodGet }

func (e *ListAccounts) Path() string { return "/" + APIVersion + "/Accounts.json" }

func (e *ListAccounts) Query() url.Values {
	if e.ListQuery == nil {
		return nil
	}
	return e.ListQuery.Values()
}

// CreateSubAccount provisions a subaccount under the authenticated
// account.
type CreateSubAccount struct {
	ResponseOf[AccountResponse]
	noQuery
	FriendlyName *string
}

func NewCreateSubAccount(friendlyName string) *CreateSubAccount {
	return &CreateSubAccount{FriendlyName: String(friendlyName)}
}

func (e *CreateSubAccount) Method() string { return http.MethodPost }

func (e *CreateSubAccount) Path() string { return "/" + APIVersion + "/Accounts.json" }

func (e *CreateSubAccount) Form() (url.Values, error) {
	v := url.Values{}
	setString(v, "FriendlyName", e.FriendlyName)
	return v, nil
}

// UpdateAccount renames an account or moves it to another status.
// Closing an account is permanent.
type UpdateAccount struct {
	ResponseOf[AccountResponse]
	noQuery
	AccountSID   string
	FriendlyName *string
	Status       *AccountStatus
}

func NewUpdateAccount(accountSID string) *UpdateAccount {
	return &UpdateAccount{AccountSID: accountSID}
}

func (e *UpdateAccount) WithFriendlyName(name string) *UpdateAccount {
	e.FriendlyName = String(name)
	return e
}

func (e *UpdateAccount) WithStatus(status AccountStatus) *UpdateAccount {
	e.Status = &status
	return e
}

func (e *UpdateAccount) Method() string { return http.MethodPost }

func (e *UpdateAccount) Path() string {
	return expandPath("/"+APIVersion+"/Accounts/{Sid}.json", "{Sid}", e.AccountSID)
}

func (e *UpdateAccount) Form() (url.Values, error) {
	v := url.Values{}
	setString(v, "FriendlyName", e.FriendlyName)
	if e.Status != nil {
		v.Set("Status", string(*e.Status))
	}
	return v, nil
}
