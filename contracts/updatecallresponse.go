package contracts

type UpdateCall struct {
	SID    string `json:"sid"`
	From   string `json:"from"`
	To     string `json:"to"`
	Status string `json:"status"`
}

type UpdateCallResponse struct {
	BaseResponse
	ResponseData SingleUpdateCallResponse `json:"response"`
}

type SingleUpdateCallResponse struct {
	SingleResponse
	ResourceData *UpdateCall `json:"data,omitempty"`
}
