package contracts

type HealthResponse struct {
	QueueLength   int           `json:"queue_length"`
	LiveCalls     int64         `json:"live_calls"`
	AccountHealth AccountHealth `json:"account"`
}

// AccountHealth contains the last observed state of the provider account
type AccountHealth struct {
	Up     bool   `json:"up"`
	SID    string `json:"sid,omitempty"`
	Status string `json:"status,omitempty"`
}

type GetHealthResponse struct {
	BaseResponse
	ResponseData SingleGetHealthResponse `json:"response"`
}

type SingleGetHealthResponse struct {
	SingleResponse
	ResourceData *HealthResponse `json:"data,omitempty"`
}
