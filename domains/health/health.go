package health

import "context"

type Status string

const (
	StatusOk    Status = "OK"
	StatusError Status = "ERROR"
)

type Report struct {
	Status   Status `json:"status"`
	Version  string `json:"version"`
	Database Status `json:"database"`
	Cache    Status `json:"cache"`
	Detail   string `json:"detail,omitempty"`
}

type IHealthUsecase interface {
	Check(ctx context.Context) Report
}
