package utils

// ResponseData is the JSON envelope returned by every REST endpoint.
type ResponseData struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}

// PanicIfNeeded panics on a non-nil error so the recovery middleware can
// translate it into the proper HTTP response. Typed errors from pkg/error
// keep their status code and error code; anything else becomes a 500.
func PanicIfNeeded(err error) {
	if err != nil {
		panic(err)
	}
}
