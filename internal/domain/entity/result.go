package entity

// Envelope statuses
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// ErrorBody describes a failed operation in the result envelope
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Envelope is the uniform result of the public operations. No error crosses
// the core boundary outside of it.
type Envelope struct {
	Status string      `json:"status"`
	Error  *ErrorBody  `json:"error,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Success wraps a payload in a success envelope
func Success(data interface{}) *Envelope {
	return &Envelope{Status: StatusSuccess, Data: data}
}

// NotFound builds a typed no-data envelope, distinct from an error
func NotFound(message string) *Envelope {
	return &Envelope{Status: StatusNotFound, Error: &ErrorBody{Kind: StatusNotFound, Message: message}}
}

// Failure builds an error envelope
func Failure(kind, message string) *Envelope {
	return &Envelope{Status: StatusError, Error: &ErrorBody{Kind: kind, Message: message}}
}
