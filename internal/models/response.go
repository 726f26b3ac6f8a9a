package models

// Response is the envelope of every JSON body returned by the API.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// MessageData is the payload of responses that carry only a message.
type MessageData struct {
	Message string `json:"message"`
}

// NewErrorResponse builds a failed envelope with a client-safe message.
func NewErrorResponse(message string) Response {
	return Response{Success: false, Data: MessageData{Message: message}}
}

// NewSuccessResponse wraps data into a successful envelope.
func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}
