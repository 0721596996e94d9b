package dto

// ResponseMessage is always serialized, so a valid response carries an
// empty error rather than a missing key.
type ResponseMessage struct {
	Error string `json:"error"`
}

// ItemBase is embedded by every response. IsInvalid true means
// Message.Error explains why.
type ItemBase struct {
	IsInvalid bool            `json:"is_invalid"`
	Message   ResponseMessage `json:"message"`
}

func (b *ItemBase) SetInvalid(message string) {
	b.IsInvalid = true
	b.Message.Error = message
}

// ModelBase carries the outcome of one call next to its request/response
// pair. It is never serialized.
type ModelBase struct {
	IsInvalid bool
	Message   string
}

func (b *ModelBase) SetInvalid(message string) {
	b.IsInvalid = true
	b.Message = message
}

type GreetingResponse struct {
	Message string `json:"message"`
}
