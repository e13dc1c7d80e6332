package validation

// Message is a single rule violation reported against a named property.
type Message struct {
	Property string `json:"property"`
	Text     string `json:"message"`
}

// NewMessage creates a message. Both the property name and the text are
// required.
func NewMessage(property, text string) (Message, error) {
	if property == "" {
		return Message{}, argumentError("property name", "is empty")
	}
	if text == "" {
		return Message{}, argumentError("message", "is empty")
	}
	return Message{Property: property, Text: text}, nil
}

func (m Message) String() string {
	return m.Property + ": " + m.Text
}
