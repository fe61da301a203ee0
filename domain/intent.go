package domain

// Fixed replies emitted on the relay channel.
const (
	NoReply      = "(no reply)"
	ApologyReply = "Sorry, I had trouble understanding that."
)

// IntentRequest is one inbound text tagged with its session and language.
type IntentRequest struct {
	SessionID    string
	Text         string
	LanguageCode string
}

// IntentResult is what the intent-detection service answered.
type IntentResult struct {
	FulfillmentText string
	Intent          string
	Confidence      float32
}
