package nlu

const (
	dateFormatISO = "2006-01-02"

	// timeContextTemplate anchors the model to the caller's clock so
	// relative phrases resolve against the right day.
	timeContextTemplate = `
[SYSTEM CONTEXT - current time information]
- Today: %s (%s)
- This week: %s through %s
- Tomorrow: %s

IMPORTANT RULES:
1. If the user says "tomorrow", use date='%s'
2. NEVER ask the user back for a concrete date
3. Date format is ALWAYS YYYY-MM-DD
4. Resolve relative time references yourself`
)

// extractionSystemPrompt instructs the model to emit exactly one JSON object.
const extractionSystemPrompt = `You are a calendar assistant. Extract the event details from the user's request.

Respond with a single JSON object and nothing else:
{
  "intent": "create_event" | "move_event" | "cancel_event" | "unknown",
  "title": "short event title",
  "start": "YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS",
  "end": "YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS",
  "duration_minutes": 60,
  "attendees": ["email@example.com"],
  "timezone": "IANA timezone or empty string"
}

Omit fields you cannot determine. Do not invent attendees or times the user did not say.`
