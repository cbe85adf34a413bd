package model

// ChatRequest carries one raw utterance per turn
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// TurnMeta is the optional debug metadata of one classified turn.
// Slot-filling turns never classify, so they carry no meta.
type TurnMeta struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   map[string]string `json:"entities,omitempty"`
}

// ChatResponse is the rendered reply for one turn
type ChatResponse struct {
	Reply     string    `json:"reply"`
	SessionID string    `json:"session_id"`
	Meta      *TurnMeta `json:"meta,omitempty"`
}

// HistoryMessage is one entry of the session conversation history
type HistoryMessage struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	Meta    *TurnMeta `json:"meta,omitempty"`
}
