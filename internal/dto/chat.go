package dto

type ChatRequest struct {
	Message string `json:"message" example:"my tomato leaves have brown rings"`
}

type ChatReply struct {
	Reply     string `json:"reply"`
	Source    string `json:"source" example:"kb"`
	Topic     string `json:"topic,omitempty" example:"disease"`
	Timestamp string `json:"timestamp"`
}

type ChatHistoryItem struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp"`
}

type ChatStatus struct {
	Providers []string `json:"providers"`
	Mode      string   `json:"mode" example:"kb"`
	Model     string   `json:"model" example:"KB Engine"`
	KBEntries int      `json:"kb_entries"`
	Status    string   `json:"status"`
}

type KnowledgeReloadResponse struct {
	Entries int    `json:"entries"`
	Source  string `json:"source" example:"database"`
}
