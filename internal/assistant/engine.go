package assistant

import (
	"sync/atomic"
)

// Reply sources produced by the offline engine.
const (
	SourceKB       = "kb"
	SourceFallback = "fallback"
	SourceSystem   = "system"
)

// EmptyMessageReply is returned for blank input instead of running the engine.
const EmptyMessageReply = "Please type a message! 🌿"

// Reply is the engine's answer. Topic is set only for fallback replies, Score
// holds the best knowledge-base score that was seen.
type Reply struct {
	Text   string
	Source string
	Topic  Topic
	Score  int
}

// Engine answers messages from a knowledge base that can be replaced at
// runtime. Readers never block: a reload publishes a whole new base.
type Engine struct {
	kb atomic.Pointer[KnowledgeBase]
}

func NewEngine(kb *KnowledgeBase) *Engine {
	e := &Engine{}
	if kb == nil {
		kb = NewKnowledgeBase(nil)
	}
	e.kb.Store(kb)
	return e
}

// KnowledgeBase returns the base currently in use.
func (e *Engine) KnowledgeBase() *KnowledgeBase {
	return e.kb.Load()
}

// Swap installs kb and returns the previous base.
func (e *Engine) Swap(kb *KnowledgeBase) *KnowledgeBase {
	if kb == nil {
		kb = NewKnowledgeBase(nil)
	}
	return e.kb.Swap(kb)
}

// Respond answers from the knowledge base when it is confident and from the
// topic fallback otherwise. The two are never mixed.
func (e *Engine) Respond(message string) Reply {
	m := Match(message, e.kb.Load())
	if m.Confident() {
		return Reply{Text: m.Entry.Response, Source: SourceKB, Score: m.Score}
	}

	text, topic := Fallback(message)
	return Reply{Text: text, Source: SourceFallback, Topic: topic, Score: m.Score}
}
