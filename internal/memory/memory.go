// Package memory tracks the state of a single conversation: a bounded
// message history plus the topics and preferences inferred from it.
//
// A Memory is not safe for concurrent use. Turns of one conversation must be
// serialised by the owner; separate conversations use separate instances.
package memory

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/knowledge"
)

// DefaultCapacity is the history size used when none is given.
const DefaultCapacity = 10

// Topic tags recorded from user messages.
const (
	TopicStocks     = "stocks"
	TopicRetirement = "retirement"
	TopicBudgeting  = "budgeting"
	TopicInvesting  = "investing"
	TopicTaxes      = "taxes"
)

var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{TopicStocks, []string{"stock", "equity", "shares", "nasdaq", "nyse"}},
	{TopicRetirement, []string{"retire", "401k", "pension", "ira"}},
	{TopicBudgeting, []string{"budget", "spending", "expense", "income"}},
	{TopicInvesting, []string{"invest", "portfolio", "asset", "allocation"}},
	{TopicTaxes, []string{"tax", "deduction", "write-off", "filing"}},
}

// riskKeywords is checked in order; the first tier with a hit wins.
var riskKeywords = []struct {
	tier     string
	keywords []string
}{
	{domain.RiskConservative, []string{"safe", "secure", "low risk", "conservative", "preserve"}},
	{domain.RiskModerate, []string{"balanced", "moderate", "middle ground"}},
	{domain.RiskAggressive, []string{"aggressive", "growth", "high risk", "high return"}},
}

// ErrUnknownPersona is returned by SetPersona for keys outside the
// knowledge base.
var ErrUnknownPersona = errors.New("memory: unknown persona")

// Profile is what the assistant has learned about the user.
type Profile struct {
	Persona string
	// RiskTolerance is empty until a risk keyword is seen.
	RiskTolerance  string
	Interests      []string
	KnowledgeAreas []string
	Goals          []string
}

// Summary is a read-only snapshot of a conversation.
type Summary struct {
	Topics       []string
	Profile      Profile
	MessageCount int
}

// HasTopic reports whether the topic was discussed.
func (s Summary) HasTopic(topic string) bool {
	return slices.Contains(s.Topics, topic)
}

// Memory is the state of one conversation.
type Memory struct {
	capacity int
	messages []domain.ChatMessage
	topics   []string
	profile  Profile
}

// New creates an empty memory holding at most capacity messages. A
// non-positive capacity selects DefaultCapacity.
func New(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{
		capacity: capacity,
		messages: make([]domain.ChatMessage, 0, capacity),
		profile:  Profile{Persona: knowledge.DefaultPersona},
	}
}

// Add appends a message, evicting the oldest ones beyond capacity. User
// messages also update the topic set and risk tolerance.
func (m *Memory) Add(role, content string) {
	m.messages = append(m.messages, domain.ChatMessage{Role: role, Content: content})
	if over := len(m.messages) - m.capacity; over > 0 {
		m.messages = slices.Delete(m.messages, 0, over)
	}
	if role == domain.RoleUser {
		m.observe(content)
	}
}

func (m *Memory) observe(content string) {
	lower := strings.ToLower(content)

	for _, tk := range topicKeywords {
		if !containsAny(lower, tk.keywords) {
			continue
		}
		if !slices.Contains(m.topics, tk.topic) {
			m.topics = append(m.topics, tk.topic)
		}
		if !slices.Contains(m.profile.Interests, tk.topic) {
			m.profile.Interests = append(m.profile.Interests, tk.topic)
		}
	}

	for _, rk := range riskKeywords {
		if containsAny(lower, rk.keywords) {
			m.profile.RiskTolerance = rk.tier
			break
		}
	}
}

// SetPersona switches the user's persona to a key known to the knowledge
// base.
func (m *Memory) SetPersona(key string) error {
	if _, ok := knowledge.LookupPersona(key); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPersona, key)
	}
	m.profile.Persona = key
	return nil
}

// Len returns the number of messages currently held.
func (m *Memory) Len() int {
	return len(m.messages)
}

// Capacity returns the history bound.
func (m *Memory) Capacity() int {
	return m.capacity
}

// Summary returns a snapshot that shares no storage with m.
func (m *Memory) Summary() Summary {
	p := m.profile
	p.Interests = slices.Clone(p.Interests)
	p.KnowledgeAreas = slices.Clone(p.KnowledgeAreas)
	p.Goals = slices.Clone(p.Goals)
	return Summary{
		Topics:       slices.Clone(m.topics),
		Profile:      p,
		MessageCount: len(m.messages),
	}
}

// Recent yields the last n messages, oldest first, or all of them when fewer
// exist. The sequence reads a copy taken at call time and may be ranged over
// any number of times.
func (m *Memory) Recent(n int) iter.Seq[domain.ChatMessage] {
	start := max(len(m.messages)-max(n, 0), 0)
	window := slices.Clone(m.messages[start:])
	return slices.Values(window)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
