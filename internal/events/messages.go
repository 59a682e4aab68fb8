package events

import (
	"encoding/json"
	"time"
)

// ChangeMessage announces one committed mutation. Consumers re-read the
// record from the database; the message carries only its identity.
type ChangeMessage struct {
	Entity    string    `json:"entity"` // category, transaction, budget
	Op        string    `json:"op"`     // create, update, delete
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(entity, op, id string) *ChangeMessage {
	return &ChangeMessage{
		Entity:    entity,
		Op:        op,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
