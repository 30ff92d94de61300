package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// SessionKey es la clave con la que cada conexión websocket guarda su sesión
const SessionKey = "sessionId"

// Level tipo de aviso que la pantalla muestra como toast
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Message aviso no bloqueante para el usuario
type Message struct {
	Level  Level     `json:"level"`
	Title  string    `json:"title"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

// Service envía avisos a las conexiones de una sesión
type Service interface {
	Notify(sessionID string, msg Message) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

// Notify envía msg solo a las conexiones abiertas por sessionID
func (s *MelodyService) Notify(sessionID string, msg Message) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	if sessionID == "" {
		return nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.m.BroadcastFilter(data, func(sess *melody.Session) bool {
		v, ok := sess.Get(SessionKey)
		return ok && v == sessionID
	})
}

// Nop descarta los avisos
type Nop struct{}

func (Nop) Notify(string, Message) error { return nil }

// MessageBuilder arma avisos paso a paso
type MessageBuilder struct {
	msg Message
}

func NewMessageBuilder(level Level) *MessageBuilder {
	return &MessageBuilder{msg: Message{Level: level}}
}

func (b *MessageBuilder) Title(title string) *MessageBuilder {
	b.msg.Title = title
	return b
}

func (b *MessageBuilder) Text(format string, args ...interface{}) *MessageBuilder {
	b.msg.Text = fmt.Sprintf(format, args...)
	return b
}

func (b *MessageBuilder) Build() Message {
	msg := b.msg
	msg.SentAt = time.Now()
	return msg
}
