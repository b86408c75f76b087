package identity

import (
	"time"

	"github.com/google/uuid"
)

// Clock retorna o horário atual
type Clock func() time.Time

// NewID gera um identificador único no formato UUID canônico
func NewID() string {
	return uuid.New().String()
}

// IsValidID verifica se o valor é um UUID válido
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// UnixSeconds retorna o horário em segundos desde a época Unix (truncado)
func UnixSeconds(clock Clock) int64 {
	if clock == nil {
		clock = time.Now
	}
	return clock().Unix()
}
