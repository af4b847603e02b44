package store

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Slot names. Each holds one full JSON-encoded collection, mirroring
// the in-memory state after every mutation.
const (
	slotPosts         = "bandlink_posts"
	slotConversations = "bandlink_convos"
)

// Slots is the key-value persistence facade the store mirrors itself
// into. *db.DB satisfies it.
type Slots interface {
	ReadSlot(name string) (data []byte, ok bool, err error)
	WriteSlot(name string, data []byte) error
}

// loadSlot reads and decodes a named slot. A missing slot, a read error
// or an undecodable payload all fall back to the supplied default: from
// the store's point of view, corruption and absence both mean "no data
// yet".
func loadSlot[T any](slots Slots, log *zap.Logger, name string, def T) T {
	data, ok, err := slots.ReadSlot(name)
	if err != nil {
		log.Warn("slot read failed, using defaults", zap.String("slot", name), zap.Error(err))
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("slot undecodable, using defaults", zap.String("slot", name), zap.Error(err))
		return def
	}
	return v
}

// saveSlot encodes and writes a full collection to a named slot. A
// failed write is logged and otherwise ignored: the in-memory mutation
// that triggered it must never be rolled back or blocked.
func (s *Store) saveSlot(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("slot encode failed", zap.String("slot", name), zap.Error(err))
		return
	}
	if err := s.slots.WriteSlot(name, data); err != nil {
		s.log.Error("slot write failed", zap.String("slot", name), zap.Error(err))
	}
}

func (s *Store) savePosts()         { s.saveSlot(slotPosts, s.posts) }
func (s *Store) saveConversations() { s.saveSlot(slotConversations, s.convos) }
