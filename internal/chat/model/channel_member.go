package model

import (
	"time"

	"github.com/google/uuid"
)

type ChannelMember struct {
	ChannelID uuid.UUID `bun:",pk,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	Role Role `bun:",notnull,default:'MEMBER'"`

	JoinedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	LastReadAt time.Time `bun:",nullzero"` // for unread count
}
