package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageText     MessageType = "TEXT"
	MessageCode     MessageType = "CODE"
	MessageFile     MessageType = "FILE"
	MessageQuestion MessageType = "QUESTION"
	MessageSystem   MessageType = "SYSTEM"
)

type Message struct {
	ID        uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ChannelID uuid.UUID `bun:",notnull,type:uuid"`
	Channel   *Channel  `bun:"rel:belongs-to,join:channel_id=id"`

	AuthorID uuid.UUID `bun:",notnull,type:uuid"`

	Content string      `bun:",notnull"`
	Type    MessageType `bun:",notnull,default:'TEXT'"`

	// ParentID links a thread reply to its parent in the same channel.
	ParentID *uuid.UUID `bun:",null,type:uuid"`
	Parent   *Message   `bun:"rel:belongs-to,join:parent_id=id"`

	IsDeleted  bool `bun:",default:false"` // soft delete, excluded from listings
	IsPinned   bool `bun:",default:false"`
	IsQuestion bool `bun:",default:false"`
	IsAnswered bool `bun:",default:false"` // only meaningful when IsQuestion

	EditedAt  *time.Time `bun:",nullzero"`
	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
}
