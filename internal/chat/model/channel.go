package model

import (
	"time"

	"github.com/google/uuid"
)

type ChannelType string

const (
	ChannelPublic          ChannelType = "PUBLIC"
	ChannelPrivate         ChannelType = "PRIVATE"
	ChannelLevelRestricted ChannelType = "LEVEL_RESTRICTED"
	ChannelDirect          ChannelType = "DIRECT"
)

type Channel struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Basic info
	Name        string      `bun:",notnull"`
	Slug        string      `bun:",unique,notnull"`
	Description string      `bun:",null"`
	Type        ChannelType `bun:",notnull,default:'PUBLIC'"`

	// MinRank is only meaningful for LEVEL_RESTRICTED channels.
	MinRank *Rank `bun:",null"`

	// IsDefault marks channels new users auto-join.
	IsDefault bool   `bun:",default:false"`
	Icon      string `bun:",null"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
