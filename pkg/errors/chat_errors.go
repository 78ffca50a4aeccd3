package errors

var (
	// Domain errors used in usecase/repository
	ErrAuthRequired      = Unauthorized("authentication required")
	ErrChannelNotFound   = NotFound("channel not found")
	ErrMessageNotFound   = NotFound("message not found")
	ErrMembershipMissed  = NotFound("you are not a member of this channel")
	ErrSlugTaken         = AlreadyExists("channel slug is already taken")
	ErrNotMember         = Forbidden("you must be a member of this channel")
	ErrPrivateChannel    = Forbidden("this channel is private, an invitation is required")
	ErrDirectChannel     = Forbidden("direct channels cannot be joined")
	ErrRankTooLow        = Forbidden("your rank is too low for this channel")
	ErrOwnerCannotLeave  = FailedPrecondition("channel owner cannot leave the channel")
	ErrNotAuthor         = Forbidden("only the author can edit this message")
	ErrCannotDelete      = Forbidden("you do not have permission to delete this message")
	ErrNotQuestionAuthor = Forbidden("only the question author can mark an answer")
	ErrNotChannelAdmin   = Forbidden("channel admin or owner role required")
	ErrNotChannelOwner   = Forbidden("only the channel owner can do this")
	ErrMessageDeleted    = FailedPrecondition("message has been deleted")
	ErrNotAReply         = FailedPrecondition("message is not a reply")
	ErrNotAQuestion      = FailedPrecondition("parent message is not a question")
	ErrParentMismatch    = InvalidArg("parent message belongs to another channel")
	ErrInvalidSlug       = InvalidArg("slug must be lowercase alphanumeric with hyphens only")
	ErrEmptyContent      = InvalidArg("message content cannot be empty")
	ErrEmptyName         = InvalidArg("channel name cannot be empty")
)

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}

func ErrChannelCreateFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create channel", cause)
}
