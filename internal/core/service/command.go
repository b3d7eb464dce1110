package service

import "strings"

// topicPrefix is matched case-sensitively and includes the trailing space:
// "/topicWeather" and "/Topic Weather" are both ordinary posts.
const topicPrefix = "/topic "

// clearCommand must match the whole message exactly; "/clear " with trailing
// whitespace posts literally.
const clearCommand = "/clear"

type CommandKind int

const (
	// CommandPost stores the message verbatim.
	CommandPost CommandKind = iota
	// CommandSetTopic replaces the board topic.
	CommandSetTopic
	// CommandClearAll wipes every post on the board.
	CommandClearAll
	// CommandNoOp drops the message silently.
	CommandNoOp
)

// Command is the classified form of a message. Classification has no side
// effects; the board service executes the result.
type Command struct {
	Kind CommandKind
	// Topic carries the new topic text for CommandSetTopic.
	Topic string
	// Message carries the verbatim message for CommandPost.
	Message string
}

// ParseCommand classifies a raw message. Exactly one command results from any
// message; a /topic with nothing after the prefix is a silent no-op rather
// than an error or an empty topic.
func ParseCommand(message string) Command {
	if strings.HasPrefix(message, topicPrefix) {
		topic := strings.TrimSpace(strings.TrimPrefix(message, topicPrefix))
		if topic == "" {
			return Command{Kind: CommandNoOp}
		}
		return Command{Kind: CommandSetTopic, Topic: topic}
	}
	if message == clearCommand {
		return Command{Kind: CommandClearAll}
	}
	return Command{Kind: CommandPost, Message: message}
}
